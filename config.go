package vsop87

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// ConfigEnv names the environment variable holding the directory of conf.toml.
const ConfigEnv = "VSOP87_CONFIG"

// Config is the runtime configuration.
type Config struct {
	Directory string // where dataset identifiers are resolved
	Format    string // "text" or "json"
	Precision int    // digits of text output, -1 for shortest
	LogLevel  string

	v *viper.Viper
}

// Viper returns the underlying configuration, e.g. for polynomial definitions.
func (c *Config) Viper() *viper.Viper {
	return c.v
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("vsop87.directory", ".")
	v.SetDefault("output.format", "text")
	v.SetDefault("output.precision", -1)
	v.SetDefault("log.level", "info")
	v.SetEnvPrefix("VSOP87")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads conf.toml from the directory named by VSOP87_CONFIG. When
// the variable is unset only the defaults and VSOP87_* overrides apply.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(os.Getenv(ConfigEnv))
}

// LoadConfigFrom reads conf.toml from confPath, or only defaults and the
// environment if confPath is empty.
func LoadConfigFrom(confPath string) (*Config, error) {
	v := newViper()
	if confPath != "" {
		v.SetConfigName("conf")
		v.SetConfigType("toml")
		v.AddConfigPath(confPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "%s/conf.toml", confPath)
		}
	}
	conf := &Config{
		Directory: v.GetString("vsop87.directory"),
		Format:    v.GetString("output.format"),
		Precision: v.GetInt("output.precision"),
		LogLevel:  v.GetString("log.level"),
		v:         v,
	}
	if _, err := NewReporter(conf.Format, conf.Precision); err != nil {
		return nil, err
	}
	return conf, nil
}
