package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/astrocalc/vsop87"
	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/cobra"
)

// This tool loads VSOP87 files and evaluates their series at a given Julian Day.

const dateFormat = "2006-01-02 15:04:05"

type app struct {
	confDir  string
	logLevel string
	conf     *vsop87.Config
	logger   kitlog.Logger
}

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "vsop87",
		Short:         "Planetary positions by the VSOP87 theory",
		Long:          usage,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.confDir == "" {
				a.confDir = os.Getenv(vsop87.ConfigEnv)
			}
			conf, err := vsop87.LoadConfigFrom(a.confDir)
			if err != nil {
				return err
			}
			if a.logLevel != "" {
				conf.LogLevel = a.logLevel
			}
			a.conf = conf
			a.logger = vsop87.NewLogger(logOut, conf.LogLevel)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), usage)
			return err
		},
	}
	root.PersistentFlags().StringVar(&a.confDir, "config", "", "directory holding conf.toml (default $"+vsop87.ConfigEnv+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	root.AddCommand(a.seriesCmd(), a.positionCmd(), a.jdCmd(), a.polyCmd())
	return root
}

// parseJDEorTime reads either a Julian Day or a date. The empty string means now.
func parseJDEorTime(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return vsop87.JulianDay(vsop87.Now()), nil
	}
	for _, layout := range []string{time.RFC3339Nano, dateFormat, "2006-01-02"} {
		if dt, err := time.Parse(layout, s); err == nil {
			return vsop87.JulianDay(dt), nil
		}
	}
	jd, err := vsop87.ParseJulianDay(s)
	if err != nil {
		return 0, err
	}
	return *jd, nil
}
