package vsop87

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"
)

// maxLine bounds the length of a dataset line. VSOP87 lines are 132 columns.
const maxLine = 4096

// Dataset is the ordered list of terms read from one source.
type Dataset struct {
	Name  string
	Terms []Term
}

// Len returns the number of terms.
func (d *Dataset) Len() int {
	return len(d.Terms)
}

// Load reads the VSOP87 file at path. Nothing is returned unless every line parses.
func Load(path string) (*Dataset, error) {
	return load(path, filepath.Base(path), VSOP87)
}

func load(path, name string, s *Schema) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Name: name, Op: "open", Err: err}
	}
	defer f.Close()
	return LoadReader(name, f, s)
}

// LoadReader reads a dataset from r using the schema s (nil means VSOP87).
func LoadReader(name string, r io.Reader, s *Schema) (*Dataset, error) {
	p := NewParser(s)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 256), maxLine)
	ds := &Dataset{Name: name}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		term, ok, err := p.Parse(scanner.Text())
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				perr.Name = name
				perr.Line = lineNo
			}
			return nil, err
		}
		if ok {
			ds.Terms = append(ds.Terms, term)
		}
	}
	if err := scanner.Err(); err != nil {
		if err == bufio.ErrTooLong {
			return nil, &ParseError{Name: name, Line: lineNo + 1, Err: errors.Errorf("line longer than %d bytes", maxLine)}
		}
		return nil, &IOError{Name: name, Op: "read", Err: err}
	}
	return ds, nil
}

// Catalog resolves dataset identifiers to files in a directory.
type Catalog struct {
	Dir    string
	Schema *Schema       // nil means VSOP87
	Logger kitlog.Logger // nil disables logging
}

// NewCatalog returns a catalog of the datasets in dir.
func NewCatalog(dir string, logger kitlog.Logger) *Catalog {
	return &Catalog{Dir: dir, Logger: logger}
}

// Path returns the file backing the dataset identifier. Identifiers are
// relative to the catalog directory and cannot escape it.
func (c *Catalog) Path(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrNoDataset
	}
	clean := filepath.Clean(string(filepath.Separator) + name)
	rel := strings.TrimPrefix(clean, string(filepath.Separator))
	if rel == "" || filepath.ToSlash(rel) != filepath.ToSlash(filepath.Clean(name)) {
		return "", &IOError{Name: name, Op: "open", Err: errors.New("dataset outside of catalog directory")}
	}
	return filepath.Join(c.Dir, rel), nil
}

// Load reads and parses the named dataset.
func (c *Catalog) Load(name string) (*Dataset, error) {
	logger := orNop(c.Logger)
	path, err := c.Path(name)
	if err != nil {
		return nil, err
	}
	schema := c.Schema
	if schema == nil {
		schema = VSOP87
	}
	ds, err := load(path, name, schema)
	if err != nil {
		level.Error(logger).Log("subsys", "load", "dataset", name, "err", err)
		return nil, err
	}
	level.Debug(logger).Log("subsys", "load", "dataset", name, "path", path, "terms", ds.Len())
	return ds, nil
}
