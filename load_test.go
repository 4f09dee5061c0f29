package vsop87

import (
	"bytes"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	kitlog "github.com/go-kit/kit/log"
	"github.com/pkg/errors"
)

func TestLoadFixture(t *testing.T) {
	ds, err := Load(filepath.Join("testdata", "VSOP87D.ear"))
	if err != nil {
		t.Fatal(err)
	}
	if ds.Name != "VSOP87D.ear" {
		t.Fatalf("unexpected name %s", ds.Name)
	}
	if ds.Len() != 9 {
		t.Fatalf("expected 9 terms, got %d", ds.Len())
	}
	// File order is kept.
	first, last := ds.Terms[0], ds.Terms[8]
	if first.A != 1.75347045673 || first.Variable != 1 || first.Index != 0 {
		t.Fatalf("unexpected first term %s", first)
	}
	if last.A != 0.01670699632 || last.Variable != 3 || last.Index != 0 {
		t.Fatalf("unexpected last term %s", last)
	}
	for _, term := range ds.Terms {
		if term.Version != SphericalOfDate || term.Body != 3 {
			t.Fatalf("unexpected term %s", term)
		}
	}
	if v, err := ds.Version(); err != nil || v != SphericalOfDate {
		t.Fatalf("expected version 4, got %d (%v)", v, err)
	}
}

func TestLoadMalformed(t *testing.T) {
	ds, err := Load(filepath.Join("testdata", "malformed.ear"))
	if ds != nil {
		t.Fatal("partial dataset returned")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected a ParseError, got %v", err)
	}
	if perr.Line != 3 || perr.Name != "malformed.ear" || perr.Field != FieldAmplitude {
		t.Fatalf("wrong error location: %s", perr)
	}
}

func TestLoadMissing(t *testing.T) {
	ds, err := Load(filepath.Join("testdata", "VSOP87D.xyz"))
	if ds != nil {
		t.Fatal("dataset returned for a missing file")
	}
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "open" {
		t.Fatalf("expected an IOError, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoadReaderLineTooLong(t *testing.T) {
	in := " VSOP87 VERSION D4    EARTH\n\n" + strings.Repeat("4", maxLine+1) + "\n"
	ds, err := LoadReader("long", strings.NewReader(in), nil)
	if ds != nil {
		t.Fatal("partial dataset returned")
	}
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Line != 3 || perr.Name != "long" {
		t.Fatalf("expected a ParseError on line 3, got %v", err)
	}
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		t.Fatalf("content error reported as I/O: %v", err)
	}
}

func TestCatalogPath(t *testing.T) {
	c := NewCatalog("testdata", nil)
	p, err := c.Path("VSOP87D.ear")
	if err != nil || p != filepath.Join("testdata", "VSOP87D.ear") {
		t.Fatalf("unexpected path %s (%v)", p, err)
	}
	if _, err := c.Path(""); err != ErrNoDataset {
		t.Fatalf("expected ErrNoDataset, got %v", err)
	}
	for _, name := range []string{"../go.mod", "/etc/passwd", "a/../../b", "."} {
		if _, err := c.Path(name); err == nil {
			t.Fatalf("%s: expected an error", name)
		}
	}
}

func TestCatalogLoadLogs(t *testing.T) {
	var buf bytes.Buffer
	c := NewCatalog("testdata", NewLogger(&buf, "debug"))
	if _, err := c.Load("VSOP87D.ear"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Load("malformed.ear"); err == nil {
		t.Fatal("expected an error")
	}
	out := buf.String()
	if !strings.Contains(out, "terms=9") || !strings.Contains(out, "level=error") {
		t.Fatalf("unexpected log output:\n%s", out)
	}
	buf.Reset()
	c.Logger = NewLogger(&buf, "warn")
	if _, err := c.Load("VSOP87D.ear"); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("debug output not filtered:\n%s", buf.String())
	}
	c.Logger = kitlog.NewNopLogger()
	if _, err := c.Load("VSOP87D.ear"); err != nil {
		t.Fatal(err)
	}
}
