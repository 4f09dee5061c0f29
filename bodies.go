package vsop87

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Body is the body number used in the body column of VSOP87 files.
type Body int

// VSOP87 bodies. The Sun only appears in the barycentric VSOP87E files.
const (
	Sun Body = iota
	Mercury
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	EarthMoon // barycenter
	nBodies
)

// parallel arrays, indexed by body.
var (
	bodyNames = [nBodies]string{"Sun", "Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune", "EMB"}
	bodyExts  = [nBodies]string{"sun", "mer", "ven", "ear", "mar", "jup", "sat", "ura", "nep", "emb"}
)

func (b Body) valid() bool {
	return b >= Sun && b < nBodies
}

func (b Body) String() string {
	if !b.valid() {
		return fmt.Sprintf("body(%d)", int(b))
	}
	return bodyNames[b]
}

// Ext returns the file name extension of the body, e.g. "ear" for the Earth.
func (b Body) Ext() string {
	if !b.valid() {
		return ""
	}
	return bodyExts[b]
}

// BodyFromString returns the body from its name or file extension.
func BodyFromString(name string) (Body, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "earth-moon", "earthmoon", "emb":
		return EarthMoon, nil
	}
	for b := Sun; b < nBodies; b++ {
		if name == strings.ToLower(bodyNames[b]) || name == bodyExts[b] {
			return b, nil
		}
	}
	return Sun, errors.Errorf("undefined body '%s'", name)
}

// DatasetName returns the distribution file name of a body in a version of
// the theory, e.g. "VSOP87D.ear" for the Earth in version 4 (D).
func DatasetName(version int, b Body) (string, error) {
	if !b.valid() {
		return "", errors.Errorf("undefined body %d", int(b))
	}
	switch {
	case version == Elliptic:
		if b == Sun || b == Earth {
			return "", errors.Errorf("no elliptic elements for %s", b)
		}
		return "VSOP87." + b.Ext(), nil
	case version >= RectangularJ2000 && version <= BarycentricRectJ2000:
		if b == Sun && version != BarycentricRectJ2000 {
			return "", errors.New("the Sun is only part of VSOP87E")
		}
		if b == EarthMoon && version != RectangularJ2000 {
			return "", errors.Errorf("no %s in version %d", b, version)
		}
		return fmt.Sprintf("VSOP87%c.%s", 'A'+version-1, b.Ext()), nil
	default:
		return "", errors.Errorf("undefined version %d", version)
	}
}

// ParseVersion reads a version as a digit (0-5) or a letter (A-E).
func ParseVersion(s string) (int, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) == 1 {
		switch c := s[0]; {
		case c >= '0' && c <= '5':
			return int(c - '0'), nil
		case c >= 'A' && c <= 'E':
			return int(c-'A') + 1, nil
		}
	}
	return 0, errors.Errorf("undefined version %q", s)
}
