// Package manifest parses the small piece of metadata a driver hands the
// inference core alongside a module: its name and the semantic version of
// the module format it was written against. This is metadata about the
// module being compiled, not I/O performed by the core itself — the
// manifest text always arrives as a string; this package never touches a
// filesystem or a network.
package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Manifest is a module's declared name and format version.
type Manifest struct {
	Name    string
	Version *semver.Version
}

// Parse reads "name@version" manifest text.
func Parse(text string) (Manifest, error) {
	name, versionText, ok := strings.Cut(text, "@")
	if !ok {
		return Manifest{}, fmt.Errorf("manifest: missing \"@version\" in %q", text)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Manifest{}, fmt.Errorf("manifest: empty module name in %q", text)
	}

	v, err := semver.NewVersion(strings.TrimSpace(versionText))
	if err != nil {
		return Manifest{}, fmt.Errorf("manifest: invalid version %q: %w", versionText, err)
	}

	return Manifest{Name: name, Version: v}, nil
}

// Satisfies reports whether m's version matches constraint, e.g.
// ">= 0.3, < 1.0". It returns an error only if constraint itself fails to
// parse.
func (m Manifest) Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("manifest: invalid constraint %q: %w", constraint, err)
	}
	return c.Check(m.Version), nil
}

func (m Manifest) String() string {
	return fmt.Sprintf("%s@%s", m.Name, m.Version)
}
