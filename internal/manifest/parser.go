package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// Parse reads and parses a package manifest. Manifests are JSON on disk,
// which yaml.v3 parses as a YAML subset.
func Parse(path string) (*PackageManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m PackageManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// SupportsVersion reports whether the manifest's engine constraint admits
// the given tool version. Manifests without a constraint admit everything.
// Unparseable constraints and unparseable versions (dev builds) are treated
// as admitting, so a sloppy manifest never hides a package.
func (m *PackageManifest) SupportsVersion(version string) bool {
	if m.Engines == nil || m.Engines.Conflink == "" {
		return true
	}

	c, err := semver.NewConstraint(m.Engines.Conflink)
	if err != nil {
		return true
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return true
	}
	return c.Check(v)
}
