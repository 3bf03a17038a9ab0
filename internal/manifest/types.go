package manifest

// FileName is the manifest file looked up inside a package directory.
const FileName = "package.json"

// PackageManifest describes a package that ships shareable config files.
// Only the fields the resolver cares about are modeled; manifests routinely
// carry many more.
type PackageManifest struct {
	Name        string   `yaml:"name" json:"name"`
	Version     string   `yaml:"version,omitempty" json:"version,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Config      string   `yaml:"config,omitempty" json:"config,omitempty"`
	Engines     *Engines `yaml:"engines,omitempty" json:"engines,omitempty"`
}

// Engines declares tool version constraints for a package.
type Engines struct {
	Conflink string `yaml:"conflink,omitempty" json:"conflink,omitempty"`
}
