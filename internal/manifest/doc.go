// Package manifest handles parsing and validation of package manifests
// (package.json files) found inside package directories. The resolver uses
// a manifest's config field to pick the entry-point config file and its
// engines constraint to decide whether a package supports the running tool
// version. Validation runs against the JSON Schema embedded in schema/.
package manifest
