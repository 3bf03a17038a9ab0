package resolver

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/conflink-labs/conflink/internal/manifest"
)

// configExts are the file extensions a reference may already carry. A
// reference without one of these gets ".json" appended.
var configExts = []string{".json", ".yaml", ".yml"}

// Options controls how references are resolved.
type Options struct {
	// PackageDirs names the directories searched during package-style
	// resolution. Defaults to ["node_modules"].
	PackageDirs []string

	// EntryFile is the config file looked up inside a package directory
	// when its manifest does not name one. Defaults to "conflink.json".
	EntryFile string

	// ToolVersion is checked against package engine constraints.
	ToolVersion string
}

// Resolver maps extends references to config file paths.
type Resolver struct {
	opts Options
}

// New returns a Resolver with defaults filled in for zero-value options.
func New(opts Options) *Resolver {
	if len(opts.PackageDirs) == 0 {
		opts.PackageDirs = []string{"node_modules"}
	}
	if opts.EntryFile == "" {
		opts.EntryFile = "conflink.json"
	}
	return &Resolver{opts: opts}
}

// Resolve maps a single extends reference to a target path. fromFile is the
// config file containing the reference.
//
// Path references (./x, ../x, absolute) resolve against fromFile's
// directory and always yield a target, whether or not the file exists yet.
// Package-style references walk ancestor package directories and yield a
// target only when a matching file is found; the second return is false
// otherwise.
func (r *Resolver) Resolve(fromFile, ref string) (string, bool) {
	if ref == "" {
		return "", false
	}
	if isPathReference(ref) {
		return r.resolvePath(fromFile, ref), true
	}
	return r.resolvePackage(fromFile, ref)
}

// resolvePath resolves a relative or absolute reference against the
// referencing file's directory.
func (r *Resolver) resolvePath(fromFile, ref string) string {
	p := filepath.FromSlash(ref)
	if !filepath.IsAbs(p) {
		p = filepath.Join(filepath.Dir(fromFile), p)
	}
	if !hasConfigExt(p) {
		p += ".json"
	}
	return filepath.Clean(p)
}

// resolvePackage searches <dir>/<packageDir>/ for the reference in every
// ancestor of the referencing file's directory, nearest first. The walk
// stops at the filesystem root.
func (r *Resolver) resolvePackage(fromFile, ref string) (string, bool) {
	dir := filepath.Dir(fromFile)
	for {
		for _, pd := range r.opts.PackageDirs {
			base := filepath.Join(dir, pd)
			if target, ok := r.lookupPackage(base, ref); ok {
				return target, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			logrus.Debugf("no package match for %q anywhere above %s", ref, filepath.Dir(fromFile))
			return "", false
		}
		dir = parent
	}
}

// lookupPackage checks a single package directory for the reference.
// Match order: the reference as a config file, the reference with ".json"
// appended, then the reference as a package directory whose entry point
// comes from its manifest's config field or the configured entry file.
func (r *Resolver) lookupPackage(base, ref string) (string, bool) {
	candidate := filepath.Join(base, filepath.FromSlash(ref))

	if hasConfigExt(ref) {
		if isFile(candidate) {
			return candidate, true
		}
		return "", false
	}

	if p := candidate + ".json"; isFile(p) {
		return p, true
	}

	// os.Stat follows symlinks, so pnpm-style linked package dirs work
	// without special handling.
	if !isDir(candidate) {
		return "", false
	}

	if m, err := manifest.Parse(filepath.Join(candidate, manifest.FileName)); err == nil {
		if !m.SupportsVersion(r.opts.ToolVersion) {
			logrus.Debugf("package %s rejects tool version %s", candidate, r.opts.ToolVersion)
			return "", false
		}
		if m.Config != "" {
			if p := filepath.Join(candidate, filepath.FromSlash(m.Config)); isFile(p) {
				return p, true
			}
		}
	}

	if p := filepath.Join(candidate, r.opts.EntryFile); isFile(p) {
		return p, true
	}
	return "", false
}

// isPathReference reports whether the reference is resolved by path rather
// than by package lookup.
func isPathReference(ref string) bool {
	if ref == "." || ref == ".." {
		return true
	}
	if strings.HasPrefix(ref, "./") || strings.HasPrefix(ref, "../") {
		return true
	}
	return filepath.IsAbs(ref)
}

// hasConfigExt reports whether the path already ends in a config extension.
func hasConfigExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range configExts {
		if ext == e {
			return true
		}
	}
	return false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
