package resolver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/conflink-labs/conflink/internal/extends"
)

// ChainEntry is one node in a config inheritance chain.
type ChainEntry struct {
	// Path is the config file, empty when the reference did not resolve.
	Path string
	// Ref is the extends value that led here, empty for the root config.
	Ref string
	// Depth is the distance from the root config.
	Depth int
	// Resolved is false for dangling references and repeated visits.
	Resolved bool
}

// Chain follows extends references transitively from the given config file
// and returns the inheritance chain in depth-first order, root first. Each
// config is entered at most once; a config reached again (a cycle) is
// reported as an unresolved entry and not re-entered.
func (r *Resolver) Chain(path string) ([]ChainEntry, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path %s: %w", path, err)
	}
	if !isFile(abs) {
		return nil, fmt.Errorf("config file %s does not exist", abs)
	}

	visited := make(map[string]bool)
	var chain []ChainEntry
	r.walkChain(abs, "", 0, visited, &chain)
	return chain, nil
}

// walkChain appends an entry for path and recurses into its references.
func (r *Resolver) walkChain(path, ref string, depth int, visited map[string]bool, chain *[]ChainEntry) {
	if visited[path] {
		*chain = append(*chain, ChainEntry{Path: path, Ref: ref, Depth: depth, Resolved: false})
		return
	}
	visited[path] = true
	*chain = append(*chain, ChainEntry{Path: path, Ref: ref, Depth: depth, Resolved: true})

	content, err := os.ReadFile(path)
	if err != nil {
		return
	}

	for _, reference := range extends.Scan(content) {
		target, ok := r.Resolve(path, reference.Value)
		if !ok || !isFile(target) {
			*chain = append(*chain, ChainEntry{Ref: reference.Value, Depth: depth + 1, Resolved: false})
			continue
		}
		r.walkChain(target, reference.Value, depth+1, visited, chain)
	}
}
