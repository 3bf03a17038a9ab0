package resolver

import (
	"github.com/conflink-labs/conflink/internal/document"
	"github.com/conflink-labs/conflink/internal/extends"
)

// Link associates the source range of an extends reference with its
// resolved target path.
type Link struct {
	Range  document.Range
	Target string
}

// Links scans the given config content and resolves every extends
// reference. References that fail package resolution produce no link, so a
// config whose only reference names a nonexistent package yields zero
// links.
func (r *Resolver) Links(path string, content []byte) []Link {
	var links []Link
	for _, ref := range extends.Scan(content) {
		target, ok := r.Resolve(path, ref.Value)
		if !ok {
			continue
		}
		links = append(links, Link{Range: ref.Range, Target: target})
	}
	return links
}
