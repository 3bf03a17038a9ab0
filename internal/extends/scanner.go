package extends

import (
	"go.yaml.in/yaml/v3"

	"github.com/conflink-labs/conflink/internal/document"
)

// Key is the mapping key that names the parent config(s).
const Key = "extends"

// Reference is one extends value found in a document, with the source range
// of the value itself (quotes excluded for quoted scalars).
type Reference struct {
	Value string
	Range document.Range
}

// Scan extracts every extends reference from a config document. Both JSON
// and YAML content are accepted; yaml.v3 parses either. The key must sit at
// the top level of the document mapping — nested occurrences are ignored.
// The value may be a single string or a sequence of strings. Documents that
// fail to parse yield zero references rather than an error, matching how an
// editor treats a half-typed config.
func Scan(content []byte) []Reference {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil
	}
	if len(root.Content) == 0 {
		return nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil
	}

	var refs []Reference
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]
		if key.Value != Key {
			continue
		}

		switch value.Kind {
		case yaml.ScalarNode:
			if ref, ok := scalarReference(value); ok {
				refs = append(refs, ref)
			}
		case yaml.SequenceNode:
			for _, item := range value.Content {
				if item.Kind != yaml.ScalarNode {
					continue
				}
				if ref, ok := scalarReference(item); ok {
					refs = append(refs, ref)
				}
			}
		}
	}
	return refs
}

// scalarReference builds a Reference from a scalar node. Empty values carry
// no reference.
func scalarReference(n *yaml.Node) (Reference, bool) {
	if n.Value == "" {
		return Reference{}, false
	}
	return Reference{Value: n.Value, Range: scalarRange(n)}, true
}

// scalarRange computes the zero-based range of a scalar value. yaml.v3
// reports one-based line/column of the token start; for quoted scalars the
// column points at the opening quote, which is excluded from the range.
func scalarRange(n *yaml.Node) document.Range {
	line := n.Line - 1
	char := n.Column - 1
	if n.Style == yaml.DoubleQuotedStyle || n.Style == yaml.SingleQuotedStyle {
		char++
	}

	start := document.Position{Line: line, Character: char}
	end := document.Position{Line: line, Character: char + len([]rune(n.Value))}
	return document.Range{Start: start, End: end}
}
