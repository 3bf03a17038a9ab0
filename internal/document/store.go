package document

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store caches open documents by absolute path.
type Store struct {
	docs map[string]*Document
}

// NewStore returns an empty document store.
func NewStore() *Store {
	return &Store{docs: make(map[string]*Document)}
}

// Open returns the cached document for path, reading it from disk on first
// access. The path is made absolute before lookup.
func (s *Store) Open(path string) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path %s: %w", path, err)
	}

	if doc, ok := s.docs[abs]; ok {
		return doc, nil
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("opening document %s: %w", abs, err)
	}

	doc := &Document{Path: abs, Content: string(data), Version: 1}
	s.docs[abs] = doc
	return doc, nil
}

// Get returns the cached document for path, or nil if it is not open.
func (s *Store) Get(path string) *Document {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil
	}
	return s.docs[abs]
}

// Replace swaps the entire content of a document, bumps its version, and
// writes the new content through to disk so path-based consumers see the
// same bytes as the in-memory copy.
func (s *Store) Replace(path, content string) (*Document, error) {
	doc, err := s.Open(path)
	if err != nil {
		return nil, err
	}

	doc.Content = content
	doc.Version++

	if err := os.WriteFile(doc.Path, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("writing document %s: %w", doc.Path, err)
	}
	return doc, nil
}

// Close drops the cached document for path. Closing a document that is not
// open is a no-op.
func (s *Store) Close(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	delete(s.docs, abs)
}

// Len returns the number of open documents.
func (s *Store) Len() int {
	return len(s.docs)
}
