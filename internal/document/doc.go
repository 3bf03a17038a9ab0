// Package document models open config files: zero-based line/character
// positions, ranges, offset conversion, and a store that caches documents
// and applies whole-content replacements.
package document
