// Package host exposes the surface an editor integration drives: a named
// command registry (with the built-in link-provider command), an isolated
// settings surface with snapshot/restore, a document store, and scoped
// disposal of test- or session-owned resources. Commands execute
// synchronously; the host adds no concurrency of its own.
package host
