package host

import (
	"context"
	"fmt"

	"github.com/conflink-labs/conflink/internal/document"
)

// Handler implements a host command. Arguments arrive as the caller passed
// them; the handler owns their validation.
type Handler func(ctx context.Context, args ...interface{}) (interface{}, error)

// Host exposes the command surface an editor integration drives: a command
// registry, a settings surface, and a document store. All execution is
// synchronous on the caller's goroutine.
type Host struct {
	commands map[string]Handler

	// Settings is the live settings surface consulted by built-in commands.
	Settings *Settings

	// Docs caches the documents opened through host commands.
	Docs *document.Store

	version string
}

// New returns a Host with default settings and the built-in commands
// registered. version is the running tool version, checked against package
// engine constraints during resolution.
func New(version string) *Host {
	h := &Host{
		commands: make(map[string]Handler),
		Settings: NewSettings(),
		Docs:     document.NewStore(),
		version:  version,
	}
	h.registerBuiltins()
	return h
}

// Register adds a command handler under the given name.
func (h *Host) Register(name string, fn Handler) error {
	if _, exists := h.commands[name]; exists {
		return fmt.Errorf("command %q already registered", name)
	}
	h.commands[name] = fn
	return nil
}

// Execute runs a registered command synchronously and returns its result.
func (h *Host) Execute(ctx context.Context, name string, args ...interface{}) (interface{}, error) {
	fn, ok := h.commands[name]
	if !ok {
		return nil, fmt.Errorf("unknown command %q", name)
	}

	result, err := fn(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("executing %s: %w", name, err)
	}
	return result, nil
}
