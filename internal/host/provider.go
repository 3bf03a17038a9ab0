package host

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/conflink-labs/conflink/internal/config"
	"github.com/conflink-labs/conflink/internal/resolver"
)

// CommandExecuteLinkProvider returns the document links for a config file.
// It takes one argument, the file path, and returns []resolver.Link.
const CommandExecuteLinkProvider = "conflink.executeLinkProvider"

// registerBuiltins wires the commands every Host ships with.
func (h *Host) registerBuiltins() {
	// Registration of built-ins cannot collide; ignore the error.
	_ = h.Register(CommandExecuteLinkProvider, h.executeLinkProvider)
}

// executeLinkProvider opens the document and resolves its extends
// references with options drawn from the live settings.
func (h *Host) executeLinkProvider(ctx context.Context, args ...interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected 1 argument, got %d", len(args))
	}
	path, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("expected a file path argument, got %T", args[0])
	}

	if !h.Settings.GetBool(config.KeyLinksEnabled) {
		return []resolver.Link{}, nil
	}

	doc, err := h.Docs.Open(path)
	if err != nil {
		return nil, err
	}

	r := resolver.New(resolver.Options{
		PackageDirs: h.Settings.GetStringSlice(config.KeyPackageDirs),
		EntryFile:   h.Settings.GetString(config.KeyEntryFile),
		ToolVersion: h.version,
	})

	links := r.Links(doc.Path, []byte(doc.Content))
	logrus.Debugf("link provider: %d link(s) in %s (version %d)", len(links), doc.Path, doc.Version)
	if links == nil {
		links = []resolver.Link{}
	}
	return links, nil
}
