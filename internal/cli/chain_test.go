package cli

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/conflink-labs/conflink/internal/resolver"
)

func TestFormatChainEntry(t *testing.T) {
	color.NoColor = true

	resolved := resolver.ChainEntry{Path: "/ws/base.json", Depth: 1, Resolved: true}
	if got := formatChainEntry(resolved); got != "  /ws/base.json" {
		t.Errorf("resolved entry = %q", got)
	}

	dangling := resolver.ChainEntry{Ref: "no-such-pkg", Depth: 2, Resolved: false}
	got := formatChainEntry(dangling)
	if !strings.Contains(got, "✗") || !strings.Contains(got, "no-such-pkg") {
		t.Errorf("dangling entry = %q", got)
	}

	cycle := resolver.ChainEntry{Path: "/ws/a.json", Depth: 2, Resolved: false}
	got = formatChainEntry(cycle)
	if !strings.Contains(got, "↺") || !strings.Contains(got, "/ws/a.json") {
		t.Errorf("cycle entry = %q", got)
	}
}
