//go:build integration

package integration_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conflink-labs/conflink/internal/host"
	"github.com/conflink-labs/conflink/internal/resolver"
)

// testEnv bundles an isolated workspace, a host, and the disposal list
// drained at teardown.
type testEnv struct {
	WorkspaceDir string
	Host         *host.Host
	Disposer     *host.Disposer
}

// setupTestEnv creates an isolated workspace and a fresh host. Everything
// registered on the disposer is drained when the test finishes.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		WorkspaceDir: t.TempDir(),
		Host:         host.New("1.0.0"),
		Disposer:     &host.Disposer{},
	}
	t.Cleanup(env.Disposer.DisposeAll)
	return env
}

// write creates a file (and its parents) under the workspace and returns
// its absolute path.
func (e *testEnv) write(t *testing.T, rel, content string) string {
	t.Helper()

	path := filepath.Join(e.WorkspaceDir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// setupWorkspace populates the workspace with the shared fixture tree: a
// relative parent config, a scoped package under node_modules, and configs
// referencing them from the root and from a nested directory.
func (e *testEnv) setupWorkspace(t *testing.T) {
	t.Helper()

	e.write(t, "base.json", `{"strict": true}`)
	e.write(t, "node_modules/@shared/presets/package.json",
		`{"name": "@shared/presets", "version": "1.0.0", "config": "./main.json"}`)
	e.write(t, "node_modules/@shared/presets/main.json", `{"strict": true}`)
}

// applySettings updates host settings for the duration of the test; the
// snapshot restoring the previous values is drained with the disposer.
func (e *testEnv) applySettings(values map[string]interface{}) {
	e.Disposer.Add(e.Host.Settings.Apply(values))
}

// executeLinks drives the link-provider command for a file, the way an
// editor integration would, and returns the resulting links.
func (e *testEnv) executeLinks(t *testing.T, path string) []resolver.Link {
	t.Helper()

	result, err := e.Host.Execute(context.Background(), host.CommandExecuteLinkProvider, path)
	require.NoError(t, err)

	links, ok := result.([]resolver.Link)
	require.True(t, ok, "unexpected result type %T", result)
	return links
}
