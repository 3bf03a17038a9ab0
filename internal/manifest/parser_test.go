package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse(t *testing.T) {
	path := writeManifest(t, `{
  "name": "@shared/presets",
  "version": "1.2.0",
  "config": "./configs/strict.json",
  "engines": {"conflink": ">=1.0.0"}
}`)

	m, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Name != "@shared/presets" {
		t.Errorf("Name = %q", m.Name)
	}
	if m.Config != "./configs/strict.json" {
		t.Errorf("Config = %q", m.Config)
	}
	if m.Engines == nil || m.Engines.Conflink != ">=1.0.0" {
		t.Errorf("Engines = %+v", m.Engines)
	}
}

func TestParseMinimal(t *testing.T) {
	m, err := Parse(writeManifest(t, `{"name": "presets"}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Config != "" || m.Engines != nil {
		t.Errorf("unexpected fields populated: %+v", m)
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := Parse(filepath.Join(t.TempDir(), FileName)); err == nil {
		t.Error("expected error for missing manifest")
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse(writeManifest(t, `{"name": `)); err == nil {
		t.Error("expected error for malformed manifest")
	}
}

func TestSupportsVersion(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		version    string
		want       bool
	}{
		{"no engines", "", "1.0.0", true},
		{"satisfied", ">=1.0.0", "1.2.3", true},
		{"satisfied with v prefix", ">=1.0.0", "v1.2.3", true},
		{"rejected", ">=2.0.0", "1.2.3", false},
		{"caret range", "^1.1.0", "1.4.0", true},
		{"caret range rejected", "^1.1.0", "2.0.0", false},
		{"dev build admitted", ">=1.0.0", "dev", true},
		{"malformed constraint admitted", "not-a-range", "1.0.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &PackageManifest{Name: "p"}
			if tt.constraint != "" {
				m.Engines = &Engines{Conflink: tt.constraint}
			}
			if got := m.SupportsVersion(tt.version); got != tt.want {
				t.Errorf("SupportsVersion(%q) with constraint %q = %v, want %v",
					tt.version, tt.constraint, got, tt.want)
			}
		})
	}
}
