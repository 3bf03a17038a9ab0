package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	d := Defaults()

	if d[KeyLinksEnabled] != true {
		t.Errorf("%s default = %v, want true", KeyLinksEnabled, d[KeyLinksEnabled])
	}
	dirs, ok := d[KeyPackageDirs].([]string)
	if !ok || len(dirs) != 1 || dirs[0] != "node_modules" {
		t.Errorf("%s default = %v", KeyPackageDirs, d[KeyPackageDirs])
	}
	if d[KeyEntryFile] != "conflink.json" {
		t.Errorf("%s default = %v", KeyEntryFile, d[KeyEntryFile])
	}
}

func TestFilePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	want := filepath.Join(home, ".conflink", "config.yaml")
	if got := FilePath(); got != want {
		t.Errorf("FilePath() = %q, want %q", got, want)
	}
}

func TestEnsureDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := EnsureDir(); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	info, err := os.Stat(filepath.Join(home, ".conflink"))
	if err != nil {
		t.Fatalf("stat config dir: %v", err)
	}
	if !info.IsDir() {
		t.Error("config path is not a directory")
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	Load()

	if !GetBool(KeyLinksEnabled) {
		t.Errorf("%s = false after Load, want default true", KeyLinksEnabled)
	}
	if Get(KeyEntryFile) != "conflink.json" {
		t.Errorf("%s = %q after Load", KeyEntryFile, Get(KeyEntryFile))
	}
}
