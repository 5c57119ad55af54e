package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"sparkfmt/internal/config"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFind_WalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeManifest(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok, err := config.Find(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != want {
		t.Errorf("expected %q, got %q (ok=%v)", want, got, ok)
	}
}

func TestFind_Absent(t *testing.T) {
	_, ok, err := config.Find(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected no manifest in an empty temp dir")
	}
}

func TestLoad_FillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[format]
use_tabs = true

[run]
jobs = 2
cache = true
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Format.UseTabs {
		t.Error("use_tabs lost")
	}
	if cfg.Format.IndentWidth != 4 {
		t.Errorf("expected default indent width 4, got %d", cfg.Format.IndentWidth)
	}
	if cfg.Run.Jobs != 2 || !cfg.Run.Cache {
		t.Errorf("run section: %+v", cfg.Run)
	}
	if cfg.Run.Ext != ".sql" {
		t.Errorf("expected default ext, got %q", cfg.Run.Ext)
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[format\nnope")
	if _, err := config.Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestDiscover_DefaultsWhenAbsent(t *testing.T) {
	cfg, path, err := config.Discover(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if path != "" {
		t.Errorf("expected empty path, got %q", path)
	}
	if cfg.Format.IndentWidth != 4 || cfg.Run.Ext != ".sql" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}
