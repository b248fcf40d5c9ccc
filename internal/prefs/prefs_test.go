package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if p.Theme != "Hearth" {
		t.Errorf("Theme = %q", p.Theme)
	}
	if p.StartTab != "recipes" {
		t.Errorf("StartTab = %q", p.StartTab)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := Save(path, Prefs{Theme: "Slate", StartTab: "people"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	p := Load(path)
	if p.Theme != "Slate" {
		t.Errorf("Theme = %q", p.Theme)
	}
	if p.StartTab != "people" {
		t.Errorf("StartTab = %q", p.StartTab)
	}
}

func TestSaveCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "prefs.toml")
	if err := Save(path, Prefs{Theme: "Hearth", StartTab: "recipes"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("prefs file not written: %v", err)
	}
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = [nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := Load(path)
	if p.Theme != "Hearth" || p.StartTab != "recipes" {
		t.Errorf("expected defaults, got %+v", p)
	}
}

func TestLoadFillsBlankFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte(`theme = ""`), 0o644); err != nil {
		t.Fatal(err)
	}

	p := Load(path)
	if p.Theme != "Hearth" {
		t.Errorf("blank theme not defaulted: %q", p.Theme)
	}
}
