package model

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Data.Key != DefaultSnapshotKey {
		t.Errorf("Data.Key = %q, want %q", cfg.Data.Key, DefaultSnapshotKey)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if filepath.Base(cfg.Data.Path) != "shoplist.db" {
		t.Errorf("Data.Path = %q, want shoplist.db file", cfg.Data.Path)
	}
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	dbPath := filepath.Join(dir, "lists.db")
	content := "data:\n  path: " + dbPath + "\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	// Act
	cfg, err := LoadConfig(path)

	// Assert
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Data.Path != dbPath {
		t.Errorf("Data.Path = %q, want %q", cfg.Data.Path, dbPath)
	}
	if cfg.Data.Key != DefaultSnapshotKey {
		t.Errorf("Data.Key = %q, want default", cfg.Data.Key)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("data: [unclosed"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() expected error for invalid YAML")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/lists.db", filepath.Join(home, "lists.db")},
		{"/tmp/lists.db", "/tmp/lists.db"},
		{"relative/lists.db", "relative/lists.db"},
		{"~other/lists.db", "~other/lists.db"},
	}

	for _, tt := range tests {
		if got := ExpandHome(tt.in); got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := DefaultAppConfig()
	want.Data.Key = "weekly"
	want.Log.Level = "debug"

	// Act
	if err := SaveConfig(path, want); err != nil {
		t.Fatalf("SaveConfig() unexpected error: %v", err)
	}
	got, err := LoadConfig(path)

	// Assert
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if *got != *want {
		t.Errorf("LoadConfig() = %+v, want %+v", *got, *want)
	}
}
