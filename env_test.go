package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnv_MissingFileIgnored(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := loadDotEnv(); err != nil {
		t.Errorf("Expected nil for missing .env, got %v", err)
	}
	if err := loadDotEnv("absent.env"); err != nil {
		t.Errorf("Expected nil for missing named file, got %v", err)
	}
}

func TestLoadDotEnv_MalformedFileReported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.env")
	if err := os.WriteFile(path, []byte("ALONGPATH-BAD=1\n"), 0644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	if err := loadDotEnv(path); err == nil {
		t.Error("Expected error for malformed env file")
	}
}

func TestLoadDotEnv_SetsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "good.env")
	if err := os.WriteFile(path, []byte("ALONGPATH_PLANE=xy\n"), 0644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}
	// Registers cleanup so the variable does not leak into other tests
	t.Setenv(envPlane, "")
	os.Unsetenv(envPlane)

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("Expected env file to load, got %v", err)
	}
	if got := envOr(envPlane, "xz"); got != "xy" {
		t.Errorf("Expected plane xy from env file, got %q", got)
	}
}
