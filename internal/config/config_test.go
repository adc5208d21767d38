package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vango-dev/hashnav/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Dev.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Dev.Port, DefaultPort)
	}
	if cfg.Dev.Host != DefaultHost {
		t.Errorf("Host = %s, want %s", cfg.Dev.Host, DefaultHost)
	}
	if cfg.App != DefaultAppDir {
		t.Errorf("App = %s, want %s", cfg.App, DefaultAppDir)
	}
	if !cfg.HotReload() {
		t.Error("HotReload should default to true")
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		"name": "demo",
		"app": "build",
		"dev": {"port": 8080, "hotReload": false, "metrics": true},
		"deploy": {"bucket": "my-bucket", "prefix": "app/"}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Name != "demo" {
		t.Errorf("Name = %s", cfg.Name)
	}
	if cfg.Dev.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Dev.Port)
	}
	if cfg.HotReload() {
		t.Error("HotReload should be false")
	}
	if !cfg.Dev.Metrics {
		t.Error("Metrics should be true")
	}
	if cfg.Deploy.Bucket != "my-bucket" {
		t.Errorf("Bucket = %s", cfg.Deploy.Bucket)
	}
	if got := cfg.AppDir(); got != filepath.Join(filepath.Dir(path), "build") {
		t.Errorf("AppDir = %s", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), ConfigFileName))

	ce, ok := errors.AsCLIError(err)
	if !ok || ce.Code != "H001" {
		t.Errorf("Expected H001, got %v", err)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeConfig(t, `{"name": }`)

	_, err := Load(path)
	ce, ok := errors.AsCLIError(err)
	if !ok || ce.Code != "H002" {
		t.Errorf("Expected H002, got %v", err)
	}
}

func TestValidatePortRange(t *testing.T) {
	path := writeConfig(t, `{"dev": {"port": 70000}}`)

	_, err := Load(path)
	ce, ok := errors.AsCLIError(err)
	if !ok || ce.Code != "H003" {
		t.Errorf("Expected H003, got %v", err)
	}
}
