package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetConfigPathEnvOverride(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv("EVE_CONFIG", custom)

	got, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath: %v", err)
	}
	if got != custom {
		t.Errorf("GetConfigPath: got %q, want %q", got, custom)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	// Point at a path that does not exist
	t.Setenv("EVE_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.DataDir == "" {
		t.Error("DataDir: expected a default")
	}
	if filepath.Base(config.DataDir) != "eve" {
		t.Errorf("DataDir: got %q, want the eve data dir default", config.DataDir)
	}
	if config.Sync.Enable {
		t.Error("Sync.Enable: expected false by default")
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "eve", "config.yaml")
	t.Setenv("EVE_CONFIG", configPath)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	config.DataDir = filepath.Join(t.TempDir(), "data")
	config.Sync.Enable = true
	config.Sync.Bucket = "my-bucket"

	if err := SaveConfig(*config); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.DataDir != config.DataDir {
		t.Errorf("DataDir: got %q, want %q", loaded.DataDir, config.DataDir)
	}
	if !loaded.Sync.Enable || loaded.Sync.Bucket != "my-bucket" {
		t.Errorf("Sync: got %+v", loaded.Sync)
	}
}

func TestLoadConfigExpandsHome(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv("EVE_CONFIG", configPath)

	content := []byte("data_dir: ~/eve-data\n")
	if err := os.WriteFile(configPath, content, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	want := filepath.Join(home, "eve-data")
	if config.DataDir != want {
		t.Errorf("DataDir: got %q, want %q", config.DataDir, want)
	}
}
