package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Addr != ":3001" {
		t.Errorf("expected Addr=:3001, got %s", cfg.Server.Addr)
	}
	if cfg.Chunking.MaxChunkSize != 500 {
		t.Errorf("expected MaxChunkSize=500, got %d", cfg.Chunking.MaxChunkSize)
	}
	if cfg.Retrieval.MaxResults != 5 {
		t.Errorf("expected MaxResults=5, got %d", cfg.Retrieval.MaxResults)
	}
	if cfg.Auth.TokenTTLHours != 24 {
		t.Errorf("expected TokenTTLHours=24, got %d", cfg.Auth.TokenTTLHours)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/docqa.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "docqa.yaml")

	content := `
server:
  addr: ":8080"
chunking:
  max_chunk_size: 200
retrieval:
  max_results: 10
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected Addr=:8080, got %s", cfg.Server.Addr)
	}
	if cfg.Chunking.MaxChunkSize != 200 {
		t.Errorf("expected MaxChunkSize=200, got %d", cfg.Chunking.MaxChunkSize)
	}
	if cfg.Retrieval.MaxResults != 10 {
		t.Errorf("expected MaxResults=10, got %d", cfg.Retrieval.MaxResults)
	}
	// Untouched sections keep their defaults.
	if cfg.LLM.APIKeyEnv != "OPENAI_API_KEY" {
		t.Errorf("expected APIKeyEnv default, got %s", cfg.LLM.APIKeyEnv)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "docqa.yaml")

	content := `
store:
  path: "custom.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Store.Path != "custom.db" {
		t.Errorf("expected Path=custom.db, got %s", cfg.Store.Path)
	}
}
