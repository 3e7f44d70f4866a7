package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the document Q&A service.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Auth      AuthConfig      `yaml:"auth"`
	Store     StoreConfig     `yaml:"store"`
	Chunking  ChunkingConfig  `yaml:"chunking"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	LLM       LLMConfig       `yaml:"llm"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// AuthConfig holds token signing configuration. The secret itself is read
// from the environment variable named by SecretEnv, never from the file.
type AuthConfig struct {
	SecretEnv     string `yaml:"secret_env"`
	TokenTTLHours int    `yaml:"token_ttl_hours"`
}

type StoreConfig struct {
	Path string `yaml:"path"`
}

type ChunkingConfig struct {
	MaxChunkSize int `yaml:"max_chunk_size"`
}

type RetrievalConfig struct {
	MaxResults int `yaml:"max_results"`
}

// LLMConfig holds generation backend configuration.
type LLMConfig struct {
	BaseURL   string `yaml:"base_url"`
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"` // Environment variable for API key
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":3001",
		},
		Auth: AuthConfig{
			SecretEnv:     "JWT_SECRET",
			TokenTTLHours: 24,
		},
		Store: StoreConfig{
			Path: "docqa.db",
		},
		Chunking: ChunkingConfig{
			MaxChunkSize: 500,
		},
		Retrieval: RetrievalConfig{
			MaxResults: 5,
		},
		LLM: LLMConfig{
			Model:     "gpt-4o-mini",
			APIKeyEnv: "OPENAI_API_KEY",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults when
// the file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for docqa.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "docqa.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}
	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// AuthSecret resolves the token signing secret from the environment.
func (c *Config) AuthSecret() string {
	return os.Getenv(c.Auth.SecretEnv)
}

// APIKey resolves the generation backend API key from the environment.
// Empty means the backend is not configured.
func (c *Config) APIKey() string {
	return os.Getenv(c.LLM.APIKeyEnv)
}
