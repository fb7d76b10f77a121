package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lbriand/hbnb/internal/api"
)

// CLIConfig holds client configuration persisted to disk.
type CLIConfig struct {
	ServerURL string `yaml:"server_url,omitempty"`
	// Token is the bearer token from the last successful login. Empty
	// means logged out.
	Token string `yaml:"token,omitempty"`
	// Images maps place titles to card image URLs for the web UI.
	Images map[string]string `yaml:"images,omitempty"`
}

// configPathFn is swapped in tests to point at a temp directory.
var configPathFn = defaultConfigPath

// defaultConfigPath returns the path to the config file.
func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "hbnb", "config.yaml"), nil
}

var loadDotenv = sync.OnceFunc(func() {
	// A missing .env is the normal case.
	_ = godotenv.Load()
})

// loadConfig reads the config from disk.
// Returns a zero-value config if the file doesn't exist.
func loadConfig() (CLIConfig, error) {
	loadDotenv()

	path, err := configPathFn()
	if err != nil {
		return CLIConfig{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return CLIConfig{}, nil
	}
	if err != nil {
		return CLIConfig{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg CLIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CLIConfig{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// saveConfig writes the config to disk.
func saveConfig(cfg CLIConfig) error {
	path, err := configPathFn()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// getServerURL returns the API base URL from env var, config, or default.
func getServerURL() string {
	loadDotenv()
	if v := os.Getenv("HBNB_SERVER_URL"); v != "" {
		return v
	}
	cfg, err := loadConfig()
	if err == nil && cfg.ServerURL != "" {
		return cfg.ServerURL
	}
	return api.DefaultBaseURL
}

// getToken returns the session token from env var or config.
func getToken() string {
	loadDotenv()
	if v := os.Getenv("HBNB_TOKEN"); v != "" {
		return v
	}
	cfg, err := loadConfig()
	if err == nil {
		return cfg.Token
	}
	return ""
}

// saveToken persists a session token, preserving other config fields.
func saveToken(tok string) error {
	cfg, err := loadConfig()
	if err != nil {
		cfg = CLIConfig{}
	}
	cfg.Token = tok
	return saveConfig(cfg)
}
