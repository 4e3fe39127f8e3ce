// Package config loads coach configuration from an HCL file with
// environment variable overrides for secrets.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete coach configuration
type Config struct {
	Storage    StorageSettings    `hcl:"storage,block"`
	Server     ServerSettings     `hcl:"server,block"`
	OpenAI     OpenAISettings     `hcl:"openai,block"`
	Transcript TranscriptSettings `hcl:"transcript,block"`
	LogLevel   string             `hcl:"log_level,optional"`
}

// StorageSettings selects where lessons live. When PostgresDSN is set
// it takes precedence over the JSON file path.
type StorageSettings struct {
	Path        string `hcl:"path,optional"`
	PostgresDSN string `hcl:"postgres_dsn,optional"`
}

// ServerSettings contains HTTP server settings
type ServerSettings struct {
	Addr string `hcl:"addr,optional"`
}

// OpenAISettings contains extraction API settings. The API key comes
// from OPENAI_API_KEY, never from the config file.
type OpenAISettings struct {
	Model   string `hcl:"model,optional"`
	BaseURL string `hcl:"base_url,optional"`
}

// TranscriptSettings contains transcript service settings
type TranscriptSettings struct {
	BaseURL string `hcl:"base_url,optional"`
	Retries int    `hcl:"retries,optional"`
}

// Default returns default configuration
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Storage: StorageSettings{
			Path: filepath.Join(home, ".pokercoach", "lessons.json"),
		},
		Server: ServerSettings{
			Addr: ":8090",
		},
		OpenAI: OpenAISettings{
			Model:   "gpt-4o-mini",
			BaseURL: "https://api.openai.com/v1",
		},
		Transcript: TranscriptSettings{
			BaseURL: "http://localhost:3001/api/transcript",
			Retries: 3,
		},
		LogLevel: "info",
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults; a present file is merged over them.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default()

	if config.Storage.Path == "" {
		config.Storage.Path = defaults.Storage.Path
	}
	if config.Server.Addr == "" {
		config.Server.Addr = defaults.Server.Addr
	}
	if config.OpenAI.Model == "" {
		config.OpenAI.Model = defaults.OpenAI.Model
	}
	if config.OpenAI.BaseURL == "" {
		config.OpenAI.BaseURL = defaults.OpenAI.BaseURL
	}
	if config.Transcript.BaseURL == "" {
		config.Transcript.BaseURL = defaults.Transcript.BaseURL
	}
	if config.Transcript.Retries == 0 {
		config.Transcript.Retries = defaults.Transcript.Retries
	}
	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}

	return &config, nil
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Storage.Path == "" && c.Storage.PostgresDSN == "" {
		return fmt.Errorf("storage requires a file path or a postgres DSN")
	}
	if c.Transcript.Retries < 1 {
		return fmt.Errorf("transcript retries must be at least 1, got %d", c.Transcript.Retries)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
