package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvOpenAIKey  = "OPENAI_API_KEY"
	EnvGeminiKeys = "GEMINI_API_KEYS"
	EnvGeminiKey  = "GEMINI_API_KEY"
)

// Load reads a YAML config file. Defaults are applied by Validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadOptional is Load that returns an empty Config when path does not exist.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// LoadDotEnv exports variables from the given .env files that exist.
// Variables already set in the process environment win.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ReadCredentials fills c.Credentials using getenv.
func (c *Config) ReadCredentials(getenv func(string) string) {
	c.Credentials.OpenAIKey = strings.TrimSpace(getenv(EnvOpenAIKey))

	raw := getenv(EnvGeminiKeys)
	if strings.TrimSpace(raw) == "" {
		raw = getenv(EnvGeminiKey)
	}

	c.Credentials.GeminiKeys = nil
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			c.Credentials.GeminiKeys = append(c.Credentials.GeminiKeys, k)
		}
	}
}
