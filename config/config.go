// Package config loads wordcards defaults from a YAML file, .env and the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ByLCY/wordcards/layout"
)

// Config holds all application configuration
type Config struct {
	Mode     string              `yaml:"mode"`
	Output   string              `yaml:"output"`
	Addr     string              `yaml:"addr"`
	Document layout.DocumentMeta `yaml:"document"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Mode:   string(layout.ModeColor),
		Output: "output/flashcards.pdf",
		Addr:   ":8080",
		Document: layout.DocumentMeta{
			Title:   "Flashcards (${pairs} pairs)",
			Creator: "wordcards",
		},
	}
}

// Load reads the optional YAML file at path, then applies environment overrides.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.Mode = getEnv("WORDCARDS_MODE", cfg.Mode)
	cfg.Output = getEnv("WORDCARDS_OUT", cfg.Output)
	cfg.Addr = getEnv("WORDCARDS_ADDR", cfg.Addr)
	cfg.Document.Title = getEnv("WORDCARDS_TITLE", cfg.Document.Title)

	if _, err := cfg.PrintMode(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// PrintMode returns the validated printer mode.
func (c *Config) PrintMode() (layout.Mode, error) {
	mode, err := layout.ParseMode(c.Mode)
	if err != nil {
		return "", fmt.Errorf("invalid mode: %w", err)
	}
	return mode, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
