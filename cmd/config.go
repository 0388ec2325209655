package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bascanada/awsgetlogs/pkg/ty"
	"gopkg.in/yaml.v3"
)

// Config holds defaults applied when the matching flags are omitted.
type Config struct {
	LogGroup  string        `yaml:"logGroup"`
	LogStream string        `yaml:"logStream"`
	Region    string        `yaml:"region"`
	Profile   string        `yaml:"profile"`
	Endpoint  string        `yaml:"endpoint"`
	Limit     ty.Opt[int32] `yaml:"limit"`
}

func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".awsgetlogs"), nil
}

// loadConfig reads the config file named by --config, falling back to
// ~/.awsgetlogs/config.yaml. A missing default file is not an error.
func loadConfig() (*Config, error) {
	path := configPath
	if path == "" {
		dir, err := defaultConfigDir()
		if err != nil {
			return nil, err
		}
		for _, ext := range []string{".yaml", ".yml"} {
			candidate := filepath.Join(dir, "config"+ext)
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			return &Config{}, nil
		}
	}

	return loadConfigFile(path)
}

func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// clientOptions merges flags over config values for the SDK client.
func clientOptions(cfg *Config) ty.MI {
	options := ty.MI{}
	if v := firstNonEmpty(region, cfg.Region); v != "" {
		options["region"] = v
	}
	if v := firstNonEmpty(profile, cfg.Profile); v != "" {
		options["profile"] = v
	}
	if v := firstNonEmpty(endpoint, cfg.Endpoint); v != "" {
		options["endpoint"] = v
	}
	return options
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
