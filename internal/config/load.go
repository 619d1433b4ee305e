package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var configFileNames = []string{".readability.yml", ".readability.yaml"}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return &cfg, nil
}

// Discover searches for a .readability.yml or .readability.yaml starting
// at startDir and walking toward the filesystem root. The search does not
// leave the repository: a directory containing .git is the last one
// examined. Returns "" when no config file exists.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		if found := configIn(dir); found != "" {
			return found, nil
		}
		if isRepoRoot(dir) {
			return "", nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// configIn returns the path of the config file in dir, if one exists.
func configIn(dir string) string {
	for _, name := range configFileNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func isRepoRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}

// Defaults returns the built-in configuration: English, no word list,
// registry-default measures, and no thresholds.
func Defaults() *Config {
	return &Config{
		Language: "en",
	}
}

// DumpDefaults returns the starter configuration written by `init`:
// the built-in defaults plus example thresholds for common measures.
func DumpDefaults() *Config {
	freMin := 30.0
	fogMax := 17.0
	return &Config{
		Language: "en",
		Thresholds: map[string]Threshold{
			"flesch-reading-ease": {Min: &freMin},
			"gunning-fog":         {Max: &fogMax},
		},
	}
}
