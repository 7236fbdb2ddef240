// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dstlab/wozeval/internal/datasets"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultWorkers is the fallback worker hint passed to the fuzzy normalizer.
	defaultWorkers = 4
	// defaultLogFile is where harness log lines go when the config omits a path.
	defaultLogFile = "wozeval.log"
)

// Default collaborator invocations: the mwzeval scorer and fuzzy
// preprocessor entry points, run with whatever python3 is on PATH.
var (
	defaultScorerCommand = []string{"python3", "evaluate.py"}
	defaultFuzzyCommand  = []string{"python3", "preprocessor_fuzzy.py"}
)

// Config represents the top-level application configuration.
type Config struct {
	ScorerCommand []string `json:"scorerCommand,omitempty"`
	FuzzyCommand  []string `json:"fuzzyCommand,omitempty"`
	ReferenceDir  string   `json:"referenceDir,omitempty"`
	Workers       int      `json:"workers,omitempty"`
	LogFile       string   `json:"logFile,omitempty"`
	Debug         bool     `json:"debug"`
	JSONMode      bool     `json:"jsonMode"`
	ConfigPath    string   `json:"-"`
}

// ScorerArgs returns the argv prefix for the external scorer, falling back
// to the mwzeval default if not configured.
func (c Config) ScorerArgs() []string {
	return commandOrDefault(c.ScorerCommand, defaultScorerCommand)
}

// FuzzyArgs returns the argv prefix for the external fuzzy normalizer,
// falling back to the mwzeval default if not configured.
func (c Config) FuzzyArgs() []string {
	return commandOrDefault(c.FuzzyCommand, defaultFuzzyCommand)
}

// ReferenceRoot returns the directory gold reference files live under.
func (c Config) ReferenceRoot() string {
	if dir := strings.TrimSpace(c.ReferenceDir); dir != "" {
		return dir
	}
	return datasets.DefaultReferenceDir
}

// WorkerCount returns the fuzzy-normalizer worker hint, applying the default
// when unset. The value is passed through to the normalizer unvalidated.
func (c Config) WorkerCount() int {
	if c.Workers <= 0 {
		return defaultWorkers
	}
	return c.Workers
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

func commandOrDefault(command, fallback []string) []string {
	src := command
	if len(src) == 0 {
		src = fallback
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Load reads the application configuration from the specified path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	if config.Workers <= 0 {
		config.Workers = defaultWorkers
	}

	return config, nil
}
