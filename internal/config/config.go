// Package config loads bitpoker settings from a YAML file overlaid with
// BITPOKER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// DefaultFile is read when neither a path nor BITPOKER_CONFIG_FILE is given.
const DefaultFile = "bitpoker.yaml"

// Config provides configuration for bitpoker
type Config struct {
	Log struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	}
	Enumerate struct {
		Workers    int    `yaml:"workers" envconfig:"workers"`
		ResultsDir string `yaml:"resultsDir" envconfig:"results_dir"`
	}
	TablePath string `yaml:"tablePath" envconfig:"table_path"`
	Buckets   int    `yaml:"buckets" envconfig:"buckets"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	var c Config
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.Enumerate.Workers = runtime.NumCPU()
	c.Enumerate.ResultsDir = "results"
	c.TablePath = "canonical_probabilities_headsup.json"
	c.Buckets = 10
	return c
}

// Load reads the configuration. path falls back to BITPOKER_CONFIG_FILE and
// then DefaultFile; a missing file leaves the defaults in place. Environment
// variables are applied last.
func Load(path string) (Config, error) {
	if path == "" {
		path = getenv("BITPOKER_CONFIG_FILE", DefaultFile)
	}

	config := Default()
	file, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return config, err
	default:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return config, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	if err := envconfig.Process("bitpoker", &config); err != nil {
		return config, err
	}
	return config, nil
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val != "" {
		return val
	}

	return defaultValue
}
