package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"
)

// fileConfig holds defaults read from --config. Flags given on the command
// line always win over values from the file.
type fileConfig struct {
	Size     *int   `yaml:"size"`
	Mines    *int   `yaml:"mines"`
	Seed     *int64 `yaml:"seed"`
	Director string `yaml:"director"`
	Layout   string `yaml:"layout"`
	Fresh    *bool  `yaml:"fresh"`
	LogLevel string `yaml:"log-level"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	var config fileConfig
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return nil, fmt.Errorf("unable to parse config file %s: %w", path, err)
	}

	// Layouts are looked up next to the config file
	if config.Layout != "" && !filepath.IsAbs(config.Layout) {
		config.Layout = filepath.Join(filepath.Dir(path), config.Layout)
	}

	return &config, nil
}

func (config *fileConfig) values() map[string]string {
	values := make(map[string]string)
	if config.Size != nil {
		values["size"] = strconv.Itoa(*config.Size)
	}
	if config.Mines != nil {
		values["mines"] = strconv.Itoa(*config.Mines)
	}
	if config.Seed != nil {
		values["seed"] = strconv.FormatInt(*config.Seed, 10)
	}
	if config.Director != "" {
		values["director"] = config.Director
	}
	if config.Layout != "" {
		values["layout"] = config.Layout
	}
	if config.Fresh != nil {
		values["fresh"] = strconv.FormatBool(*config.Fresh)
	}
	if config.LogLevel != "" {
		values["log-level"] = config.LogLevel
	}
	return values
}

func (config *fileConfig) apply(flags *pflag.FlagSet) error {
	for name, value := range config.values() {
		if flags.Changed(name) {
			continue
		}
		if err := flags.Set(name, value); err != nil {
			return fmt.Errorf("invalid %s in config file: %w", name, err)
		}
	}
	return nil
}
