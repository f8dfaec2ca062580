package cmd

import (
	"os"

	"gopkg.in/yaml.v3"
)

// CLIConfig is the optional config file's shape; every field has a usable
// zero value, so a missing file is not an error.
type CLIConfig struct {
	LogLevel     string `yaml:"logLevel"`
	OutputFormat string `yaml:"outputFormat"`
}

// LoadConfig reads path if it's non-empty and exists; otherwise it returns
// the default CLIConfig (info-level logging, "repr" output format). Setting
// outputFormat to "tree" in the config file switches parseCmd to the same
// depth-indented rendering dumpCmd always uses.
func LoadConfig(path string) (CLIConfig, error) {
	cfg := CLIConfig{LogLevel: "info", OutputFormat: "repr"}

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return CLIConfig{}, err
	}
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return CLIConfig{}, err
	}
	return cfg, nil
}
