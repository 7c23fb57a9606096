package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// runConfig holds the analysis parameters a YAML file may override. Zero
// mixer thresholds mean "use the package default" and are resolved against
// mixer.NewConfig's defaults in mixerConfigFrom.
type runConfig struct {
	MaxIters int `yaml:"max_iters"`
	MaxHops  int `yaml:"max_hops"`
	Mixer    struct {
		DegreeThreshold    int    `yaml:"degree_threshold"`
		DiversityThreshold int    `yaml:"diversity_threshold"`
		WindowSecs         uint64 `yaml:"window_secs"`
	} `yaml:"mixer"`
}

// defaultRunConfig returns the built-in defaults used when no --config
// flag is given.
func defaultRunConfig() runConfig {
	return runConfig{MaxIters: 20, MaxHops: 4}
}

// loadRunConfig reads and decodes a YAML config file at path, starting
// from defaultRunConfig so an omitted field keeps its default.
func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
