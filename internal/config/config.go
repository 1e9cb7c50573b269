package config

// Config represents the complete abaplens configuration.
// It can be loaded from .abaplens.yml with environment variable overrides.
// The wire protocol itself takes no configuration; these values only set
// CLI defaults.
type Config struct {
	Generator GeneratorConfig `yaml:"generator" mapstructure:"generator"`
	Analyze   AnalyzeConfig   `yaml:"analyze" mapstructure:"analyze"`
}

// GeneratorConfig sets template generation defaults.
type GeneratorConfig struct {
	Target string `yaml:"target" mapstructure:"target"` // "typescript", "javascript" or "python"
	Banner bool   `yaml:"banner" mapstructure:"banner"` // emit the comment banner
}

// AnalyzeConfig defines which files the analyze command picks up.
type AnalyzeConfig struct {
	Include []string `yaml:"include" mapstructure:"include"` // glob patterns for ABAP sources
	Ignore  []string `yaml:"ignore" mapstructure:"ignore"`   // glob patterns to skip
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Target: "typescript",
			Banner: true,
		},
		Analyze: AnalyzeConfig{
			Include: []string{
				"*.abap",
				"**/*.abap",
			},
			Ignore: []string{
				".git/**",
				"node_modules/**",
			},
		},
	}
}
