// Package config handles prtreport configuration loading.
package config

import "time"

// Config holds all settings.
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Report     ReportConfig     `yaml:"report"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GenerationConfig holds model generation settings.
type GenerationConfig struct {
	MeshCells   int           `yaml:"mesh_cells"`   // marching cubes cells along the longest axis
	RuleTimeout time.Duration `yaml:"rule_timeout"` // hard limit per rule evaluation
}

// ReportConfig holds report output settings.
type ReportConfig struct {
	Strict bool `yaml:"strict"` // reject malformed buffers instead of truncating
	Matrix bool `yaml:"matrix"` // also print vertex and face matrices
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Generation: GenerationConfig{
			MeshCells:   64,
			RuleTimeout: 5 * time.Second,
		},
		Report: ReportConfig{
			Strict: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
