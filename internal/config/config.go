// Package config handles objtool configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/objmesh/internal/mesh"
)

// Config holds all settings.
type Config struct {
	Mesh    MeshConfig    `yaml:"mesh"`
	Logging LoggingConfig `yaml:"logging"`
}

// MeshConfig holds model loading settings.
type MeshConfig struct {
	FacePolicy   string `yaml:"face_policy"`    // abort or skip
	Workers      int    `yaml:"workers"`        // >1 builds faces concurrently
	MaxLineBytes int    `yaml:"max_line_bytes"` // Longest accepted source line
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Mesh: MeshConfig{
			FacePolicy:   "abort",
			Workers:      1,
			MaxLineBytes: 1 << 20,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values that cannot be fixed up silently.
func (c *Config) Validate() error {
	if _, err := mesh.ParseFacePolicy(c.Mesh.FacePolicy); err != nil {
		return fmt.Errorf("mesh: %w", err)
	}
	if c.Mesh.Workers < 0 {
		return fmt.Errorf("mesh: workers must not be negative, got %d", c.Mesh.Workers)
	}
	if c.Mesh.MaxLineBytes < 0 {
		return fmt.Errorf("mesh: max_line_bytes must not be negative, got %d", c.Mesh.MaxLineBytes)
	}
	return nil
}

// BuildOptions converts the mesh section into mesh build options.
func (c *Config) BuildOptions() (mesh.BuildOptions, error) {
	policy, err := mesh.ParseFacePolicy(c.Mesh.FacePolicy)
	if err != nil {
		return mesh.BuildOptions{}, err
	}
	return mesh.BuildOptions{Policy: policy, Workers: c.Mesh.Workers}, nil
}
