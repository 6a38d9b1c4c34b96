// Package config loads default acronymcreator settings from a YAML file.
// Every key is optional; unset keys leave the built-in defaults alone.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the decoded content of a config file
type File struct {
	IncludeArticles *bool   `yaml:"include_articles"`
	MinLength       *int    `yaml:"min_length"`
	MaxWords        *int    `yaml:"max_words"`
	Lowercase       *bool   `yaml:"lowercase"`
	Mode            *string `yaml:"mode"`
	Format          *string `yaml:"format"`
}

// Load reads the config file at path. An empty path yields an empty File.
func Load(path string) (*File, error) {
	if path == "" {
		return &File{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a config document. Unknown keys are rejected.
func Decode(r io.Reader) (*File, error) {
	var file File

	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&file); err != nil {
		// An empty document is a valid, empty config
		if errors.Is(err, io.EOF) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &file, nil
}
