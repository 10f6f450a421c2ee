package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Common errors for configuration loading.
var (
	ErrFileNotFound     = errors.New("configuration file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrUnknownFormat    = errors.New("unrecognized configuration format")
	ErrNoConfigFile     = errors.New("no configuration file found")
)

// discoveryOrder lists the file names probed by Discover, most specific
// first.
var discoveryOrder = []string{
	"gradual.ini",
	"gradual.toml",
	"gradual.yaml",
	"gradual.yml",
	"gradual.json",
	"setup.cfg",
	"pyproject.toml",
}

// FileSource reads a configuration file from disk, auto-detecting the format
// from the file extension (.ini/.cfg, .toml, .yaml/.yml, .json).
type FileSource struct {
	Path string
}

// Name implements Source.
func (f FileSource) Name() string {
	return f.Path
}

// Load implements Source.
func (f FileSource) Load() (*Document, error) {
	info, err := os.Stat(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, f.Path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, f.Path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", f.Path)
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, f.Path)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// An empty file is a valid configuration: everything stays at its
	// default.
	if len(strings.TrimSpace(string(data))) == 0 {
		return &Document{Source: f.Path}, nil
	}

	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".ini", ".cfg":
		return ParseINI(f.Path, data)
	case ".toml":
		return ParseTOML(f.Path, data)
	case ".yaml", ".yml":
		return ParseYAML(f.Path, data)
	case ".json":
		return ParseJSON(f.Path, data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f.Path)
	}
}

// Discover probes dir for a configuration file in the conventional order:
// gradual.ini, gradual.toml, gradual.yaml/.yml, gradual.json, then the
// shared Python project files setup.cfg and pyproject.toml.
func Discover(dir string) (string, error) {
	for _, name := range discoveryOrder {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w in %s (looked for %s)", ErrNoConfigFile, dir, strings.Join(discoveryOrder, ", "))
}
