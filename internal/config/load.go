package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dshills/keychord/internal/config/loader"
)

const (
	// AppName names the configuration directory.
	AppName = "keychord"

	// DefaultFileName is the file looked up in the configuration directory.
	DefaultFileName = "keychord.toml"
)

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	fs loader.FileSystem
}

// WithFileSystem reads configuration files from fsys instead of the OS.
func WithFileSystem(fsys loader.FileSystem) LoadOption {
	return func(o *loadOptions) {
		o.fs = fsys
	}
}

// DefaultPath returns the configuration file used when none is given:
// keychord/keychord.toml under the user configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, AppName, DefaultFileName), nil
}

// Load reads, decodes and validates the file at path. A missing file
// yields an error matching ErrFileNotFound.
func Load(path string, opts ...LoadOption) (*Config, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	var f File
	if err := loader.ForPath(o.fs, path).Load(&f); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		return nil, err
	}

	cfg, err := Resolve(&f)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			verr.File = path
		}
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// LoadDefault loads the file at DefaultPath. When it does not exist the
// directory is created and an empty configuration is returned with a
// warning.
func LoadDefault(opts ...LoadOption) (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}

	cfg, err := Load(path, opts...)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, ErrFileNotFound) {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}
	return &Config{
		Path:     path,
		Warnings: []string{fmt.Sprintf("no configuration found, create %s to bind chords", path)},
	}, nil
}
