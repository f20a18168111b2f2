package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// TOMLLoader loads configuration from TOML files.
type TOMLLoader struct {
	fs   FileSystem
	path string
}

// NewTOMLLoader creates a new TOML loader for the given path.
func NewTOMLLoader(path string) *TOMLLoader {
	return NewTOMLLoaderWithFS(DefaultFS(), path)
}

// NewTOMLLoaderWithFS creates a TOML loader with a custom file system.
func NewTOMLLoaderWithFS(fs FileSystem, path string) *TOMLLoader {
	return &TOMLLoader{
		fs:   fs,
		path: path,
	}
}

// Path returns the configured path.
func (l *TOMLLoader) Path() string {
	return l.path
}

// Load decodes the configured file into v.
func (l *TOMLLoader) Load(v any) error {
	data, err := readFile(l.fs, l.path)
	if err != nil {
		return err
	}
	return l.parse(l.path, data, v)
}

// LoadFromReader decodes configuration from r into v.
func (l *TOMLLoader) LoadFromReader(r io.Reader, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	return l.parse("<reader>", data, v)
}

// parse decodes TOML data into v, rejecting unknown fields.
func (l *TOMLLoader) parse(source string, data []byte, v any) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	err := dec.Decode(v)
	if err == nil {
		return nil
	}

	perr := &ParseError{Path: source, Message: err.Error(), Err: err}

	var decodeErr *toml.DecodeError
	var strictErr *toml.StrictMissingError
	// StrictMissingError unwraps to DecodeErrors; match it first.
	switch {
	case errors.As(err, &strictErr):
		perr.Message = "unknown field"
		if len(strictErr.Errors) > 0 {
			first := strictErr.Errors[0]
			perr.Line, perr.Column = first.Position()
			perr.Message = fmt.Sprintf("unknown field %q", strings.Join(first.Key(), "."))
		}
	case errors.As(err, &decodeErr):
		perr.Line, perr.Column = decodeErr.Position()
	}
	return perr
}
