package loader

import (
	"errors"
	"io/fs"
	"reflect"
	"strings"
	"testing"
	"time"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) Open(name string) (fs.File, error) {
	return nil, fs.ErrNotExist
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memFileInfo) ModTime() time.Time { return time.Now() }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

type testConfig struct {
	Name  string     `toml:"name" yaml:"name"`
	Retry *bool      `toml:"retry" yaml:"retry"`
	Items []testItem `toml:"items" yaml:"items"`
}

type testItem struct {
	Keys  []string `toml:"keys" yaml:"keys"`
	Value any      `toml:"value" yaml:"value"`
}

func checkTestConfig(t *testing.T, cfg testConfig) {
	t.Helper()

	if cfg.Name != "desk" {
		t.Errorf("Name = %q, want desk", cfg.Name)
	}
	if cfg.Retry == nil || *cfg.Retry {
		t.Errorf("Retry = %v, want false", cfg.Retry)
	}
	if len(cfg.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(cfg.Items))
	}
	if !reflect.DeepEqual(cfg.Items[0].Keys, []string{"ctrl", "a"}) {
		t.Errorf("Items[0].Keys = %v", cfg.Items[0].Keys)
	}
	if cfg.Items[0].Value != "echo one" {
		t.Errorf("Items[0].Value = %v (%T), want string", cfg.Items[0].Value, cfg.Items[0].Value)
	}
	if !reflect.DeepEqual(cfg.Items[1].Value, []any{"notify-send", "hi"}) {
		t.Errorf("Items[1].Value = %v (%T), want []any", cfg.Items[1].Value, cfg.Items[1].Value)
	}
}

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/keychord.toml", `
name = "desk"
retry = false

[[items]]
keys = ["ctrl", "a"]
value = "echo one"

[[items]]
keys = ["meta"]
value = ["notify-send", "hi"]
`)

	loader := NewTOMLLoaderWithFS(memfs, "/keychord.toml")
	if loader.Path() != "/keychord.toml" {
		t.Errorf("Path() = %q", loader.Path())
	}

	var cfg testConfig
	if err := loader.Load(&cfg); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	checkTestConfig(t, cfg)
}

func TestYAMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/keychord.yaml", `
name: desk
retry: false
items:
  - keys: [ctrl, a]
    value: echo one
  - keys: [meta]
    value: [notify-send, hi]
`)

	var cfg testConfig
	if err := NewYAMLLoaderWithFS(memfs, "/keychord.yaml").Load(&cfg); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	checkTestConfig(t, cfg)
}

func TestLoader_LoadNonExistent(t *testing.T) {
	memfs := NewMemFS()

	for _, path := range []string{"/missing.toml", "/missing.yaml"} {
		var cfg testConfig
		err := ForPath(memfs, path).Load(&cfg)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("%s: expected fs.ErrNotExist, got %v", path, err)
		}
		if err != nil && !strings.Contains(err.Error(), path) {
			t.Errorf("%s: error %q does not name the path", path, err)
		}
	}
}

func TestTOMLLoader_LoadInvalid(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.toml", "name = \"desk\"\nretry = = true\n")

	var cfg testConfig
	err := NewTOMLLoaderWithFS(memfs, "/bad.toml").Load(&cfg)

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
	if perr.Path != "/bad.toml" {
		t.Errorf("Path = %q, want /bad.toml", perr.Path)
	}
	if perr.Line != 2 {
		t.Errorf("Line = %d, want 2", perr.Line)
	}
	if !strings.Contains(perr.Error(), "line 2") {
		t.Errorf("Error() = %q, want line number", perr.Error())
	}
}

func TestTOMLLoader_UnknownField(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/typo.toml", "name = \"desk\"\nnmae = \"desk\"\n")

	var cfg testConfig
	err := NewTOMLLoaderWithFS(memfs, "/typo.toml").Load(&cfg)

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
	if !strings.Contains(perr.Message, `"nmae"`) {
		t.Errorf("Message = %q, want the unknown key", perr.Message)
	}
	if perr.Line != 2 {
		t.Errorf("Line = %d, want 2", perr.Line)
	}
}

func TestYAMLLoader_UnknownField(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/typo.yml", "name: desk\nnmae: desk\n")

	var cfg testConfig
	err := NewYAMLLoaderWithFS(memfs, "/typo.yml").Load(&cfg)

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
	if perr.Line != 2 {
		t.Errorf("Line = %d, want 2", perr.Line)
	}
	if !strings.Contains(perr.Message, "nmae") {
		t.Errorf("Message = %q, want the unknown key", perr.Message)
	}
}

func TestYAMLLoader_LoadInvalid(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.yaml", "name: [desk\n")

	var cfg testConfig
	err := NewYAMLLoaderWithFS(memfs, "/bad.yaml").Load(&cfg)

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
	if perr.Unwrap() == nil {
		t.Error("expected wrapped decoder error")
	}
}

func TestYAMLLoader_EmptyDocument(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/empty.yaml", "")

	cfg := testConfig{Name: "unchanged"}
	if err := NewYAMLLoaderWithFS(memfs, "/empty.yaml").Load(&cfg); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "unchanged" {
		t.Errorf("Name = %q, want unchanged", cfg.Name)
	}
}

func TestLoader_LoadFromReader(t *testing.T) {
	var tomlCfg testConfig
	if err := NewTOMLLoader("").LoadFromReader(strings.NewReader(`name = "desk"`), &tomlCfg); err != nil {
		t.Fatalf("TOML LoadFromReader failed: %v", err)
	}
	if tomlCfg.Name != "desk" {
		t.Errorf("TOML Name = %q, want desk", tomlCfg.Name)
	}

	var yamlCfg testConfig
	if err := NewYAMLLoader("").LoadFromReader(strings.NewReader("name: desk"), &yamlCfg); err != nil {
		t.Fatalf("YAML LoadFromReader failed: %v", err)
	}
	if yamlCfg.Name != "desk" {
		t.Errorf("YAML Name = %q, want desk", yamlCfg.Name)
	}

	err := NewTOMLLoader("").LoadFromReader(strings.NewReader("name = "), &tomlCfg)
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Path != "<reader>" {
		t.Errorf("expected ParseError for <reader>, got %v", err)
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"keychord.toml", FormatTOML},
		{"keychord.yaml", FormatYAML},
		{"keychord.YML", FormatYAML},
		{"keychord", FormatTOML},
		{"/etc/keychord.conf", FormatTOML},
	}
	for _, tt := range tests {
		if got := FormatOf(tt.path); got != tt.want {
			t.Errorf("FormatOf(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestForPath(t *testing.T) {
	if _, ok := ForPath(nil, "a.yaml").(*YAMLLoader); !ok {
		t.Error("expected YAMLLoader for .yaml")
	}
	if _, ok := ForPath(nil, "a.toml").(*TOMLLoader); !ok {
		t.Error("expected TOMLLoader for .toml")
	}
}

func TestYAMLLine(t *testing.T) {
	tests := []struct {
		in       string
		wantLine int
		wantMsg  string
	}{
		{"yaml: line 3: mapping values are not allowed", 3, "mapping values are not allowed"},
		{"line 7: field x not found", 7, "field x not found"},
		{"yaml: unmarshal errors", 0, "unmarshal errors"},
	}
	for _, tt := range tests {
		line, msg := yamlLine(tt.in)
		if line != tt.wantLine || msg != tt.wantMsg {
			t.Errorf("yamlLine(%q) = %d, %q; want %d, %q", tt.in, line, msg, tt.wantLine, tt.wantMsg)
		}
	}
}
