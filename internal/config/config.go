package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dshills/keychord/internal/chord"
	"github.com/dshills/keychord/internal/key"
)

// Backend names an input backend.
type Backend string

// BackendEvdev reads a Linux event device.
const BackendEvdev Backend = "evdev"

// Executor is one validated backend binding.
type Executor struct {
	Backend  Backend
	Device   string
	Retry    bool
	Bindings *chord.Bindings
}

// Identity returns the backend kind and device. Executors with the same
// identity can swap bindings without restarting their input source.
func (e Executor) Identity() string {
	return string(e.Backend) + ":" + e.Device
}

// Config is a validated configuration.
type Config struct {
	// Path is the file the configuration was loaded from.
	Path string

	// Executors are the backend bindings in file order.
	Executors []Executor

	// Warnings are non-fatal problems found while loading.
	Warnings []string
}

// Resolve validates f and converts it into a Config. Every problem is
// collected into a single *ValidationError.
func Resolve(f *File) (*Config, error) {
	r := &resolver{}
	cfg := &Config{}

	for i, spec := range f.Executors {
		if exec, ok := r.executor(fmt.Sprintf("executors[%d]", i), spec); ok {
			cfg.Executors = append(cfg.Executors, exec)
		}
	}

	if len(r.errs) > 0 {
		return nil, &ValidationError{Errors: r.errs}
	}
	cfg.Warnings = r.warnings
	return cfg, nil
}

type resolver struct {
	errs     []*FieldError
	warnings []string
}

func (r *resolver) fail(path string, code ValidationErrorCode, value any, err error, format string, args ...any) {
	r.errs = append(r.errs, &FieldError{
		Path:    path,
		Message: fmt.Sprintf(format, args...),
		Value:   value,
		Code:    code,
		Err:     err,
	})
}

func (r *resolver) warn(path, format string, args ...any) {
	r.warnings = append(r.warnings, path+": "+fmt.Sprintf(format, args...))
}

func (r *resolver) executor(path string, spec ExecutorSpec) (Executor, bool) {
	before := len(r.errs)

	exec := Executor{
		Backend: Backend(spec.Backend),
		Device:  spec.Device,
		Retry:   true,
	}
	if spec.Retry != nil {
		exec.Retry = *spec.Retry
	}

	switch exec.Backend {
	case BackendEvdev:
		if spec.Device == "" {
			r.fail(path+".device", ErrCodeMissingDevice, nil, nil, "evdev backend requires a device")
		}
	case "":
		r.fail(path+".backend", ErrCodeUnknownBackend, nil, nil, "backend is required")
	default:
		r.fail(path+".backend", ErrCodeUnknownBackend, spec.Backend, nil, "unknown backend")
	}

	opts := chord.DefaultOptions()
	if spec.ChordOptions != nil {
		if spec.ChordOptions.Passthrough != nil {
			opts.Passthrough = *spec.ChordOptions.Passthrough
		}
		if spec.ChordOptions.Exclusive != nil {
			opts.Exclusive = *spec.ChordOptions.Exclusive
		}
	}

	if spec.Shell != nil && (len(spec.Shell) == 0 || spec.Shell[0] == "") {
		r.fail(path+".shell", ErrCodeMissingShell, nil, nil, "shell must name an executable")
	}

	chords := make([]chord.Chord, 0, len(spec.Chords))
	for i, cs := range spec.Chords {
		cpath := fmt.Sprintf("%s.chords[%d]", path, i)
		c, ok := r.chord(cpath, cs)
		if !ok {
			continue
		}
		if c.Action.Kind == chord.ActionShell && spec.Shell == nil {
			r.fail(cpath+".action", ErrCodeMissingShell, c.Action.Command, nil,
				"shell action requires a shell in %s.shell", path)
		}
		chords = append(chords, c)
	}

	if len(spec.Chords) == 0 {
		r.warn(path, "no chords configured")
	}

	exec.Bindings = &chord.Bindings{
		Chords:  chords,
		Options: opts,
		Shell:   slices.Clone(spec.Shell),
	}

	return exec, len(r.errs) == before
}

func (r *resolver) chord(path string, spec ChordSpec) (chord.Chord, bool) {
	before := len(r.errs)

	if len(spec.Sequence) == 0 {
		r.fail(path+".sequence", ErrCodeEmptySequence, nil, nil, "sequence must list at least one key")
	}

	seq := make([]chord.Pattern, 0, len(spec.Sequence))
	for i, text := range spec.Sequence {
		ppath := fmt.Sprintf("%s.sequence[%d]", path, i)
		p, err := chord.ParsePattern(text)
		if err != nil {
			var unknown *key.UnknownKeyError
			switch {
			case errors.As(err, &unknown):
				r.fail(ppath, ErrCodeUnknownKey, unknown.Name, err, "unknown key")
			case errors.Is(err, chord.ErrEmptyPattern):
				r.fail(ppath, ErrCodeEmptyPattern, text, err, "pattern has an empty alternative")
			default:
				r.fail(ppath, ErrCodeUnknownKey, text, err, "%v", err)
			}
			continue
		}
		for _, dup := range p.Duplicates() {
			r.warn(ppath, "key %s listed more than once in %q", dup, text)
		}
		seq = append(seq, p)
	}

	action, ok := parseAction(spec.Action)
	if !ok {
		r.fail(path+".action", ErrCodeInvalidAction, spec.Action, nil,
			"action must be a string or a non-empty array of strings")
	}

	c := chord.Chord{Sequence: seq, Action: action}
	if spec.Options != nil && (spec.Options.Passthrough != nil || spec.Options.Exclusive != nil) {
		c.Override = &chord.Override{
			Passthrough: spec.Options.Passthrough,
			Exclusive:   spec.Options.Exclusive,
		}
	}
	return c, len(r.errs) == before
}

// parseAction converts a decoded action value. Both decoders produce a
// string or a []any of strings.
func parseAction(v any) (chord.Action, bool) {
	switch a := v.(type) {
	case string:
		return chord.Shell(a), true
	case []string:
		if len(a) == 0 || a[0] == "" {
			return chord.Action{}, false
		}
		return chord.Command(a...), true
	case []any:
		if len(a) == 0 {
			return chord.Action{}, false
		}
		argv := make([]string, len(a))
		for i, item := range a {
			s, ok := item.(string)
			if !ok {
				return chord.Action{}, false
			}
			argv[i] = s
		}
		if argv[0] == "" {
			return chord.Action{}, false
		}
		return chord.Command(argv...), true
	default:
		return chord.Action{}, false
	}
}
