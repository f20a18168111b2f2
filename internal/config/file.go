package config

// File is the decoded form of a configuration file.
type File struct {
	Executors []ExecutorSpec `toml:"executors" yaml:"executors"`
}

// ExecutorSpec binds one input backend to a list of chords.
type ExecutorSpec struct {
	Backend      string       `toml:"backend" yaml:"backend"`
	Device       string       `toml:"device" yaml:"device"`
	Retry        *bool        `toml:"retry" yaml:"retry"`
	Shell        []string     `toml:"shell" yaml:"shell"`
	ChordOptions *OptionsSpec `toml:"chord_options" yaml:"chord_options"`
	Chords       []ChordSpec  `toml:"chords" yaml:"chords"`
}

// OptionsSpec holds matching options. Absent fields take the default or,
// for a chord, the executor-wide value.
type OptionsSpec struct {
	Passthrough *bool `toml:"passthrough" yaml:"passthrough"`
	Exclusive   *bool `toml:"exclusive" yaml:"exclusive"`
}

// ChordSpec is one chord as written in the file. Action is a string for a
// shell action or an array of strings for a literal argv.
type ChordSpec struct {
	Sequence []string     `toml:"sequence" yaml:"sequence"`
	Action   any          `toml:"action" yaml:"action"`
	Options  *OptionsSpec `toml:"options" yaml:"options"`
}
