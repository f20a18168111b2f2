// Package config loads and validates keychord configuration.
//
// A configuration file lists executors. Each executor names an input
// backend and device, an optional shell, matching options, and the chords
// it binds:
//
//	[[executors]]
//	backend = "evdev"
//	device = "/dev/input/by-id/usb-kbd-event-kbd"
//	shell = ["/bin/sh", "-c"]
//
//	[[executors.chords]]
//	sequence = ["ctrl", "alt", "t"]
//	action = "alacritty"
//
// Files are TOML unless their extension is .yaml or .yml.
//
// # Validation
//
// Resolve checks the whole file before returning, so one ValidationError
// lists every problem with its location, for example
// executors[0].chords[2].sequence[1]. Problems that do not prevent the
// configuration from working, such as an executor with no chords, are
// returned as Config.Warnings instead.
//
// # Live reload
//
// Manager keeps the configuration in effect and, once Watch is called,
// reloads it when the file changes. Observers registered with Subscribe
// receive a notify.Change for every reload, including rejected ones. A
// rejected reload leaves the previous configuration in place.
//
// # Sub-packages
//
//   - loader: TOML and YAML decoding with strict field checking
//   - watcher: debounced fsnotify file watching
//   - notify: reload notification fan-out
package config
