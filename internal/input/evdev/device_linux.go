//go:build linux

package evdev

import (
	"errors"
	"io/fs"

	"github.com/holoplot/go-evdev"
	"golang.org/x/sys/unix"

	"github.com/dshills/keychord/internal/input"
)

// Raw key event values.
const (
	valueRelease = 0
	valuePress   = 1
	valueRepeat  = 2
)

type evdevDevice struct {
	dev *evdev.InputDevice
}

func openDevice(path string) (device, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}
	return &evdevDevice{dev: dev}, nil
}

func (d *evdevDevice) Next() (input.Event, bool, error) {
	raw, err := d.dev.ReadOne()
	if err != nil {
		return input.Event{}, false, err
	}
	ev, ok := translate(raw.Type, raw.Code, raw.Value)
	return ev, ok, nil
}

func (d *evdevDevice) Close() error {
	return d.dev.Close()
}

// translate maps a raw event to a key transition. Repeats, unknown codes,
// and non-key events are skipped.
func translate(typ evdev.EvType, code evdev.EvCode, value int32) (input.Event, bool) {
	if typ != evdev.EV_KEY {
		return input.Event{}, false
	}
	k, ok := codes[code]
	if !ok {
		return input.Event{}, false
	}

	switch value {
	case valuePress:
		return input.Pressed(k), true
	case valueRelease:
		return input.Released(k), true
	default:
		return input.Event{}, false
	}
}

// isRetryable reports whether err means the device is absent or was
// unplugged, as opposed to a permission or configuration problem.
func isRetryable(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, unix.ENODEV)
}
