//go:build !linux

package evdev

func openDevice(string) (device, error) {
	return nil, ErrUnsupported
}

func isRetryable(error) bool {
	return false
}
