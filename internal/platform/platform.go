package platform

import (
	"fmt"
	"runtime"
)

// Key identifies the operating system family the process is running on.
// It doubles as the lookup key for the probe registry.
type Key string

const (
	Linux     Key = "linux"
	Windows   Key = "windows"
	Darwin    Key = "darwin"
	FreeBSD   Key = "freebsd"
	OpenBSD   Key = "openbsd"
	NetBSD    Key = "netbsd"
	Dragonfly Key = "dragonfly"
)

// Current returns the key for the operating system the process is running on.
func Current() Key {
	return Key(runtime.GOOS)
}

// Supported returns the platforms with a built-in probe.
func Supported() []Key {
	return []Key{Linux, Windows, Darwin, FreeBSD, OpenBSD, NetBSD, Dragonfly}
}

// IsSupported returns true if the current OS has a built-in probe.
func IsSupported() bool {
	current := Current()
	for _, key := range Supported() {
		if key == current {
			return true
		}
	}
	return false
}

// ValidateSupport returns an error if the current OS has no built-in probe.
func ValidateSupport() error {
	if !IsSupported() {
		return fmt.Errorf("unsupported operating system: %s. Supported: %v", runtime.GOOS, Supported())
	}
	return nil
}
