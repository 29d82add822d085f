package probe

import (
	"context"

	"github.com/CristiGvl/picoCPUCount/internal/platform"
)

// std serves the package-level query functions. Its registry carries
// the built-in probes and can be extended through Register.
var std = NewDispatcher(builtinRegistry())

func builtinRegistry() *Registry {
	reg := NewRegistry()
	reg.Register(platform.Linux, newLinuxProbe())
	reg.Register(platform.Windows, newWindowsProbe())
	reg.Register(platform.Darwin, newDarwinProbe())
	for _, key := range []platform.Key{platform.FreeBSD, platform.OpenBSD, platform.NetBSD, platform.Dragonfly} {
		reg.Register(key, newSysctlProbe())
	}
	return reg
}

// Default returns the dispatcher backing the package-level functions.
func Default() *Dispatcher { return std }

// Register adds or replaces a probe in the default registry. Callers
// use this to add support for a platform the package does not cover.
func Register(key platform.Key, p Prober) {
	std.Registry.Register(key, p)
}

// Counts returns the full {cores, processors} pair for the current
// platform.
func Counts(ctx context.Context) (Result, error) {
	return std.Counts(ctx)
}

// Cores returns the physical core count for the current platform.
func Cores(ctx context.Context) (int, error) {
	return std.Cores(ctx)
}

// Processors returns the logical processor count for the current
// platform.
func Processors(ctx context.Context) (int, error) {
	return std.Processors(ctx)
}
