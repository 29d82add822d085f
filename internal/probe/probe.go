// Package probe determines the number of physical cores and logical
// processors on the host. One probe exists per supported platform family;
// a registry maps platform keys to probes and a dispatcher invokes the
// probe for the current platform and validates what it returns.
package probe

import "context"

// Result holds the counts a probe produced. A fresh Result is built on
// every query; nothing is cached across calls.
type Result struct {
	Cores      int `json:"cores"`
	Processors int `json:"processors"`
}

// valid reports whether both counts are positive. Validation lives in the
// dispatcher, not in the probes.
func (r Result) valid() bool {
	return r.Cores > 0 && r.Processors > 0
}

// Prober gathers platform-specific raw data and reduces it to a Result.
// A probe that cannot determine a value returns a zero in that field
// instead of failing; the dispatcher classifies zeros uniformly as a
// probe failure.
type Prober interface {
	// Name identifies the probe in diagnostics.
	Name() string
	// Probe produces the counts. The context bounds any subprocess the
	// probe spawns.
	Probe(ctx context.Context) Result
}

// ProbeFunc adapts a plain function to the Prober interface via Named.
type ProbeFunc func(ctx context.Context) Result

type namedProbe struct {
	name string
	fn   ProbeFunc
}

func (p namedProbe) Name() string { return p.name }

func (p namedProbe) Probe(ctx context.Context) Result { return p.fn(ctx) }

// Named wraps fn as a Prober identified by name.
func Named(name string, fn ProbeFunc) Prober {
	return namedProbe{name: name, fn: fn}
}
