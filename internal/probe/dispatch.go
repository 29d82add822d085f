package probe

import (
	"context"
	"errors"
	"time"

	"github.com/CristiGvl/picoCPUCount/internal/platform"
)

// Selection picks what a query returns. The zero value selects the full
// pair; the two flags narrow it to a single count and must not be
// combined.
type Selection uint8

const (
	SelectBoth       Selection = 0
	SelectCores      Selection = 1 << 0
	SelectProcessors Selection = 1 << 1
)

// DefaultTimeout bounds a single probe invocation. Probes may spawn a
// subprocess and block on it flushing its output; this is the only slow
// step in a query.
const DefaultTimeout = 10 * time.Second

// Dispatcher resolves the current platform to a probe, invokes it, and
// validates the result. It holds no state besides its registry; every
// query is an independent request/response.
type Dispatcher struct {
	Registry *Registry

	// Current yields the platform key for the running process. Defaults
	// to platform.Current; tests substitute their own.
	Current func() platform.Key

	// Timeout bounds the probe invocation. Zero disables the bound.
	Timeout time.Duration
}

// NewDispatcher creates a dispatcher over reg with the default platform
// source and timeout.
func NewDispatcher(reg *Registry) *Dispatcher {
	return &Dispatcher{
		Registry: reg,
		Current:  platform.Current,
		Timeout:  DefaultTimeout,
	}
}

// Query runs a single probe cycle: resolve the current platform's probe,
// invoke it, validate the counts, and shape the result per sel. It
// returns *ConflictError when both selection flags are set,
// *UnavailableError when the platform has no probe, *FailureError when
// the probe produced a non-positive count, and *TimeoutError when the
// probe overran the dispatcher's bound. A failed query is never retried
// internally.
func (d *Dispatcher) Query(ctx context.Context, sel Selection) (Result, error) {
	if sel&SelectCores != 0 && sel&SelectProcessors != 0 {
		return Result{}, &ConflictError{Selection: sel}
	}

	key := d.Current()
	prober, ok := d.Registry.Resolve(key)
	if !ok {
		return Result{}, &UnavailableError{Platform: key}
	}

	res, err := d.invoke(ctx, prober)
	if err != nil {
		return Result{}, err
	}
	if !res.valid() {
		return Result{}, &FailureError{Probe: prober.Name(), Result: res}
	}

	switch {
	case sel&SelectCores != 0:
		return Result{Cores: res.Cores}, nil
	case sel&SelectProcessors != 0:
		return Result{Processors: res.Processors}, nil
	}
	return res, nil
}

// Counts returns the full {cores, processors} pair.
func (d *Dispatcher) Counts(ctx context.Context) (Result, error) {
	return d.Query(ctx, SelectBoth)
}

// Cores returns the physical core count only.
func (d *Dispatcher) Cores(ctx context.Context) (int, error) {
	res, err := d.Query(ctx, SelectCores)
	return res.Cores, err
}

// Processors returns the logical processor count only.
func (d *Dispatcher) Processors(ctx context.Context) (int, error) {
	res, err := d.Query(ctx, SelectProcessors)
	return res.Processors, err
}

// invoke runs the probe under the dispatcher's timeout. The probe runs
// in its own goroutine so a wedged subprocess cannot block the caller
// past the bound.
func (d *Dispatcher) invoke(ctx context.Context, p Prober) (Result, error) {
	if d.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}

	done := make(chan Result, 1)
	go func() {
		done <- p.Probe(ctx)
	}()

	select {
	case res := <-done:
		return res, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Result{}, &TimeoutError{Probe: p.Name(), Limit: d.Timeout}
		}
		return Result{}, ctx.Err()
	}
}
