package probe

import (
	"fmt"
	"time"

	"github.com/CristiGvl/picoCPUCount/internal/platform"
)

// ConflictError reports a query that requested the cores-only and
// processors-only selections at the same time.
type ConflictError struct {
	Selection Selection
}

func (e *ConflictError) Error() string {
	return "query: cores-only and processors-only selections are mutually exclusive"
}

// UnavailableError reports that no probe is registered for the platform
// the process is running on.
type UnavailableError struct {
	Platform platform.Key
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("no probe registered for platform %q", string(e.Platform))
}

// FailureError reports a probe that ran but produced a missing or
// non-positive count, usually because the platform tool's output did not
// parse.
type FailureError struct {
	Probe  string
	Result Result
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("probe %s returned invalid counts (cores=%d, processors=%d)",
		e.Probe, e.Result.Cores, e.Result.Processors)
}

// TimeoutError reports a probe whose underlying subprocess did not
// complete within the dispatcher's bound.
type TimeoutError struct {
	Probe string
	Limit time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("probe %s did not complete within %s", e.Probe, e.Limit)
}
