package probe

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
)

// profilerProbe counts cores and processors on macOS by scraping the
// hardware overview section of system_profiler. The profiler is
// preferred over sysctl because the two tools have been observed to
// disagree on core counts on the same machine; sysctl only fills in
// fields the profiler report omits.
type profilerProbe struct {
	sysctl sysctlProbe
}

func newDarwinProbe() Prober {
	return profilerProbe{}
}

func (p profilerProbe) Name() string { return "system_profiler" }

func (p profilerProbe) Probe(ctx context.Context) Result {
	var res Result
	output, err := exec.CommandContext(ctx, "system_profiler", "SPHardwareDataType").Output()
	if err == nil {
		res = ParseHardwareProfile(string(output))
	}
	if res.valid() {
		return res
	}

	// Older reports omit "Number of Processors" on single-socket
	// machines, and Apple Silicon reports omit it entirely.
	fallback := p.sysctl.Probe(ctx)
	if res.Cores == 0 {
		res.Cores = fallback.Cores
	}
	if res.Processors == 0 {
		res.Processors = fallback.Processors
	}
	return res
}

// ParseHardwareProfile reduces a system_profiler hardware report to the
// two counts, reading the indented "Total Number of Cores" and "Number
// of Processors" lines. Apple Silicon appends a breakdown after the
// core count ("8 (4 performance and 4 efficiency)"); only the leading
// integer is taken.
func ParseHardwareProfile(raw string) Result {
	var res Result
	for _, line := range strings.Split(raw, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "Total Number of Cores":
			res.Cores = leadingInt(value)
		case "Number of Processors":
			res.Processors = leadingInt(value)
		}
	}
	return res
}

// leadingInt parses the first whitespace-delimited field of value,
// returning 0 when there is none or it is not an integer.
func leadingInt(value string) int {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return n
}
