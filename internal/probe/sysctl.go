package probe

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
)

const (
	oidPhysicalCPU = "hw.physicalcpu"
	oidLogicalCPU  = "hw.logicalcpu"
)

// sysctlProbe counts cores and processors on BSD-style systems from the
// hw.physicalcpu and hw.logicalcpu OIDs. It prefers the sysctl syscall
// (no subprocess) and falls back to spawning the sysctl utility and
// scraping its "key: value" output.
type sysctlProbe struct{}

func newSysctlProbe() Prober {
	return sysctlProbe{}
}

func (p sysctlProbe) Name() string { return "sysctl" }

func (p sysctlProbe) Probe(ctx context.Context) Result {
	cores, coresOK := sysctlUint32(oidPhysicalCPU)
	processors, procsOK := sysctlUint32(oidLogicalCPU)
	if coresOK && procsOK {
		return Result{Cores: cores, Processors: processors}
	}

	output, err := exec.CommandContext(ctx, "sysctl", oidPhysicalCPU, oidLogicalCPU).Output()
	if err != nil {
		return Result{}
	}
	return ParseSysctl(string(output))
}

// ParseSysctl reduces "key: value" sysctl output to the two counts.
// Lines for OIDs other than the two of interest are ignored.
func ParseSysctl(raw string) Result {
	var res Result
	for _, line := range strings.Split(raw, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			continue
		}
		switch strings.TrimSpace(key) {
		case oidPhysicalCPU:
			res.Cores = n
		case oidLogicalCPU:
			res.Processors = n
		}
	}
	return res
}
