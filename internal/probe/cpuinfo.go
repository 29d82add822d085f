package probe

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
)

const procCPUInfo = "/proc/cpuinfo"

// cpuinfoProbe counts cores and processors on Linux and Cygwin-like
// systems from the colon-delimited records in /proc/cpuinfo, with
// gopsutil as a fallback source when procfs is unreadable.
type cpuinfoProbe struct {
	// Path overrides the procfs location for tests.
	Path string
}

func newLinuxProbe() Prober {
	return cpuinfoProbe{Path: procCPUInfo}
}

func (p cpuinfoProbe) Name() string { return "cpuinfo" }

func (p cpuinfoProbe) Probe(ctx context.Context) Result {
	if content, err := os.ReadFile(p.Path); err == nil {
		if res := ParseCPUInfo(string(content)); res.valid() {
			return res
		}
	}
	return p.gopsutilCounts(ctx)
}

// gopsutilCounts derives the pair from gopsutil's per-logical-CPU info
// records. Used when /proc/cpuinfo is missing or did not parse.
func (p cpuinfoProbe) gopsutilCounts(ctx context.Context) Result {
	info, err := cpu.InfoWithContext(ctx)
	if err != nil || len(info) == 0 {
		return Result{}
	}
	return Result{
		Cores:      int(info[0].Cores),
		Processors: len(info),
	}
}

// ParseCPUInfo reduces /proc/cpuinfo text to the two counts. The
// processor count is the number of "processor" records; the core count
// is the number of distinct (physical id, core id) pairs, falling back
// to the "cpu cores" header when the per-core ids are absent (common in
// VMs and containers).
func ParseCPUInfo(raw string) Result {
	var (
		processors  int
		headerCores int
		physicalID  string
	)
	coreSet := make(map[string]struct{})

	for _, line := range strings.Split(raw, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "processor":
			processors++
		case "physical id":
			physicalID = value
		case "core id":
			coreSet[physicalID+":"+value] = struct{}{}
		case "cpu cores":
			if n, err := strconv.Atoi(value); err == nil && headerCores == 0 {
				headerCores = n
			}
		}
	}

	cores := len(coreSet)
	if cores == 0 {
		cores = headerCores
	}
	return Result{Cores: cores, Processors: processors}
}
