//go:build windows

package probe

import (
	"context"

	"github.com/StackExchange/wmi"
)

// win32Processor mirrors the two Win32_Processor fields the probe needs.
type win32Processor struct {
	NumberOfCores             uint32
	NumberOfLogicalProcessors uint32
}

// wmiProbe queries Win32_Processor over WMI, summing the counts across
// sockets. The wmic text scrape remains as a fallback for hosts where
// the WMI service is unavailable.
type wmiProbe struct {
	fallback wmicProbe
}

func newWindowsProbe() Prober {
	return wmiProbe{}
}

func (p wmiProbe) Name() string { return "wmi" }

func (p wmiProbe) Probe(ctx context.Context) Result {
	var procs []win32Processor
	q := "SELECT NumberOfCores,NumberOfLogicalProcessors FROM Win32_Processor"
	if err := wmi.Query(q, &procs); err != nil || len(procs) == 0 {
		return p.fallback.Probe(ctx)
	}

	var res Result
	for _, proc := range procs {
		res.Cores += int(proc.NumberOfCores)
		res.Processors += int(proc.NumberOfLogicalProcessors)
	}
	return res
}
