//go:build !windows

package probe

// newWindowsProbe falls back to the wmic text scrape on non-windows
// builds, where the WMI client cannot compile.
func newWindowsProbe() Prober {
	return wmicProbe{}
}
