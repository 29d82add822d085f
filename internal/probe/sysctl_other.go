//go:build !darwin && !freebsd && !openbsd && !netbsd && !dragonfly

package probe

// sysctlUint32 has no syscall to use on this platform; the probe falls
// back to spawning the sysctl utility.
func sysctlUint32(string) (int, bool) {
	return 0, false
}
