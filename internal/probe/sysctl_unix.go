//go:build darwin || freebsd || openbsd || netbsd || dragonfly

package probe

import "golang.org/x/sys/unix"

// sysctlUint32 reads a sysctl OID directly via the syscall, avoiding a
// subprocess. Unknown OIDs report !ok and the caller falls back to the
// sysctl utility.
func sysctlUint32(name string) (int, bool) {
	value, err := unix.SysctlUint32(name)
	if err != nil || value == 0 {
		return 0, false
	}
	return int(value), true
}
