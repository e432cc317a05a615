package process

import "syscall"

// Signals target the negated pid so the whole process group started by
// Setpgid is covered, not just the direct child.

func terminateGroup(pid int) error {
	return syscall.Kill(-pid, syscall.SIGTERM)
}

func killGroup(pid int) error {
	return syscall.Kill(-pid, syscall.SIGKILL)
}
