//go:build !windows
// +build !windows

package console

import "syscall"

// setNonblock toggles O_NONBLOCK on a file descriptor so single-byte
// keyboard polls return immediately with EAGAIN instead of waiting.
func setNonblock(fd int, nonblock bool) error {
	return syscall.SetNonblock(fd, nonblock)
}
