//go:build windows
// +build windows

package console

// setNonblock is a no-op on Windows since file descriptor non-blocking
// mode is not directly supported there; console reads are handled by
// os.Stdin.Read semantics instead.
func setNonblock(fd int, nonblock bool) error {
	return nil
}
