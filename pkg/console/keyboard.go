package console

import (
	"errors"
	"fmt"

	"golang.org/x/term"
)

// keyboard owns the raw-mode configuration of the input terminal for the
// lifetime of a session: character-at-a-time delivery, no echo, and a
// non-blocking descriptor so polls return instead of waiting.
type keyboard struct {
	fd       int
	oldState *term.State
	acquired bool
}

func newKeyboard(fd int) *keyboard {
	return &keyboard{fd: fd}
}

// acquire saves the current terminal state, switches to raw mode, and
// marks the descriptor non-blocking. Calling it twice is a no-op.
func (k *keyboard) acquire() error {
	if k.acquired {
		return nil
	}
	old, err := term.MakeRaw(k.fd)
	if err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}
	if err := setNonblock(k.fd, true); err != nil {
		_ = term.Restore(k.fd, old)
		return fmt.Errorf("failed to set non-blocking input: %w", err)
	}
	k.oldState = old
	k.acquired = true
	return nil
}

// release restores the prior terminal mode. It is safe to call when
// acquire never ran or already released: decode-only use must not fail
// on teardown.
func (k *keyboard) release() error {
	if !k.acquired {
		return nil
	}
	k.acquired = false

	var errs []error
	if err := setNonblock(k.fd, false); err != nil {
		errs = append(errs, fmt.Errorf("failed to clear non-blocking input: %w", err))
	}
	if err := term.Restore(k.fd, k.oldState); err != nil {
		errs = append(errs, fmt.Errorf("failed to restore terminal: %w", err))
	}
	k.oldState = nil
	return errors.Join(errs...)
}
