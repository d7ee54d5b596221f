package console

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

// Key classifies a decoded keyboard event.
type Key int

const (
	// KeyNone means no input was available this poll.
	KeyNone Key = iota
	// KeyChar is a literal byte; see KeyEvent.Char.
	KeyChar
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	// KeyEscape is a lone ESC press, or an escape sequence the decoder
	// did not recognize.
	KeyEscape
)

const escByte = 0x1b

// KeyEvent is a decoded keyboard event. It is a pure value.
type KeyEvent struct {
	Key  Key
	Char byte
}

// None reports whether the poll produced no event.
func (e KeyEvent) None() bool {
	return e.Key == KeyNone
}

// KeyDecoder turns raw input bytes into key events without blocking.
//
// Precondition: the reader must deliver bytes character-at-a-time without
// echo and must never block — it either returns data immediately or
// reports no-data (zero bytes, EOF, or EAGAIN/EWOULDBLOCK from a
// non-blocking fd). Session configures stdin that way; any other reader
// is the caller's responsibility. The decoder performs no mode
// configuration itself.
type KeyDecoder struct {
	r   io.Reader
	buf [1]byte
}

// NewKeyDecoder creates a decoder over r.
func NewKeyDecoder(r io.Reader) *KeyDecoder {
	return &KeyDecoder{r: r}
}

// Poll reads at most one key event and returns immediately. With no input
// pending it returns a KeyNone event and no error.
//
// An ESC byte triggers two follow-up reads for the CSI introducer '[' and
// the arrow code. If either is missing or unrecognized the event degrades
// to a literal KeyEscape — a lone ESC press must still surface as a usable
// event. Callers are expected to invoke Poll on a timed loop.
func (d *KeyDecoder) Poll() (KeyEvent, error) {
	b, ok, err := d.readByte()
	if err != nil {
		return KeyEvent{}, err
	}
	if !ok {
		return KeyEvent{}, nil
	}

	if b != escByte {
		return KeyEvent{Key: KeyChar, Char: b}, nil
	}

	intro, ok, err := d.readByte()
	if err != nil {
		return KeyEvent{}, err
	}
	if !ok || intro != '[' {
		return KeyEvent{Key: KeyEscape, Char: escByte}, nil
	}

	code, ok, err := d.readByte()
	if err != nil {
		return KeyEvent{}, err
	}
	if ok {
		switch code {
		case 'A':
			return KeyEvent{Key: KeyUp}, nil
		case 'B':
			return KeyEvent{Key: KeyDown}, nil
		case 'C':
			return KeyEvent{Key: KeyRight}, nil
		case 'D':
			return KeyEvent{Key: KeyLeft}, nil
		}
	}
	return KeyEvent{Key: KeyEscape, Char: escByte}, nil
}

// readByte attempts a single-byte read. The second return is false when no
// byte was available, which is not an error under the polling contract.
func (d *KeyDecoder) readByte() (byte, bool, error) {
	n, err := d.r.Read(d.buf[:])
	if n == 1 {
		return d.buf[0], true, nil
	}
	if err == nil || errors.Is(err, io.EOF) || isNoData(err) {
		return 0, false, nil
	}
	return 0, false, fmt.Errorf("keyboard read failed: %w", err)
}

// isNoData reports whether err is a non-blocking fd's "nothing to read".
func isNoData(err error) bool {
	return errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EWOULDBLOCK)
}
