package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/alantheprice/consoletk/pkg/logging"
)

// The viewport content origin sits one row and one column inside the
// reserved region.
const (
	marginX = 1
	marginY = 1
)

// Session scopes a rendering viewport on a terminal: on open it reserves
// vertical screen space, hides the cursor, applies the content margin and
// acquires the raw keyboard; on close it undoes all of that. One session
// owns its output stream and cursor position exclusively — never run two
// sessions against the same terminal.
//
// Session embeds Canvas, so all widget primitives are available directly.
type Session struct {
	*Canvas

	out    io.Writer
	kb     *keyboard
	dec    *KeyDecoder
	height int
	closed bool
}

// Open reserves height blank rows at the bottom of the terminal, hides the
// cursor, clears the region, and places the logical cursor at the content
// origin (0,0), one row and one column inside the reserved area.
//
// When the input stream is a terminal, the keyboard is switched to raw
// non-blocking mode for the lifetime of the session. Close must run on
// every exit path — drawing failures do not excuse skipping it.
func Open(height int, opts ...Option) (*Session, error) {
	if height < 1 {
		return nil, &DegenerateDimensionError{Widget: "session viewport", Width: 0, Height: height}
	}
	o := buildOptions(opts)
	logger := logging.GetLogger()

	s := &Session{
		out:    o.out,
		height: height,
		dec:    NewKeyDecoder(o.in),
	}

	// Reserve the region while the terminal is still in cooked mode, so
	// newlines scroll normally.
	setup := strings.Repeat("\n", height) + HideCursorSeq + CursorPrevLineSeq(height)
	if _, err := io.WriteString(o.out, setup); err != nil {
		return nil, fmt.Errorf("failed to reserve screen region: %w", err)
	}

	s.Canvas = NewCanvas(o.out, height, opts...)
	if err := s.Canvas.Clear(); err != nil {
		s.abandon()
		return nil, err
	}

	// Apply the margin physically; the logical origin stays at (0,0).
	if _, err := io.WriteString(o.out, CursorForwardSeq(marginX)+CursorDownSeq(marginY)); err != nil {
		s.abandon()
		return nil, fmt.Errorf("failed to apply margin: %w", err)
	}

	if f, ok := o.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		s.kb = newKeyboard(int(f.Fd()))
		if err := s.kb.acquire(); err != nil {
			logger.Logf("session open: keyboard acquisition failed: %v", err)
			s.abandon()
			return nil, err
		}
	}

	logger.Logf("session opened: height=%d raw_keyboard=%v", height, s.kb != nil)
	return s, nil
}

// Poll reads at most one pending key event without blocking. With no
// input ready it returns a KeyNone event.
func (s *Session) Poll() (KeyEvent, error) {
	return s.dec.Poll()
}

// Close releases the raw keyboard, removes the margin, clears the
// reserved region, and re-shows the cursor. Every step runs even when an
// earlier one fails; errors are joined. Closing twice is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error

	// Keyboard first: the terminal must be back in cooked mode before
	// anything else can reasonably go wrong.
	if s.kb != nil {
		if err := s.kb.release(); err != nil {
			errs = append(errs, err)
		}
	}

	if err := s.Canvas.MoveTo(0, 0); err != nil {
		errs = append(errs, err)
	}
	// Step outside the margin to the true top-left of the region.
	teardown := CursorBackSeq(marginX) + CursorUpSeq(marginY) + ClearToEndSeq + ShowCursorSeq
	if _, err := io.WriteString(s.out, teardown); err != nil {
		errs = append(errs, fmt.Errorf("failed to release screen region: %w", err))
	}

	logging.GetLogger().Logf("session closed: height=%d", s.height)
	return errors.Join(errs...)
}

// abandon is the failure path during Open: best-effort screen restore,
// keyboard never acquired or already rolled back.
func (s *Session) abandon() {
	_, _ = io.WriteString(s.out, ClearToEndSeq+ShowCursorSeq)
}
