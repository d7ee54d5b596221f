package console

import (
	"fmt"
	"strings"
)

// ANSI escape sequence helpers for consistent terminal control.
// Every widget in this package is ultimately a composition of these
// sequences; they are exported so callers can build their own.

const (
	// CSI is the Control Sequence Introducer prefix.
	CSI = "\x1b["

	// Reset clears all SGR attributes.
	Reset = "\x1b[0m"

	// SaveCursorSeq saves the cursor position in the terminal's single
	// save slot. A second save before a restore overwrites the first.
	SaveCursorSeq = "\x1b[s"

	// RestoreCursorSeq restores the cursor to the last saved position.
	RestoreCursorSeq = "\x1b[u"

	// HideCursorSeq hides the terminal cursor.
	HideCursorSeq = "\x1b[?25l"

	// ShowCursorSeq re-shows the terminal cursor.
	ShowCursorSeq = "\x1b[?25h"

	// ClearToEndSeq clears from the cursor to the end of the screen.
	ClearToEndSeq = "\x1b[J"
)

// CursorForwardSeq returns the sequence moving the cursor n columns right.
func CursorForwardSeq(n int) string {
	return fmt.Sprintf("%s%dC", CSI, n)
}

// CursorBackSeq returns the sequence moving the cursor n columns left.
func CursorBackSeq(n int) string {
	return fmt.Sprintf("%s%dD", CSI, n)
}

// CursorUpSeq returns the sequence moving the cursor n rows up.
func CursorUpSeq(n int) string {
	return fmt.Sprintf("%s%dA", CSI, n)
}

// CursorDownSeq returns the sequence moving the cursor n rows down.
func CursorDownSeq(n int) string {
	return fmt.Sprintf("%s%dB", CSI, n)
}

// CursorPrevLineSeq returns the sequence moving the cursor to the start
// of the line n rows up.
func CursorPrevLineSeq(n int) string {
	return fmt.Sprintf("%s%dF", CSI, n)
}

// SGRSeq builds a Select Graphic Rendition sequence from parameter strings.
func SGRSeq(params []string) string {
	return CSI + strings.Join(params, ";") + "m"
}

// Wrap surrounds text with an SGR sequence and a reset. With no params the
// text is returned unchanged, so plain writes never pay for an escape pair.
// Wrap is pure: it never writes to the terminal itself.
func Wrap(text string, params []string) string {
	if len(params) == 0 {
		return text
	}
	return SGRSeq(params) + text + Reset
}
