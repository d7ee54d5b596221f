package console

import (
	"fmt"
	"io"
	"strings"
)

// Cursor tracks the logical cursor position inside the viewport and
// translates moves into relative escape sequences. Positions are relative
// to the content origin (the viewport's top-left, inside the margin).
// The tracked position is mutated only through move operations.
type Cursor struct {
	w      io.Writer
	x, y   int
	height int
}

func newCursor(w io.Writer, height int) *Cursor {
	return &Cursor{w: w, height: height}
}

// Position returns the current logical coordinates.
func (c *Cursor) Position() (x, y int) {
	return c.x, c.y
}

// Height returns the viewport height the cursor is bounded by.
func (c *Cursor) Height() int {
	return c.height
}

// MoveTo moves the cursor to an absolute position. It fails with
// *OutOfBoundsError when x < 0 or y is outside [0, height], emitting
// nothing. x has no upper bound: terminal width is not tracked.
func (c *Cursor) MoveTo(x, y int) error {
	if x < 0 || y < 0 || y > c.height {
		return &OutOfBoundsError{X: x, Y: y, Height: c.height}
	}
	return c.MoveRel(x-c.x, y-c.y)
}

// MoveRel moves the cursor by a delta. No bounds check is applied: the
// absolute move is the only gate. Horizontal motion is emitted before
// vertical motion, and zero deltas emit nothing.
func (c *Cursor) MoveRel(dx, dy int) error {
	c.x += dx
	c.y += dy

	var b strings.Builder
	if dx < 0 {
		b.WriteString(CursorBackSeq(-dx))
	} else if dx > 0 {
		b.WriteString(CursorForwardSeq(dx))
	}
	if dy < 0 {
		b.WriteString(CursorUpSeq(-dy))
	} else if dy > 0 {
		b.WriteString(CursorDownSeq(dy))
	}
	if b.Len() == 0 {
		return nil
	}
	if _, err := io.WriteString(c.w, b.String()); err != nil {
		return fmt.Errorf("cursor move failed: %w", err)
	}
	return nil
}

// Save stores the physical cursor position in the terminal's save slot.
// The slot is single-entry: a second Save before a Restore overwrites the
// first, so nesting is not supported. The logical position tracked by this
// Cursor is unaffected.
func (c *Cursor) Save() error {
	if _, err := io.WriteString(c.w, SaveCursorSeq); err != nil {
		return fmt.Errorf("cursor save failed: %w", err)
	}
	return nil
}

// Restore moves the physical cursor back to the last saved position.
// The logical position is unaffected.
func (c *Cursor) Restore() error {
	if _, err := io.WriteString(c.w, RestoreCursorSeq); err != nil {
		return fmt.Errorf("cursor restore failed: %w", err)
	}
	return nil
}
