package console

import (
	"fmt"
	"io"
	"os"
)

// options collects the configurable parts of a Canvas or Session.
type options struct {
	out     io.Writer
	in      io.Reader
	palette HotPalette
	style   Style
}

// Option configures a Canvas or Session.
type Option func(*options)

// WithOutput directs escape sequences to w instead of stdout. The writer
// must be unbuffered (or flushed per write): cursor motion and text must
// land in the order issued.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithInput reads keyboard bytes from r instead of stdin. Raw-mode
// configuration is only attempted when r is a terminal file.
func WithInput(r io.Reader) Option {
	return func(o *options) { o.in = r }
}

// WithPalette replaces the hot-color palette used by auto-colored bars.
func WithPalette(p HotPalette) Option {
	return func(o *options) {
		o.palette = append(HotPalette(nil), p...)
	}
}

// WithDefaultStyle sets the default style that per-call styles are
// resolved against.
func WithDefaultStyle(s Style) Option {
	return func(o *options) { o.style = s }
}

func buildOptions(opts []Option) options {
	o := options{
		out:     os.Stdout,
		in:      os.Stdin,
		palette: DefaultHotPalette(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Canvas implements the widget primitives on top of a cursor model and the
// color codec. Every widget draws at the current cursor position and is
// wrapped in a save/restore pair, so the cursor position after a draw
// equals the position before it.
//
// A Canvas writes immediately on every call — there is no buffering or
// diffing layer that could reorder sequences.
type Canvas struct {
	w       io.Writer
	cur     *Cursor
	base    resolvedStyle
	palette HotPalette
}

// NewCanvas creates a render-only canvas for a viewport of the given
// height. Use Session for full lifecycle management (space reservation,
// cursor hiding, raw keyboard); a bare Canvas is suitable for tests and
// for drawing into regions managed elsewhere.
func NewCanvas(w io.Writer, height int, opts ...Option) *Canvas {
	o := buildOptions(opts)
	if w == nil {
		w = o.out
	}
	return &Canvas{
		w:       w,
		cur:     newCursor(w, height),
		base:    o.style.resolveAgainst(resolvedStyle{}),
		palette: o.palette,
	}
}

// Cursor exposes the canvas cursor model.
func (c *Canvas) Cursor() *Cursor {
	return c.cur
}

// Position returns the logical cursor position.
func (c *Canvas) Position() (x, y int) {
	return c.cur.Position()
}

// MoveTo moves the cursor to an absolute position. See Cursor.MoveTo.
func (c *Canvas) MoveTo(x, y int) error {
	return c.cur.MoveTo(x, y)
}

// MoveRel moves the cursor by a delta. See Cursor.MoveRel.
func (c *Canvas) MoveRel(dx, dy int) error {
	return c.cur.MoveRel(dx, dy)
}

// Clear moves to the content origin and clears to the end of the screen.
func (c *Canvas) Clear() error {
	if err := c.cur.MoveTo(0, 0); err != nil {
		return err
	}
	return c.write(ClearToEndSeq)
}

// Colorize resolves style against the canvas defaults and wraps text in
// the corresponding SGR sequence. Pure string building, no writes.
func (c *Canvas) Colorize(text string, style Style) string {
	return Wrap(text, sgrParams(style.resolveAgainst(c.base)))
}

// Write draws colorized text at the current position, restoring the
// cursor afterwards so the draw never displaces it.
func (c *Canvas) Write(text string, style Style) error {
	return c.write(SaveCursorSeq + c.Colorize(text, style) + RestoreCursorSeq)
}

// WriteAt moves to (x, y) and draws colorized text there. The logical
// cursor stays at (x, y) after the call.
func (c *Canvas) WriteAt(text string, x, y int, style Style) error {
	if err := c.cur.MoveTo(x, y); err != nil {
		return err
	}
	return c.Write(text, style)
}

// Label draws a one-line text widget at the current position.
func (c *Canvas) Label(text string, style Style) error {
	return c.Write(text, style)
}

// write emits a raw string to the output stream.
func (c *Canvas) write(s string) error {
	if _, err := io.WriteString(c.w, s); err != nil {
		return fmt.Errorf("terminal write failed: %w", err)
	}
	return nil
}
