package console

import "strings"

// Line-drawing glyph sets, single and double. Indexed as
// top-left, horizontal, top-right, vertical, bottom-left, bottom-right.
var (
	singleLine = [6]string{"┌", "─", "┐", "│", "└", "┘"}
	doubleLine = [6]string{"╔", "═", "╗", "║", "╚", "╝"}
)

const (
	glyphTL = 0
	glyphH  = 1
	glyphTR = 2
	glyphV  = 3
	glyphBL = 4
	glyphBR = 5
)

func lineGlyphs(double bool) [6]string {
	if double {
		return doubleLine
	}
	return singleLine
}

// HorizontalSeparator draws a horizontal line of the given width at the
// current position, colorized as one unit.
func (c *Canvas) HorizontalSeparator(width int, style Style, double bool) error {
	if width < 1 {
		return &DegenerateDimensionError{Widget: "horizontal separator", Width: width, Height: 1}
	}
	glyph := lineGlyphs(double)[glyphH]
	body := c.Colorize(strings.Repeat(glyph, width), style)
	return c.write(SaveCursorSeq + body + RestoreCursorSeq)
}

// VerticalSeparator draws a vertical line descending height rows from the
// current position. Each glyph is followed by a down-one/left-one move so
// every row lands in the same column.
func (c *Canvas) VerticalSeparator(height int, style Style, double bool) error {
	if height < 1 {
		return &DegenerateDimensionError{Widget: "vertical separator", Width: 1, Height: height}
	}
	glyph := c.Colorize(lineGlyphs(double)[glyphV], style)

	var b strings.Builder
	b.WriteString(SaveCursorSeq)
	for i := 0; i < height; i++ {
		b.WriteString(glyph)
		b.WriteString(CursorDownSeq(1))
		b.WriteString(CursorBackSeq(1))
	}
	b.WriteString(RestoreCursorSeq)
	return c.write(b.String())
}

// Box draws a rectangle outline with its top-left corner at the current
// position, filling the interior with the fill style's background. The
// border uses the single or double line set. Both dimensions must be at
// least 2 or the call fails with *DegenerateDimensionError.
func (c *Canvas) Box(width, height int, border, fill Style, double bool) error {
	if width < 2 || height < 2 {
		return &DegenerateDimensionError{Widget: "box", Width: width, Height: height}
	}
	glyphs := lineGlyphs(double)
	interior := strings.Repeat(" ", width-2)

	var b strings.Builder
	b.WriteString(SaveCursorSeq)

	// Top edge. After writing, the physical cursor sits past the right
	// corner; each row steps down one and back to the left edge.
	b.WriteString(c.Colorize(glyphs[glyphTL]+strings.Repeat(glyphs[glyphH], width-2)+glyphs[glyphTR], border))
	for y := 1; y < height-1; y++ {
		b.WriteString(CursorDownSeq(1))
		b.WriteString(CursorBackSeq(width))
		b.WriteString(c.Colorize(glyphs[glyphV], border))
		b.WriteString(c.Colorize(interior, fill))
		b.WriteString(c.Colorize(glyphs[glyphV], border))
	}
	b.WriteString(CursorDownSeq(1))
	b.WriteString(CursorBackSeq(width))
	b.WriteString(c.Colorize(glyphs[glyphBL]+strings.Repeat(glyphs[glyphH], width-2)+glyphs[glyphBR], border))

	b.WriteString(RestoreCursorSeq)
	return c.write(b.String())
}

// BooleanTickbox draws a green checked glyph or a red crossed glyph
// followed by the styled label.
func (c *Canvas) BooleanTickbox(state bool, label string, style Style) error {
	var glyph string
	if state {
		glyph = c.Colorize("☑", Style{Fg: Green})
	} else {
		glyph = c.Colorize("☒", Style{Fg: Red})
	}
	return c.write(SaveCursorSeq + glyph + " " + c.Colorize(label, style) + RestoreCursorSeq)
}

// BooleanMatrix draws a grid of 2-character cells, green for true and red
// for false. columns is column-major: columns[i][j] is drawn at
// (originX + 2i, originY + j). When a label is given it is drawn first and
// the grid starts one row below. The cursor is restored to its position
// before the call.
func (c *Canvas) BooleanMatrix(columns [][]bool, label string, style Style) error {
	if label != "" {
		if err := c.Write(label, style); err != nil {
			return err
		}
		if err := c.MoveRel(0, 1); err != nil {
			return err
		}
	}

	origX, origY := c.cur.Position()
	for i, col := range columns {
		for j, val := range col {
			if err := c.MoveTo(origX+i*2, origY+j); err != nil {
				return err
			}
			fg := Red
			if val {
				fg = Green
			}
			if err := c.Write("██", Style{Fg: fg}); err != nil {
				return err
			}
		}
	}

	backY := origY
	if label != "" {
		backY = origY - 1
	}
	return c.MoveTo(origX, backY)
}
