package console

import (
	"fmt"
	"strconv"
	"strings"
)

// BarOptions configures PercentBar and AbsoluteValueBar rendering.
type BarOptions struct {
	// MaxLength is the total outline width in cells, including the two
	// delimiters. Defaults to 30; values below 3 leave no interior.
	MaxLength int

	// Message overrides the trailing value text. Defaults to "<percent>%".
	Message string

	// ShowValue appends the message after the closing delimiter.
	ShowValue bool

	// Label is drawn before the opening delimiter.
	Label string

	// Color forces the fill color. When unset and AutoColor is on, the
	// fill color is picked from the hot palette by percentage.
	Color Color

	// AutoColor selects the fill color from the canvas hot palette.
	AutoColor bool

	// HighIsHot inverts the hot palette: high percentages map toward red
	// instead of green.
	HighIsHot bool
}

// DefaultBarOptions returns the stock bar configuration.
func DefaultBarOptions() BarOptions {
	return BarOptions{MaxLength: 30, ShowValue: true}
}

// PercentBar draws a progress bar at the current position without moving
// it: first the outline (optional label, delimiters maxLength cells apart,
// optional trailing value text), then an overlay of solid-block glyphs
// proportional to percent, padded with spaces to the interior width.
//
// percent is not range-checked; use AbsoluteValueBar for clamping.
func (c *Canvas) PercentBar(percent float64, opts BarOptions) error {
	if opts.MaxLength == 0 {
		opts.MaxLength = 30
	}
	if opts.MaxLength < 3 {
		return &DegenerateDimensionError{Widget: "percent bar", Width: opts.MaxLength, Height: 1}
	}
	interior := opts.MaxLength - 2

	msg := opts.Message
	if msg == "" {
		msg = strconv.FormatFloat(percent, 'f', -1, 64) + "%"
	}

	prefix := "|"
	if opts.Label != "" {
		prefix = opts.Label + " |"
	}

	// Outline pass: delimiters and value text, cursor restored after.
	var b strings.Builder
	b.WriteString(SaveCursorSeq)
	b.WriteString(prefix)
	b.WriteString(CursorForwardSeq(interior))
	b.WriteString("|")
	if opts.ShowValue {
		b.WriteString(" " + msg)
	}
	b.WriteString(RestoreCursorSeq)

	// Overlay pass: the filled bar, re-using the same save slot.
	fill := opts.Color
	bold := false
	if fill == ColorNone && opts.AutoColor {
		hot := c.palette.Pick(percent, opts.HighIsHot)
		fill, bold = hot.Color, hot.Bold
	}

	barLen := int(percent / 100 * float64(interior))
	if barLen < 0 {
		barLen = 0
	}
	pad := interior - barLen
	if pad < 0 {
		pad = 0
	}
	boldFlag := FlagOff
	if bold {
		boldFlag = FlagOn
	}
	bar := c.Colorize(strings.Repeat("█", barLen)+strings.Repeat(" ", pad), Style{Fg: fill, Bold: boldFlag})

	b.WriteString(prefix)
	b.WriteString(bar)
	b.WriteString(RestoreCursorSeq)

	return c.write(b.String())
}

// AbsoluteValueBar draws a bar for a value in [minValue, maxValue]. The
// bar itself shows the clamped percentage, while the trailing text shows
// the raw, unclamped value — rendered in a warning style when it falls
// outside the range. That divergence (warn on raw, draw on clamped) is
// deliberate: a sensor pegged past its limits should look pegged, but the
// number should not lie.
func (c *Canvas) AbsoluteValueBar(value, minValue, maxValue float64, unit string, opts BarOptions) error {
	if maxValue <= minValue {
		return fmt.Errorf("absolute bar: max value %v must exceed min value %v", maxValue, minValue)
	}

	clamped := value
	if clamped < minValue {
		clamped = minValue
	}
	if clamped > maxValue {
		clamped = maxValue
	}
	percent := (clamped - minValue) * 100 / (maxValue - minValue)

	text := strconv.FormatFloat(value, 'f', -1, 64) + unit
	if value < minValue || value > maxValue {
		text = c.Colorize(text, Style{Fg: Yellow, Bold: FlagOn})
	}

	opts.Message = text
	opts.ShowValue = true
	return c.PercentBar(percent, opts)
}
