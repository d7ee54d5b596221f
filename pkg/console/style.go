package console

import "strconv"

// Color identifies a terminal color. The zero value is ColorNone, which
// means "inherit" — the color parameter is simply omitted from the escape
// sequence. The eight named colors map to the legacy SGR 30-37/40-47 codes;
// everything produced by Color256 is emitted as an extended 38;5;n/48;5;n
// parameter.
type Color int

// ColorNone inherits the surrounding default (no parameter emitted).
const ColorNone Color = 0

// Legacy 8-color palette.
const (
	Black Color = iota + 1
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// color256Base offsets extended palette indices past the named colors.
const color256Base = 9

// Color256 returns the color for an xterm-256 palette index.
func Color256(n uint8) Color {
	return Color(int(n) + color256Base)
}

// colorNames maps symbolic names to colors. The extended entries come from
// the xterm-256 palette (solarized-ish names kept for compatibility with
// older revisions of this toolkit). The table is never mutated.
var colorNames = map[string]Color{
	"black":   Black,
	"red":     Red,
	"green":   Green,
	"yellow":  Yellow,
	"blue":    Blue,
	"magenta": Magenta,
	"cyan":    Cyan,
	"white":   White,

	"orange": Color256(166),
	"violet": Color256(61),
	"base03": Color256(234),
	"base02": Color256(235),
	"base01": Color256(240),
	"base00": Color256(241),
	"base0":  Color256(244),
	"base1":  Color256(245),
	"base2":  Color256(254),
	"base3":  Color256(230),
}

// ParseColor resolves a symbolic color name. Unknown names resolve to
// ColorNone rather than an error: an unsupported color is silently dropped
// from the output so partially-set style arguments stay usable.
func ParseColor(name string) Color {
	return colorNames[name]
}

// fgParam returns the SGR foreground parameter for c, or "" for ColorNone.
func (c Color) fgParam() string {
	switch {
	case c == ColorNone:
		return ""
	case c < color256Base:
		return strconv.Itoa(30 + int(c) - 1)
	default:
		return "38;5;" + strconv.Itoa(int(c)-color256Base)
	}
}

// bgParam returns the SGR background parameter for c, or "" for ColorNone.
func (c Color) bgParam() string {
	switch {
	case c == ColorNone:
		return ""
	case c < color256Base:
		return strconv.Itoa(40 + int(c) - 1)
	default:
		return "48;5;" + strconv.Itoa(int(c)-color256Base)
	}
}

// Flag is a tri-state boolean for style attributes. FlagUnset defers to the
// session-level default; FlagOn and FlagOff override it.
type Flag uint8

const (
	FlagUnset Flag = iota
	FlagOn
	FlagOff
)

// Style describes how text is rendered. Zero-value fields inherit the
// canvas defaults; explicitly set fields override them.
type Style struct {
	Fg    Color
	Bg    Color
	Bold  Flag
	Blink Flag
}

// resolvedStyle is a Style with all inheritance applied.
type resolvedStyle struct {
	fg    Color
	bg    Color
	bold  bool
	blink bool
}

// resolveAgainst applies s on top of base: unset fields fall through.
func (s Style) resolveAgainst(base resolvedStyle) resolvedStyle {
	out := base
	if s.Fg != ColorNone {
		out.fg = s.Fg
	}
	if s.Bg != ColorNone {
		out.bg = s.Bg
	}
	if s.Bold != FlagUnset {
		out.bold = s.Bold == FlagOn
	}
	if s.Blink != FlagUnset {
		out.blink = s.Blink == FlagOn
	}
	return out
}

// sgrParams builds the ordered SGR parameter list: background first, then
// foreground, then a single style parameter. Bold takes priority over
// blink — when both are set only "1" is emitted. An empty slice means the
// caller should skip escape wrapping entirely.
func sgrParams(rs resolvedStyle) []string {
	var params []string
	if p := rs.bg.bgParam(); p != "" {
		params = append(params, p)
	}
	if p := rs.fg.fgParam(); p != "" {
		params = append(params, p)
	}
	if rs.bold {
		params = append(params, "1")
	} else if rs.blink {
		params = append(params, "5")
	}
	return params
}
