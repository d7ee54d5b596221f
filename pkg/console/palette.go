package console

// HotColor is one band of a hot-color palette: the color drawn for a
// percentage falling in that band, and whether it is drawn bold.
type HotColor struct {
	Color Color
	Bold  bool
}

// HotPalette maps a percentage onto one of N discrete color bands.
// Palettes are configured once per canvas and must not be mutated after.
type HotPalette []HotColor

// DefaultHotPalette returns the stock six-band palette: red at the low end
// shading through yellow to bold green at the top.
func DefaultHotPalette() HotPalette {
	return HotPalette{
		{Red, false},
		{Red, true},
		{Yellow, false},
		{Yellow, true},
		{Green, false},
		{Green, true},
	}
}

// Pick selects the band for a percentage. With reverse set the scale is
// inverted (100-percent), so high values map to the low end of the palette.
// percent=100 lands in the last band rather than overflowing, and values
// outside [0,100] clamp to the end bands.
func (p HotPalette) Pick(percent float64, reverse bool) HotColor {
	if len(p) == 0 {
		return HotColor{}
	}
	if reverse {
		percent = 100 - percent
	}
	idx := int(float64(len(p)) * percent / 100)
	if idx < 0 {
		idx = 0
	}
	if idx > len(p)-1 {
		idx = len(p) - 1
	}
	return p[idx]
}
