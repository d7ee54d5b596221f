package console

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentBarLayout(t *testing.T) {
	c, buf := testCanvas(t, 10)

	require.NoError(t, c.PercentBar(50, BarOptions{MaxLength: 12, ShowValue: true}))

	// Outline pass, then overlay re-using the same save slot.
	want := "\x1b[s" +
		"|\x1b[10C| 50%" +
		"\x1b[u" +
		"|█████     " +
		"\x1b[u"
	assert.Equal(t, want, buf.String())
}

func TestPercentBarLabelAndMessage(t *testing.T) {
	c, buf := testCanvas(t, 10)

	require.NoError(t, c.PercentBar(0, BarOptions{
		MaxLength: 5,
		Label:     "CPU",
		Message:   "idle",
		ShowValue: true,
	}))

	out := buf.String()
	assert.Contains(t, out, "CPU |")
	assert.Contains(t, out, " idle")
	// Zero percent fills nothing, pads everything.
	assert.NotContains(t, out, "█")
	assert.Contains(t, out, "   ")
}

func TestPercentBarHidesValue(t *testing.T) {
	c, buf := testCanvas(t, 10)

	require.NoError(t, c.PercentBar(50, BarOptions{MaxLength: 12}))
	assert.NotContains(t, buf.String(), "%")
}

func TestPercentBarFillWidths(t *testing.T) {
	tests := []struct {
		percent float64
		want    int
	}{
		{0, 0},
		{49, 4},
		{50, 5},
		{100, 10},
		{150, 15}, // not range-checked, mirrors the outline overflow
		{-10, 0},
	}

	for _, tt := range tests {
		c, buf := testCanvas(t, 10)
		require.NoError(t, c.PercentBar(tt.percent, BarOptions{MaxLength: 12}))
		assert.Equal(t, tt.want, strings.Count(buf.String(), "█"), "percent=%v", tt.percent)
	}
}

func TestPercentBarAutoColor(t *testing.T) {
	c, buf := testCanvas(t, 10)

	// 50% lands in the bold-yellow band of the default palette.
	require.NoError(t, c.PercentBar(50, BarOptions{MaxLength: 12, AutoColor: true}))
	assert.Contains(t, buf.String(), "\x1b[33;1m")

	// Reversed scale: 50% maps to 100-50=50, same band either way, so
	// probe the ends instead.
	buf.Reset()
	require.NoError(t, c.PercentBar(100, BarOptions{MaxLength: 12, AutoColor: true}))
	assert.Contains(t, buf.String(), "\x1b[32;1m", "100%% should be bold green")

	buf.Reset()
	require.NoError(t, c.PercentBar(100, BarOptions{MaxLength: 12, AutoColor: true, HighIsHot: true}))
	assert.Contains(t, buf.String(), "\x1b[31m", "reversed 100%% should be red")
}

func TestPercentBarExplicitColorBeatsAutoColor(t *testing.T) {
	c, buf := testCanvas(t, 10)

	require.NoError(t, c.PercentBar(90, BarOptions{MaxLength: 12, Color: Blue, AutoColor: true}))
	assert.Contains(t, buf.String(), "\x1b[34m")
	assert.NotContains(t, buf.String(), "\x1b[32")
}

func TestPercentBarDegenerateLength(t *testing.T) {
	c, _ := testCanvas(t, 10)

	var dd *DegenerateDimensionError
	require.True(t, errors.As(c.PercentBar(50, BarOptions{MaxLength: 2}), &dd))
}

func TestAbsoluteValueBarClamping(t *testing.T) {
	tests := []struct {
		name        string
		value       float64
		min, max    float64
		wantFill    int
		wantWarning bool
	}{
		{"in range", 5, 0, 10, 5, false},
		{"at max", 10, 0, 10, 10, false},
		{"past max clamps bar", 25, 0, 10, 10, true},
		{"below min clamps to empty", -3, 0, 10, 0, true},
		{"shifted range", 15, 10, 20, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, buf := testCanvas(t, 10)
			require.NoError(t, c.AbsoluteValueBar(tt.value, tt.min, tt.max, "kg", BarOptions{MaxLength: 12}))

			assert.Equal(t, tt.wantFill, strings.Count(buf.String(), "█"))

			warned := strings.Contains(buf.String(), "\x1b[33;1m")
			assert.Equal(t, tt.wantWarning, warned, "warning style mismatch")
		})
	}
}

func TestAbsoluteValueBarShowsRawValue(t *testing.T) {
	c, buf := testCanvas(t, 10)

	// The bar clamps to 100%% but the text shows the raw reading.
	require.NoError(t, c.AbsoluteValueBar(25, 0, 10, "kg", BarOptions{MaxLength: 12}))
	assert.Contains(t, buf.String(), "25kg")
}

func TestAbsoluteValueBarInvalidRange(t *testing.T) {
	c, _ := testCanvas(t, 10)

	assert.Error(t, c.AbsoluteValueBar(5, 10, 10, "kg", BarOptions{}))
	assert.Error(t, c.AbsoluteValueBar(5, 20, 10, "kg", BarOptions{}))
}
