package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveRelEmitsHorizontalThenVertical(t *testing.T) {
	var buf bytes.Buffer
	cur := newCursor(&buf, 10)

	require.NoError(t, cur.MoveRel(3, 2))
	assert.Equal(t, "\x1b[3C\x1b[2B", buf.String())

	x, y := cur.Position()
	assert.Equal(t, 3, x)
	assert.Equal(t, 2, y)
}

func TestMoveRelInverseReturnsToOrigin(t *testing.T) {
	tests := []struct{ dx, dy int }{
		{3, 2},
		{-4, 5},
		{7, 0},
		{0, -3},
		{0, 0},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		cur := newCursor(&buf, 100)
		// Start away from the origin so negative deltas are meaningful.
		cur.x, cur.y = 20, 20

		require.NoError(t, cur.MoveRel(tt.dx, tt.dy))
		forward := buf.String()
		buf.Reset()
		require.NoError(t, cur.MoveRel(-tt.dx, -tt.dy))
		backward := buf.String()

		x, y := cur.Position()
		assert.Equal(t, 20, x)
		assert.Equal(t, 20, y)

		// The emitted deltas must be exact inverses: C<->D, A<->B.
		assert.Equal(t, invertMotion(forward), backward, "dx=%d dy=%d", tt.dx, tt.dy)
	}
}

// invertMotion swaps each motion letter for its opposite.
func invertMotion(seq string) string {
	out := []byte(seq)
	for i, b := range out {
		switch b {
		case 'C':
			out[i] = 'D'
		case 'D':
			out[i] = 'C'
		case 'A':
			out[i] = 'B'
		case 'B':
			out[i] = 'A'
		}
	}
	return string(out)
}

func TestMoveRelZeroDeltaEmitsNothing(t *testing.T) {
	var buf bytes.Buffer
	cur := newCursor(&buf, 10)

	require.NoError(t, cur.MoveRel(0, 0))
	assert.Empty(t, buf.String())
}

func TestMoveToBounds(t *testing.T) {
	tests := []struct {
		name    string
		x, y    int
		wantErr bool
	}{
		{"origin", 0, 0, false},
		{"bottom row is inclusive", 0, 10, false},
		{"x unbounded above", 500, 3, false},
		{"negative x", -1, 0, true},
		{"negative y", 0, -1, true},
		{"y past height", 0, 11, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cur := newCursor(&buf, 10)

			err := cur.MoveTo(tt.x, tt.y)
			if tt.wantErr {
				var oob *OutOfBoundsError
				require.True(t, errors.As(err, &oob))
				// A failed move emits nothing and moves nothing.
				assert.Empty(t, buf.String())
				x, y := cur.Position()
				assert.Equal(t, 0, x)
				assert.Equal(t, 0, y)
			} else {
				require.NoError(t, err)
				x, y := cur.Position()
				assert.Equal(t, tt.x, x)
				assert.Equal(t, tt.y, y)
			}
		})
	}
}

func TestMoveToDelegatesToRelativeMotion(t *testing.T) {
	var buf bytes.Buffer
	cur := newCursor(&buf, 10)

	require.NoError(t, cur.MoveTo(5, 3))
	assert.Equal(t, "\x1b[5C\x1b[3B", buf.String())

	buf.Reset()
	require.NoError(t, cur.MoveTo(2, 3))
	assert.Equal(t, "\x1b[3D", buf.String())
}

func TestSaveRestoreLeavesLogicalPositionAlone(t *testing.T) {
	var buf bytes.Buffer
	cur := newCursor(&buf, 10)
	require.NoError(t, cur.MoveTo(4, 2))
	buf.Reset()

	require.NoError(t, cur.Save())
	require.NoError(t, cur.Restore())
	assert.Equal(t, "\x1b[s\x1b[u", buf.String())

	x, y := cur.Position()
	assert.Equal(t, 4, x)
	assert.Equal(t, 2, y)
}
