package tetris_test

import (
	"testing"

	"github.com/plus3/tetrad/tetris"
	"github.com/stretchr/testify/assert"
)

func TestSpawnCells(t *testing.T) {
	tests := []struct {
		variant tetris.Variant
		cells   [4]tetris.Point
	}{
		{tetris.I, [4]tetris.Point{{1, 3}, {1, 4}, {1, 5}, {1, 6}}},
		{tetris.O, [4]tetris.Point{{0, 4}, {0, 5}, {1, 4}, {1, 5}}},
		{tetris.T, [4]tetris.Point{{0, 4}, {1, 3}, {1, 4}, {1, 5}}},
		{tetris.J, [4]tetris.Point{{0, 3}, {1, 3}, {1, 4}, {1, 5}}},
		{tetris.L, [4]tetris.Point{{0, 5}, {1, 3}, {1, 4}, {1, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			assert.Equal(t, tt.cells, tetris.Spawn(tt.variant, 10).Cells())
		})
	}
}

func TestFourRotationsRestoreCells(t *testing.T) {
	for _, v := range tetris.Variants {
		for _, d := range []tetris.Direction{tetris.Clockwise, tetris.CounterClockwise} {
			p := tetris.Piece{Variant: v, Row: 8, Col: 3}
			q := p
			for range 4 {
				q = q.Rotate(d)
			}
			assert.Equal(t, p.Cells(), q.Cells(), "%s", v)
			assert.Equal(t, p, q)
		}
	}
}

func TestRotationKeepsCenter(t *testing.T) {
	for _, v := range tetris.Variants {
		p := tetris.Piece{Variant: v, Row: 5, Col: 2}
		for range 4 {
			r0, c0 := p.Center()
			p = p.Rotate(tetris.Clockwise)
			r1, c1 := p.Center()
			assert.Equal(t, r0, r1)
			assert.Equal(t, c0, c1)
		}
	}
}

func TestRotationMatchesQuarterTurnAboutCenter(t *testing.T) {
	// Every cell of the next state is the matching cell turned about the
	// center: (dr, dc) -> (dc, -dr) for a clockwise turn with rows pointing
	// down. O is symmetric and checked as a set.
	for _, v := range tetris.Variants {
		p := tetris.Piece{Variant: v, Row: 6, Col: 3}
		for range 4 {
			cr, cc := p.Center()
			want := map[[2]float64]bool{}
			for _, c := range p.Cells() {
				dr, dc := float64(c.Row)-cr, float64(c.Col)-cc
				want[[2]float64{cr + dc, cc - dr}] = true
			}
			p = p.Rotate(tetris.Clockwise)
			for _, c := range p.Cells() {
				assert.True(t, want[[2]float64{float64(c.Row), float64(c.Col)}], "%s rotation %d cell %v", v, p.Rotation, c)
			}
		}
	}
}

func TestOCenterIsHalfInteger(t *testing.T) {
	row, col := tetris.Spawn(tetris.O, 10).Center()
	assert.Equal(t, 0.5, row)
	assert.Equal(t, 4.5, col)
}

func TestTranslate(t *testing.T) {
	p := tetris.Spawn(tetris.S, 10)
	q := p.Translate(2, -1)

	pc, qc := p.Cells(), q.Cells()
	for i := range pc {
		assert.Equal(t, pc[i].Row+2, qc[i].Row)
		assert.Equal(t, pc[i].Col-1, qc[i].Col)
	}
	r0, c0 := p.Center()
	r1, c1 := q.Center()
	assert.Equal(t, r0+2, r1)
	assert.Equal(t, c0-1, c1)
}

func TestSameCells(t *testing.T) {
	o := tetris.Spawn(tetris.O, 10)
	assert.True(t, o.SameCells(o.Rotate(tetris.Clockwise)))
	assert.False(t, o.SameCells(o.Translate(1, 0)))

	s := tetris.Spawn(tetris.S, 10)
	assert.False(t, s.SameCells(s.Rotate(tetris.Clockwise)))
}

func TestRotationTurn(t *testing.T) {
	assert.Equal(t, tetris.RotationRight, tetris.RotationSpawn.Turn(tetris.Clockwise))
	assert.Equal(t, tetris.RotationLeft, tetris.RotationSpawn.Turn(tetris.CounterClockwise))
	assert.Equal(t, tetris.RotationSpawn, tetris.RotationLeft.Turn(tetris.Clockwise))
}

func TestParseVariant(t *testing.T) {
	for _, v := range tetris.Variants {
		got, err := tetris.ParseVariant(v.String())
		assert.NoError(t, err)
		assert.Equal(t, v, got)
	}
	_, err := tetris.ParseVariant("X")
	assert.Error(t, err)
	assert.Equal(t, "Variant(9)", tetris.Variant(9).String())
}
