package autoplay_test

import (
	"testing"

	"github.com/plus3/tetrad/tetris"
	"github.com/plus3/tetrad/tetris/autoplay"
)

func BenchmarkPlan(b *testing.B) {
	board := well(10, 24, 6, 4)
	p := tetris.Spawn(tetris.T, board.Width())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		autoplay.Plan(board, p, autoplay.DefaultWeights)
	}
}
