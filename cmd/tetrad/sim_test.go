package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/tetrad/tetris"
	"github.com/plus3/tetrad/tetris/autoplay"
)

func TestSimulateIsReproducible(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Seed = 11
	opts := simOptions{games: 3, maxPieces: 40, weights: autoplay.DefaultWeights}

	a, err := simulate(context.Background(), cfg, opts)
	require.NoError(t, err)
	b, err := simulate(context.Background(), cfg, opts)
	require.NoError(t, err)

	require.Len(t, a.Results, 3)
	for i := range a.Results {
		assert.Equal(t, a.Results[i].Score, b.Results[i].Score)
		assert.Equal(t, 40, a.Results[i].Pieces)
		assert.False(t, a.Results[i].ToppedOut)
	}
}

func TestSimulateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := simulate(ctx, tetris.DefaultConfig(), simOptions{games: 5, weights: autoplay.DefaultWeights})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStatsFinalize(t *testing.T) {
	s := Stats[time.Duration]{Samples: []time.Duration{3 * time.Second, time.Second, 2 * time.Second}}
	s.Finalize()

	assert.Equal(t, time.Second, s.Min)
	assert.Equal(t, 3*time.Second, s.Max)
	assert.Equal(t, 2*time.Second, s.Avg)

	var empty Stats[int]
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Config:  tetris.DefaultConfig(),
		Games:   2,
		Weights: autoplay.DefaultWeights,
		Results: []GameResult{
			{Score: 100, Lines: 1, Level: 1, Pieces: 10, Time: time.Millisecond},
			{Score: 300, Lines: 3, Level: 1, Pieces: 20, Tetrises: 0, ToppedOut: true, Time: 3 * time.Millisecond},
		},
	}
	r.Finalize()

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	out := buf.String()

	assert.Contains(t, out, "**Board:** 10×24")
	assert.Contains(t, out, "**Topped Out:** 1 (50%)")
	assert.Contains(t, out, "| Score | 100 | 200 | 300 |")
	assert.Contains(t, out, "| 2 | 300 | 3 | 1 | 20 | 0 | topped out |")
	assert.Contains(t, out, "**Piece Limit:** none")
}
