package main

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/plus3/tetrad/tetris"
	"github.com/plus3/tetrad/tetris/autoplay"
)

// Report summarizes a simulation run.
type Report struct {
	// Configuration
	Config    tetris.Config
	Games     int
	MaxPieces int
	Duration  time.Duration
	Weights   autoplay.Weights

	// Results
	Results   []GameResult
	TotalTime time.Duration
	ToppedOut int
	Score     Stats[int]
	Lines     Stats[int]
	Pieces    Stats[int]
	GameTime  Stats[time.Duration]
}

// GameResult is the outcome of one autoplay game.
type GameResult struct {
	Score     int
	Lines     int
	Level     int
	Pieces    int
	Tetrises  int
	ToppedOut bool
	Time      time.Duration
}

// Stats holds the spread of one measurement across games.
type Stats[T ~int | ~int64] struct {
	Min     T
	Max     T
	Avg     T
	Samples []T
}

func (s *Stats[T]) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total T
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / T(len(s.Samples))
}

// Finalize fills the summary statistics from Results.
func (r *Report) Finalize() {
	r.ToppedOut = 0
	r.Score.Samples = r.Score.Samples[:0]
	r.Lines.Samples = r.Lines.Samples[:0]
	r.Pieces.Samples = r.Pieces.Samples[:0]
	r.GameTime.Samples = r.GameTime.Samples[:0]

	for _, g := range r.Results {
		if g.ToppedOut {
			r.ToppedOut++
		}
		r.Score.Samples = append(r.Score.Samples, g.Score)
		r.Lines.Samples = append(r.Lines.Samples, g.Lines)
		r.Pieces.Samples = append(r.Pieces.Samples, g.Pieces)
		r.GameTime.Samples = append(r.GameTime.Samples, g.Time)
	}

	r.Score.Finalize()
	r.Lines.Finalize()
	r.Pieces.Finalize()
	r.GameTime.Finalize()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Autoplay Report

## Configuration
- **Board:** {{.Config.Width}}×{{.Config.Height}}
- **Randomizer:** {{.Config.Randomizer}}
- **Scoring:** {{.Config.Scoring}}
- **Games:** {{len .Results}} of {{.Games}}
- **Piece Limit:** {{if .MaxPieces}}{{.MaxPieces}}{{else}}none{{end}}
- **Time Limit:** {{if .Duration}}{{.Duration}}{{else}}none{{end}}
- **Weights:** height {{f3 .Weights.Height}}, lines {{f3 .Weights.Lines}}, holes {{f3 .Weights.Holes}}, bumpiness {{f3 .Weights.Bumpiness}}

## Results
- **Total Time:** {{.TotalTime}}
- **Topped Out:** {{.ToppedOut}} ({{pct .ToppedOut (len .Results)}})
{{- if .Results}}

| | Min | Avg | Max |
|---|---|---|---|
| Score | {{.Score.Min}} | {{.Score.Avg}} | {{.Score.Max}} |
| Lines | {{.Lines.Min}} | {{.Lines.Avg}} | {{.Lines.Max}} |
| Pieces | {{.Pieces.Min}} | {{.Pieces.Avg}} | {{.Pieces.Max}} |
| Game Time | {{.GameTime.Min}} | {{.GameTime.Avg}} | {{.GameTime.Max}} |

## Games
| # | Score | Lines | Level | Pieces | Tetrises | Ended |
|---|---|---|---|---|---|---|
{{- range $i, $g := .Results}}
| {{inc $i}} | {{$g.Score}} | {{$g.Lines}} | {{$g.Level}} | {{$g.Pieces}} | {{$g.Tetrises}} | {{if $g.ToppedOut}}topped out{{else}}limit{{end}} |
{{- end}}
{{- end}}
`

	fm := template.FuncMap{
		"f3": func(v float64) string {
			return fmt.Sprintf("%.3f", v)
		},
		"pct": func(n, total int) string {
			if total == 0 {
				return "0%"
			}
			return fmt.Sprintf("%.0f%%", 100*float64(n)/float64(total))
		},
		"inc": func(i int) int {
			return i + 1
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
