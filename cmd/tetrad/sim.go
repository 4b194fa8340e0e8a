package main

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/plus3/tetrad/tetris"
	"github.com/plus3/tetrad/tetris/autoplay"
)

// simOptions configures a headless autoplay run.
type simOptions struct {
	games     int
	maxPieces int
	duration  time.Duration
	weights   autoplay.Weights

	// session returns the extra options for each game's session.
	session func() []tetris.Option
}

func newSimCmd(game *gameFlags) *cobra.Command {
	opts := simOptions{weights: autoplay.DefaultWeights}

	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run autoplay games headless and print a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := game.resolve(cmd)
			if err != nil {
				return err
			}
			opts.session = game.sessionOptions
			report, err := simulate(cmd.Context(), cfg, opts)
			if err != nil {
				return err
			}
			return report.Generate(cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.games, "games", 10, "number of games to play")
	flags.IntVar(&opts.maxPieces, "max-pieces", 1000, "stop a game after this many pieces, 0 for no limit")
	flags.DurationVar(&opts.duration, "duration", 0, "stop the whole run after this long, 0 for no limit")
	flags.Float64Var(&opts.weights.Height, "w-height", autoplay.DefaultWeights.Height, "weight of aggregate column height")
	flags.Float64Var(&opts.weights.Lines, "w-lines", autoplay.DefaultWeights.Lines, "weight of completed lines")
	flags.Float64Var(&opts.weights.Holes, "w-holes", autoplay.DefaultWeights.Holes, "weight of covered holes")
	flags.Float64Var(&opts.weights.Bumpiness, "w-bumpiness", autoplay.DefaultWeights.Bumpiness, "weight of surface bumpiness")
	return cmd
}

// simulate plays opts.games games with the autoplayer. Game i is seeded with
// cfg.Seed+i when cfg.Seed is set. Running out of time ends the run early
// with a partial report; cancellation of ctx itself is returned as an error.
func simulate(ctx context.Context, cfg tetris.Config, opts simOptions) (*Report, error) {
	logger := loggerFromContext(ctx)

	runCtx, cancel := ctx, context.CancelFunc(func() {})
	if opts.duration > 0 {
		runCtx, cancel = context.WithTimeout(ctx, opts.duration)
	}
	defer cancel()

	report := &Report{
		Config:    cfg,
		Games:     opts.games,
		MaxPieces: opts.maxPieces,
		Duration:  opts.duration,
		Weights:   opts.weights,
	}

	logger.Info("starting simulation", "games", opts.games, "max_pieces", opts.maxPieces)
	start := time.Now()

Loop:
	for i := range opts.games {
		select {
		case <-runCtx.Done():
			break Loop
		default:
		}

		gameCfg := cfg
		if cfg.Seed != 0 {
			gameCfg.Seed = cfg.Seed + uint64(i)
		}
		result, err := playGame(runCtx, gameCfg, opts, logger.With("game", i+1))
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, result)
		logger.Debug("game finished", "game", i+1, "score", result.Score, "lines", result.Lines, "pieces", result.Pieces)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	report.TotalTime = time.Since(start)
	report.Finalize()
	logger.Info("simulation finished", "games", len(report.Results), "elapsed", report.TotalTime)
	return report, nil
}

func playGame(ctx context.Context, cfg tetris.Config, opts simOptions, logger *log.Logger) (GameResult, error) {
	var topOut bool
	sessionOpts := []tetris.Option{
		tetris.WithLogger(logger),
		tetris.WithObserver(tetris.ObserverFuncs{
			GameOver: func(tetris.Stats) { topOut = true },
		}),
	}
	if opts.session != nil {
		sessionOpts = append(sessionOpts, opts.session()...)
	}
	s, err := tetris.NewSession(cfg, sessionOpts...)
	if err != nil {
		return GameResult{}, err
	}

	p := autoplay.NewPlayer(opts.weights)
	start := time.Now()
	for ctx.Err() == nil {
		if opts.maxPieces > 0 && s.Stats().Locked >= opts.maxPieces {
			break
		}
		if !p.Play(s) {
			break
		}
	}

	stats := s.Stats()
	return GameResult{
		Score:     s.Score(),
		Lines:     s.Lines(),
		Level:     s.Level(),
		Pieces:    stats.Locked,
		Tetrises:  stats.Clears[4],
		ToppedOut: topOut,
		Time:      time.Since(start),
	}, nil
}
