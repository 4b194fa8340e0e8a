package main

import (
	"github.com/spf13/cobra"

	"github.com/plus3/tetrad/tetris"
	"github.com/plus3/tetrad/tetris/autoplay"
	"github.com/plus3/tetrad/window"
	"github.com/plus3/tetrad/window/inspector"
)

func newWindowCmd(game *gameFlags) *cobra.Command {
	var (
		scale   int
		inspect bool
		demo    bool
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Play in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			scale = max(scale, 1)

			cfg, err := game.resolve(cmd)
			if err != nil {
				return err
			}
			engineLog, closeLog, err := sessionLogger(logFile, verbosity(cmd))
			if err != nil {
				return err
			}
			defer closeLog()

			s, err := tetris.NewSession(cfg, append(game.sessionOptions(), tetris.WithLogger(engineLog))...)
			if err != nil {
				return err
			}

			opts := []window.Option{window.WithContext(ctx), window.WithLogger(engineLog)}
			if demo {
				opts = append(opts, window.WithDemo(autoplay.NewPlayer(autoplay.DefaultWeights)))
			}
			if inspect {
				w, h := window.NewGeometry(cfg.Width, cfg.Height, window.CellSize).Size()
				opts = append(opts, window.WithOverlay(inspector.New("tetrad", w*scale, h*scale, 120)))
			}

			g := window.NewGame(s, opts...)
			if err := window.Run(g, "tetrad", scale); err != nil {
				return err
			}
			stats := g.Scheduler().Stats()
			logger.Debug("frame loop stopped", "frames", stats.Frames, "executions", stats.TotalExecutions)
			if err := ctx.Err(); err != nil {
				return err
			}

			logger.Info("game finished", "score", s.Score(), "lines", s.Lines(), "level", s.Level(), "pieces", s.Stats().Pieces())
			return nil
		},
	}

	cmd.Flags().IntVar(&scale, "scale", 1, "window scale factor")
	cmd.Flags().BoolVar(&inspect, "inspector", false, "show the ImGui session inspector")
	cmd.Flags().BoolVar(&demo, "demo", false, "let the autoplayer play")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write engine logs to this file")
	return cmd
}
