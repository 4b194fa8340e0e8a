package main

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/plus3/tetrad/tetris"
	"github.com/plus3/tetrad/tetris/autoplay"
	"github.com/plus3/tetrad/tui"
)

func newPlayCmd(game *gameFlags) *cobra.Command {
	var (
		demo     bool
		logFile  string
		bindings []string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Long: `Play in the terminal.

Default keys: j/← left, k/→ right, g/↓ soft drop, f/↑ rotate clockwise,
d/z rotate counter-clockwise, space hard drop, c hold, p pause, q quit.
Use --bind intent=key[,key...] to change them, for example --bind hold=x.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := game.resolve(cmd)
			if err != nil {
				return err
			}
			keys := tui.DefaultKeymap()
			for _, b := range bindings {
				if err := keys.Set(b); err != nil {
					return err
				}
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

			opts := []tui.Option{tui.WithKeymap(keys), tui.WithLogger(engineLog)}
			if demo {
				opts = append(opts, tui.WithDemo(autoplay.NewPlayer(autoplay.DefaultWeights)))
			}

			p := tea.NewProgram(tui.NewModel(s, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
					return ctx.Err()
				}
				return err
			}

			logger.Info("game finished", "score", s.Score(), "lines", s.Lines(), "level", s.Level(), "pieces", s.Stats().Pieces())
			return nil
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "let the autoplayer play")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write engine logs to this file")
	cmd.Flags().StringArrayVar(&bindings, "bind", nil, "rebind keys as intent=key[,key...]")
	return cmd
}
