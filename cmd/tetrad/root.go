package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/plus3/tetrad/internal/buildinfo"
	"github.com/plus3/tetrad/tetris"
)

// configEnv names the config file used when --config is not given.
const configEnv = "TETRAD_CONFIG"

// gameFlags are the rule overrides shared by every subcommand.
type gameFlags struct {
	config     string
	seed       uint64
	width      int
	height     int
	randomizer string
	noHold     bool
	noGhost    bool
	sequence   string

	// pieces is the parsed --sequence, set by resolve.
	pieces []tetris.Variant
}

func (f *gameFlags) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&f.config, "config", "c", "", "TOML config file (default $"+configEnv+")")
	flags.Uint64Var(&f.seed, "seed", 0, "randomizer seed, 0 for a random game")
	flags.IntVar(&f.width, "width", 0, "board width in cells")
	flags.IntVar(&f.height, "height", 0, "board height in cells")
	flags.StringVar(&f.randomizer, "randomizer", "", "piece randomizer: bag or uniform")
	flags.BoolVar(&f.noHold, "no-hold", false, "disable the hold slot")
	flags.BoolVar(&f.noGhost, "no-ghost", false, "hide the ghost piece")
	flags.StringVar(&f.sequence, "sequence", "", "deal these pieces in a loop instead of random ones, for example IOTS")
}

// resolve loads the config file, if any, and applies flag overrides.
func (f *gameFlags) resolve(cmd *cobra.Command) (tetris.Config, error) {
	path := f.config
	if path == "" {
		path = os.Getenv(configEnv)
	}

	cfg := tetris.DefaultConfig()
	if path != "" {
		loaded, err := tetris.LoadConfig(path)
		if err != nil {
			return tetris.Config{}, err
		}
		cfg = loaded
		loggerFromContext(cmd.Context()).Debug("loaded config", "path", path)
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = f.seed
	}
	if flags.Changed("width") {
		cfg.Width = f.width
	}
	if flags.Changed("height") {
		cfg.Height = f.height
	}
	if flags.Changed("randomizer") {
		cfg.Randomizer = f.randomizer
	}
	if f.noHold {
		cfg.Hold = false
	}
	if f.noGhost {
		cfg.Ghost = false
	}
	if err := cfg.Validate(); err != nil {
		return tetris.Config{}, err
	}

	pieces, err := parseSequence(f.sequence)
	if err != nil {
		return tetris.Config{}, fmt.Errorf("--sequence: %w", err)
	}
	f.pieces = pieces
	return cfg, nil
}

// sessionOptions returns the options every new session gets from the
// flags. Each call builds a fresh randomizer.
func (f *gameFlags) sessionOptions() []tetris.Option {
	if len(f.pieces) == 0 {
		return nil
	}
	return []tetris.Option{tetris.WithRandomizer(tetris.NewSequence(f.pieces...))}
}

// parseSequence reads piece letters such as "IOTS" or "i,o,t,s".
func parseSequence(s string) ([]tetris.Variant, error) {
	var pieces []tetris.Variant
	for _, r := range strings.ToUpper(s) {
		if r == ',' || r == ' ' {
			continue
		}
		v, err := tetris.ParseVariant(string(r))
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, v)
	}
	return pieces, nil
}

func newRootCmd() *cobra.Command {
	var verbose bool
	game := &gameFlags{}

	root := &cobra.Command{
		Use:          "tetrad",
		Short:        "Falling-block puzzle game for the terminal and the desktop",
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))

			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("load .env: %w", err)
			}
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	game.register(root)

	root.AddCommand(newPlayCmd(game))
	root.AddCommand(newWindowCmd(game))
	root.AddCommand(newSimCmd(game))
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}

// verbosity returns the level the root command selected.
func verbosity(cmd *cobra.Command) log.Level {
	return loggerFromContext(cmd.Context()).GetLevel()
}
