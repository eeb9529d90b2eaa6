// Package cli wires the segmatch engines into a cobra command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/segmatch/internal/config"
	"github.com/katalvlaran/segmatch/internal/logger/slogpretty"
	"github.com/spf13/cobra"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	cfg        *config.Config
	log        *slog.Logger
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "segmatch",
		Short:        "Segmatch — DTW/KNN gesture classification and MDS diagnostics",
		SilenceUsage: true, // don't print usage on operational errors
		Long: `Segmatch compares labeled multivariate time-series segments with dynamic
time warping, classifies new segments by k-nearest-neighbour vote and embeds
corpora in 2-D with classical multidimensional scaling.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(config.ResolvePath(a.configPath))
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = setupLogger(cfg.Env, cmd.ErrOrStderr())
			a.log.Debug("config loaded", slog.String("env", cfg.Env), slog.String("store_dir", cfg.StoreDir))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $"+config.PathEnv+")")

	root.AddCommand(
		newDTWCmd(a),
		newModelCmd(a),
		newClassifyCmd(a),
		newEmbedCmd(a),
		newVersionCmd(),
	)

	return root
}

// Execute is called by main.go.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger(env string, w io.Writer) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		opts := slogpretty.PrettyHandlerOptions{
			SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug},
		}
		log = slog.New(opts.NewPrettyHandler(w))
	case config.EnvDev:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}
