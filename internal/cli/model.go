package cli

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/segmatch/knn"
	"github.com/katalvlaran/segmatch/modelstore"
	"github.com/spf13/cobra"
)

func newModelCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Build and inspect stored KNN models",
	}
	cmd.AddCommand(newModelBuildCmd(a), newModelListCmd(a), newModelDeleteCmd(a))

	return cmd
}

func newModelBuildCmd(a *app) *cobra.Command {
	var (
		corpusPath  string
		name        string
		k           int
		maxDistance float64
		ratio       float64
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Downsample a labeled corpus into a stored KNN model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			corpus, err := modelstore.LoadCorpusFile(corpusPath)
			if err != nil {
				return err
			}

			cfg := a.cfg.KNN
			if cmd.Flags().Changed("k") {
				cfg.K = k
			}
			if cmd.Flags().Changed("max-distance") {
				cfg.MaxDistance = maxDistance
			}
			if cmd.Flags().Changed("downsample") {
				cfg.DownsampleRatio = ratio
			}

			m, err := knn.NewModel(corpus, cfg.K, cfg.MaxDistance,
				knn.WithDownsampleRatio(cfg.DownsampleRatio),
				knn.WithDistanceMetric(knn.MetricDTW),
			)
			if err != nil {
				return err
			}
			store := modelstore.New(a.cfg.StoreDir)
			if err := store.SaveModel(name, m); err != nil {
				return err
			}

			a.log.Info("model saved",
				slog.String("id", m.ID),
				slog.String("name", name),
				slog.Int("segments", len(m.Segments)),
			)
			printOK(cmd.OutOrStdout(), fmt.Sprintf("saved %s (%d segments, labels %v)", name, len(m.Segments), m.Labels()))
			return nil
		},
	}
	cmd.Flags().StringVar(&corpusPath, "corpus", "", "labeled corpus file")
	cmd.Flags().StringVar(&name, "name", "model.json.zst", "entry name in the store; the extension selects the format")
	cmd.Flags().IntVar(&k, "k", 0, "neighbours consulted per vote")
	cmd.Flags().Float64Var(&maxDistance, "max-distance", 0, "neighbours farther than this are ignored")
	cmd.Flags().Float64Var(&ratio, "downsample", 0, "fraction of timesteps kept, in (0, 1]")
	_ = cmd.MarkFlagRequired("corpus")

	return cmd
}

func newModelListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored models and corpora",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := modelstore.New(a.cfg.StoreDir).List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(names) == 0 {
				printInfo(out, "store "+a.cfg.StoreDir+" is empty")
				return nil
			}
			for _, n := range names {
				fmt.Fprintln(out, n)
			}
			return nil
		},
	}
}

func newModelDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a stored model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := modelstore.New(a.cfg.StoreDir).Delete(args[0]); err != nil {
				return err
			}
			printOK(cmd.OutOrStdout(), "deleted "+args[0])
			return nil
		},
	}
}
