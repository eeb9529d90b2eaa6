package cli

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/segmatch/dtw"
	"github.com/katalvlaran/segmatch/knn"
	"github.com/katalvlaran/segmatch/modelstore"
	"github.com/spf13/cobra"
)

func newClassifyCmd(a *app) *cobra.Command {
	var (
		name            string
		window          int
		cost            string
		downsampleQuery bool
		showNeighbors   bool
	)

	cmd := &cobra.Command{
		Use:   "classify <query>",
		Short: "Label a query sequence with a stored KNN model",
		Long: `Classifies the query with the DTW distance against every segment of the
model. Prints the winning label, or "no match" when no segment lies within
the model's maxDistance. Both outcomes exit with status 0.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.dtwOptions(cmd, window, cost)
			if err != nil {
				return err
			}
			m, err := modelstore.New(a.cfg.StoreDir).LoadModel(name)
			if err != nil {
				return err
			}
			query, err := readSequence(args[0])
			if err != nil {
				return err
			}
			if downsampleQuery {
				query = knn.Downsample(query, m.DownsampleRatio)
			}

			neighbors, err := m.Neighbors(query, dtw.Metric(&opts))
			if err != nil {
				return err
			}
			label, ok := knn.Vote(neighbors)

			out := cmd.OutOrStdout()
			if showNeighbors {
				for _, n := range neighbors {
					printInfo(out, fmt.Sprintf("%s %g", n.Label, n.Distance))
				}
			}
			if !ok {
				a.log.Info("no neighbour within range", slog.String("model", name), slog.Float64("max_distance", m.MaxDistance))
				fmt.Fprintln(out, "no match")
				return nil
			}
			a.log.Debug("classified", slog.String("label", label), slog.Int("neighbors", len(neighbors)))
			fmt.Fprintln(out, label)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "model", "model.json.zst", "model entry name in the store")
	cmd.Flags().IntVar(&window, "window", 0, "Sakoe-Chiba band half-width, 0 = unconstrained")
	cmd.Flags().StringVar(&cost, "cost", "", "per-timestep cost: euclidean, manhattan, chebyshev")
	cmd.Flags().BoolVar(&downsampleQuery, "downsample-query", false, "apply the model's downsample ratio to the query")
	cmd.Flags().BoolVar(&showNeighbors, "neighbors", false, "print the retained neighbours")

	return cmd
}
