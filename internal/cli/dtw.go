package cli

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/segmatch/dtw"
	"github.com/katalvlaran/segmatch/metric"
	"github.com/katalvlaran/segmatch/modelstore"
	"github.com/katalvlaran/segmatch/segment"
	"github.com/spf13/cobra"
)

func newDTWCmd(a *app) *cobra.Command {
	var (
		window   int
		cost     string
		showPath bool
	)

	cmd := &cobra.Command{
		Use:   "dtw <a> <b>",
		Short: "Print the DTW distance between two sequence files",
		Long: `Reads two sequences (JSON, YAML or .json.zst arrays of feature vectors)
and prints their dynamic time warping distance.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.dtwOptions(cmd, window, cost)
			if err != nil {
				return err
			}
			seqA, err := readSequence(args[0])
			if err != nil {
				return err
			}
			seqB, err := readSequence(args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if showPath {
				al, err := dtw.Align(seqA, seqB, &opts)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "distance: %g\n", al.Distance)
				fmt.Fprintf(out, "path: %v\n", al.Path)
				return nil
			}

			d, err := dtw.Distance(seqA, seqB, &opts)
			if err != nil {
				return err
			}
			a.log.Debug("dtw computed",
				slog.Int("len_a", len(seqA)),
				slog.Int("len_b", len(seqB)),
				slog.Int("window", opts.Window),
			)
			fmt.Fprintf(out, "distance: %g\n", d)
			return nil
		},
	}
	cmd.Flags().IntVar(&window, "window", 0, "Sakoe-Chiba band half-width, 0 = unconstrained")
	cmd.Flags().StringVar(&cost, "cost", "", "per-timestep cost: euclidean, manhattan, chebyshev")
	cmd.Flags().BoolVar(&showPath, "path", false, "also print the warping path")

	return cmd
}

// dtwOptions merges config defaults with explicitly set flags.
func (a *app) dtwOptions(cmd *cobra.Command, window int, cost string) (dtw.Options, error) {
	opts, err := a.cfg.DTW.Options()
	if err != nil {
		return dtw.Options{}, err
	}
	if cmd.Flags().Changed("window") {
		opts.Window = window
	}
	if cmd.Flags().Changed("cost") {
		pm, err := metric.ByName(cost)
		if err != nil {
			return dtw.Options{}, err
		}
		opts.Cost = pm
	}

	return opts, nil
}

func readSequence(path string) (segment.Sequence, error) {
	var seq segment.Sequence
	if err := modelstore.ReadFile(path, &seq); err != nil {
		return nil, err
	}
	if err := segment.ValidateSequence(seq); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return seq, nil
}
