package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/segmatch/dtw"
	"github.com/katalvlaran/segmatch/internal/logger/slogpretty"
	"github.com/katalvlaran/segmatch/mds"
	"github.com/katalvlaran/segmatch/modelstore"
	"github.com/katalvlaran/segmatch/segment"
	"github.com/katalvlaran/segmatch/viz"
	"github.com/spf13/cobra"
)

func newEmbedCmd(a *app) *cobra.Command {
	var (
		corpusPath  string
		dims        int
		concurrency int
		window      int
		cost        string
		pngPath     string
		htmlPath    string
		reverseX    bool
		reverseY    bool
	)

	cmd := &cobra.Command{
		Use:   "embed",
		Short: "Embed a corpus with pairwise DTW and classical MDS",
		Long: `Computes the pairwise DTW matrix of a labeled corpus, embeds it with
classical MDS and prints one "label c1 c2 ..." line per segment.
--png and --html additionally render the first two coordinates.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := a.dtwOptions(cmd, window, cost)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("dims") {
				dims = a.cfg.MDS.Dimensions
			}
			if !cmd.Flags().Changed("concurrency") {
				concurrency = a.cfg.MDS.Concurrency
			}

			corpus, err := modelstore.LoadCorpusFile(corpusPath)
			if err != nil {
				return err
			}
			d, err := mds.BuildDistanceMatrix(cmd.Context(), segment.Sequences(corpus), dtw.Metric(&opts),
				mds.WithConcurrency(concurrency))
			if err != nil {
				return err
			}
			if err := mds.Validate(d, 1e-9); err != nil {
				a.log.Warn("distance matrix is not a proper metric", slogpretty.Err(err))
				printWarn(cmd.ErrOrStderr(), err.Error())
			}

			res, err := mds.Classic(d, dims)
			if err != nil {
				return err
			}
			labels := segment.Labels(corpus)

			out := cmd.OutOrStdout()
			for i, p := range res.Points {
				coords := make([]string, len(p))
				for j, x := range p {
					coords[j] = fmt.Sprintf("%.6g", x)
				}
				fmt.Fprintf(out, "%s %s\n", labels[i], strings.Join(coords, " "))
			}

			params := viz.DefaultParams()
			params.ReverseX, params.ReverseY = reverseX, reverseY
			if pngPath != "" {
				if err := writePlot(pngPath, res.Points, labels, params, viz.WritePNG); err != nil {
					return err
				}
				printOK(cmd.ErrOrStderr(), "wrote "+pngPath)
			}
			if htmlPath != "" {
				if err := writePlot(htmlPath, res.Points, labels, params, viz.WriteHTML); err != nil {
					return err
				}
				printOK(cmd.ErrOrStderr(), "wrote "+htmlPath)
			}

			a.log.Debug("embedding done", slog.Int("segments", len(corpus)), slog.Int("dims", dims))
			return nil
		},
	}
	cmd.Flags().StringVar(&corpusPath, "corpus", "", "labeled corpus file")
	cmd.Flags().IntVar(&dims, "dims", 2, "embedding dimensions")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "parallel DTW evaluations")
	cmd.Flags().IntVar(&window, "window", 0, "Sakoe-Chiba band half-width, 0 = unconstrained")
	cmd.Flags().StringVar(&cost, "cost", "", "per-timestep cost: euclidean, manhattan, chebyshev")
	cmd.Flags().StringVar(&pngPath, "png", "", "write a PNG scatter plot")
	cmd.Flags().StringVar(&htmlPath, "html", "", "write an interactive HTML scatter plot")
	cmd.Flags().BoolVar(&reverseX, "reverse-x", false, "mirror the plot horizontally")
	cmd.Flags().BoolVar(&reverseY, "reverse-y", false, "mirror the plot vertically")
	_ = cmd.MarkFlagRequired("corpus")

	return cmd
}

type plotFunc func(w io.Writer, points [][]float64, labels []string, p viz.Params) error

func writePlot(path string, points [][]float64, labels []string, p viz.Params, render plotFunc) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return render(f, points, labels, p)
}
