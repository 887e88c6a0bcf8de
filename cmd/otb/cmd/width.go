package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceBits/pkg/framewidth"
	"github.com/spf13/cobra"
)

// Width flags
var (
	widthMin   int
	widthMax   int
	widthMode  string
	widthDelta int
	widthTop   int
)

var widthCmd = &cobra.Command{
	Use:   "width <input>",
	Short: "Infer the frame width of an unframed capture",
	Long: `Score every candidate width in a range and report the best one.

Scoring modes:
  consistency  column balance: constant columns score high (default)
  periodic     frame self-similarity at a fixed lag (--delta)
  entropy      per-column Shannon entropy with structure weighting

Examples:
  otb width capture.bin
  otb width --min 4 --max 128 capture.bin
  otb width --mode periodic --delta 2 capture.bin`,
	Args: cobra.ExactArgs(1),
	RunE: runWidth,
}

func init() {
	rootCmd.AddCommand(widthCmd)

	defaults := framewidth.DefaultConfig()
	widthCmd.Flags().IntVar(&widthMin, "min", defaults.MinWidth, "smallest candidate width")
	widthCmd.Flags().IntVar(&widthMax, "max", defaults.MaxWidth, "largest candidate width")
	widthCmd.Flags().StringVarP(&widthMode, "mode", "m", "consistency",
		"scoring mode (consistency, periodic, entropy)")
	widthCmd.Flags().IntVarP(&widthDelta, "delta", "d", defaults.Delta,
		"frame lag for periodic mode")
	widthCmd.Flags().IntVar(&widthTop, "top", 10, "show this many best widths (0 = all)")
}

func runWidth(cmd *cobra.Command, args []string) error {
	mode, err := framewidth.ParseMode(widthMode)
	if err != nil {
		return err
	}
	cfg := &framewidth.Config{
		MinWidth: widthMin,
		MaxWidth: widthMax,
		Mode:     mode,
		Delta:    widthDelta,
	}

	bits, err := readBits(args[0])
	if err != nil {
		return err
	}

	analysis, err := framewidth.Analyze(cmd.Context(), bits, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Best width: %d (score %.4f)\n\n", analysis.BestWidth, analysis.BestScore)

	// Rank widths by score, best first; equal scores keep width order.
	ranked := make([]framewidth.WidthScore, len(analysis.WidthScores))
	copy(ranked, analysis.WidthScores)
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].Score > ranked[j-1].Score; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}

	shown := len(ranked)
	if widthTop > 0 && shown > widthTop {
		shown = widthTop
	}
	fmt.Printf("%8s  %s\n", "width", "score")
	for _, ws := range ranked[:shown] {
		fmt.Printf("%8d  %.4f\n", ws.Width, ws.Score)
	}
	if shown < len(ranked) {
		fmt.Printf("  ... and %d more (raise --top to show all)\n", len(ranked)-shown)
	}

	if verbose {
		positions := analysis.PositionScores[analysis.BestWidth-cfg.MinWidth]
		fmt.Printf("\nPer-position scores at width %d:\n", analysis.BestWidth)
		for i, score := range positions {
			fmt.Printf("  bit %3d: %.4f\n", i, score)
		}
	}
	return nil
}
