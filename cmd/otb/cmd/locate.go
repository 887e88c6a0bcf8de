package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceBits/pkg/patloc"
	"github.com/spf13/cobra"
)

// Locate flags
var (
	locateFormat  string
	locatePattern string
	locateGarbles int
	locateLimit   int
)

var locateCmd = &cobra.Command{
	Use:   "locate <input>",
	Short: "Search a capture for a bit pattern",
	Long: `Compile a pattern from its textual form and report every window of the
capture within the garble tolerance, including the distance from the
previous match.

Pattern formats:
  bits   binary digits, spaces and underscores ignored (e.g. "1010_1100")
  hex    hex digits, optional 0x prefix, 4 bits per digit (e.g. "0xA5")
  ascii  raw bytes, 8 bits per character MSB first (e.g. "SYNC")

Examples:
  otb locate --format hex --pattern A5A5 capture.bin
  otb locate --format bits --pattern "1011 0111" --garbles 2 capture.bin
  otb locate --format ascii --pattern SYNC --limit 20 capture.bin`,
	Args: cobra.ExactArgs(1),
	RunE: runLocate,
}

func init() {
	rootCmd.AddCommand(locateCmd)

	locateCmd.Flags().StringVarP(&locateFormat, "format", "f", "bits",
		"pattern format (bits, hex, ascii)")
	locateCmd.Flags().StringVarP(&locatePattern, "pattern", "p", "",
		"pattern text in the chosen format")
	locateCmd.Flags().IntVarP(&locateGarbles, "garbles", "g", 0,
		"maximum mismatched bits per match")
	locateCmd.Flags().IntVar(&locateLimit, "limit", 0,
		"print at most this many matches (0 = all)")
	locateCmd.MarkFlagRequired("pattern")
}

func runLocate(cmd *cobra.Command, args []string) error {
	format, err := patloc.ParseFormat(locateFormat)
	if err != nil {
		return err
	}

	pattern, err := patloc.New("cli", format, locatePattern, locateGarbles)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Pattern: %s (%d bits, tolerance %d)\n",
			pattern.Bits.String(), len(pattern.Bits), locateGarbles)
	}

	haystack, err := readBits(args[0])
	if err != nil {
		return err
	}

	matches, err := pattern.Search(cmd.Context(), haystack)
	if err != nil {
		return err
	}

	fmt.Printf("Found %d match(es)\n", len(matches))

	shown := len(matches)
	if locateLimit > 0 && shown > locateLimit {
		shown = locateLimit
	}
	for _, m := range matches[:shown] {
		delta := "-"
		if m.Delta != nil {
			delta = fmt.Sprintf("%d", *m.Delta)
		}
		fmt.Printf("  bit %8d  delta %6s  mismatches %d", m.Position, delta, m.Mismatches)
		if verbose {
			fmt.Printf("  %s", m.BitsString())
		}
		fmt.Println()
	}
	if shown < len(matches) {
		fmt.Printf("  ... and %d more (raise --limit to show all)\n", len(matches)-shown)
	}
	return nil
}
