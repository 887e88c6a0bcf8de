package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceBits/pkg/pipeline"
	"github.com/OpenTraceLab/OpenTraceBits/pkg/seqlang"
	"github.com/OpenTraceLab/OpenTraceBits/pkg/worksheet"
	"github.com/spf13/cobra"
)

// Compose flags
var (
	composeEntries []string
	composeActive  int
)

var composeCmd = &cobra.Command{
	Use:   "compose <registry.json> <output>",
	Short: "Build a capture from other worksheets",
	Long: `Load a worksheet registry and concatenate bits from the referenced
worksheets, each rewritten by an optional take/skip sequence. Entries that
cannot contribute (out of range, self-referencing, missing source, read
failure) are skipped with a warning.

Each --entry is INDEX or INDEX:SEQUENCE, in concatenation order.

Examples:
  otb compose --entry 1 --entry 2:t8s8 registry.json out.bin
  otb compose --active 2 --entry 0:i4 registry.json out.bin`,
	Args: cobra.ExactArgs(2),
	RunE: runCompose,
}

func init() {
	rootCmd.AddCommand(composeCmd)

	composeCmd.Flags().StringArrayVarP(&composeEntries, "entry", "e", nil,
		"worksheet entry INDEX[:SEQUENCE] (repeatable)")
	composeCmd.Flags().IntVar(&composeActive, "active", -1,
		"index of the worksheet being built (rejects self-references)")
	composeCmd.MarkFlagRequired("entry")
}

func parseEntry(arg string) (pipeline.WorksheetEntry, error) {
	indexText, seqText, hasSeq := strings.Cut(arg, ":")
	index, err := strconv.Atoi(indexText)
	if err != nil {
		return pipeline.WorksheetEntry{}, fmt.Errorf("invalid entry %q: index must be a number", arg)
	}

	entry := pipeline.WorksheetEntry{WorksheetIndex: index}
	if hasSeq {
		seq, err := seqlang.Parse(seqText)
		if err != nil {
			return pipeline.WorksheetEntry{}, fmt.Errorf("invalid entry %q: %w", arg, err)
		}
		entry.Sequence = seq
	}
	return entry, nil
}

func runCompose(cmd *cobra.Command, args []string) error {
	registryPath, output := args[0], args[1]

	registry, err := worksheet.LoadFile(registryPath)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Printf("Loaded registry %s: %d worksheet(s)\n", registryPath, registry.Count())
	}

	entries := make([]pipeline.WorksheetEntry, 0, len(composeEntries))
	for _, arg := range composeEntries {
		entry, err := parseEntry(arg)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}

	op := &pipeline.MultiWorksheetLoad{OpName: "compose", Entries: entries}
	result, errs := pipeline.New(nil, registry, composeActive).Apply(nil, []pipeline.BitOperation{op})
	for _, e := range errs {
		fmt.Printf("warning: %v\n", e)
	}

	fmt.Printf("Composed %d bits from %d entries (%d skipped)\n",
		len(result), len(entries), len(errs))
	return writeBits(output, result)
}
