package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceBits/pkg/pipeline"
	"github.com/OpenTraceLab/OpenTraceBits/pkg/seqlang"
	"github.com/spf13/cobra"
)

var seqCmd = &cobra.Command{
	Use:   "seq",
	Short: "Take/skip sequence operations",
	Long:  `Commands for parsing and applying take/skip/reverse/invert sequences`,
}

var seqParseCmd = &cobra.Command{
	Use:   "parse <sequence>",
	Short: "Validate a sequence and describe its operations",
	Long: `Parse a sequence written in the take/skip mini-language and print its
canonical form and per-operation breakdown.

The language has four operations, each followed by a positive count:
  t<n>  take n bits
  r<n>  take n bits reversed
  i<n>  take n bits inverted
  s<n>  skip n bits

Examples:
  otb seq parse t4s4
  otb seq parse T8R8i4s12`,
	Args: cobra.ExactArgs(1),
	RunE: runSeqParse,
}

// Seq apply flags
var (
	applySequence string
	applyInvert   bool
	applyStart    int
	applyEnd      int
)

var seqApplyCmd = &cobra.Command{
	Use:   "apply <input> <output>",
	Short: "Rewrite a capture file through a sequence",
	Long: `Read a capture file as bits, apply the requested operations in order
(sequence, then invert, then truncate), and write the result.

Examples:
  otb seq apply --seq t8s8 capture.bin picked.bin
  otb seq apply --invert capture.bin flipped.bin
  otb seq apply --start 64 --end 192 capture.bin window.bin`,
	Args: cobra.ExactArgs(2),
	RunE: runSeqApply,
}

func init() {
	rootCmd.AddCommand(seqCmd)
	seqCmd.AddCommand(seqParseCmd)
	seqCmd.AddCommand(seqApplyCmd)

	seqApplyCmd.Flags().StringVarP(&applySequence, "seq", "s", "",
		"take/skip sequence to apply (e.g. t4s4r2)")
	seqApplyCmd.Flags().BoolVarP(&applyInvert, "invert", "i", false,
		"invert all bits")
	seqApplyCmd.Flags().IntVar(&applyStart, "start", 0,
		"truncate: first bit to keep")
	seqApplyCmd.Flags().IntVar(&applyEnd, "end", -1,
		"truncate: first bit to drop (-1 = end of data)")
}

func runSeqParse(cmd *cobra.Command, args []string) error {
	seq, err := seqlang.Parse(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Canonical: %s\n", seq.String())
	fmt.Printf("Operations: %d\n", len(seq.Ops))
	for i, op := range seq.Ops {
		fmt.Printf("  %2d: %s\n", i+1, describeOp(op))
	}
	return nil
}

func describeOp(op seqlang.Op) string {
	switch op.Kind {
	case seqlang.Take:
		return fmt.Sprintf("take %d bit(s)", op.Count)
	case seqlang.Reverse:
		return fmt.Sprintf("take %d bit(s) reversed", op.Count)
	case seqlang.Invert:
		return fmt.Sprintf("take %d bit(s) inverted", op.Count)
	case seqlang.Skip:
		return fmt.Sprintf("skip %d bit(s)", op.Count)
	}
	return op.String()
}

func runSeqApply(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	if applySequence == "" && !applyInvert && applyStart == 0 && applyEnd < 0 {
		return fmt.Errorf("nothing to do: pass --seq, --invert, or --start/--end")
	}

	var ops []pipeline.BitOperation
	if applySequence != "" {
		seq, err := seqlang.Parse(applySequence)
		if err != nil {
			return err
		}
		ops = append(ops, &pipeline.TakeSkipSequence{OpName: "seq", Sequence: seq})
	}
	if applyInvert {
		ops = append(ops, &pipeline.InvertBits{OpName: "invert"})
	}
	if applyStart != 0 || applyEnd >= 0 {
		trunc := &pipeline.TruncateBits{OpName: "truncate", Start: applyStart}
		if applyEnd >= 0 {
			end := applyEnd
			trunc.End = &end
		}
		ops = append(ops, trunc)
	}

	bits, err := readBits(input)
	if err != nil {
		return err
	}

	result, errs := pipeline.New(nil, nil, 0).Apply(bits, ops)
	for _, e := range errs {
		fmt.Printf("warning: %v\n", e)
	}

	if verbose {
		fmt.Printf("Result: %d bits (from %d)\n", len(result), len(bits))
	}
	return writeBits(output, result)
}
