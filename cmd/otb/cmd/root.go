package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "otb",
	Short: "OpenTraceBits - bit-level capture analysis tools",
	Long: `OpenTraceBits (otb) analyzes raw bit captures:
  - take/skip sequence rewriting with a compact mini-language
  - fuzzy bit pattern search in binary captures
  - frame width inference for unframed streams
  - multi-worksheet composition from a registry file

Examples:
  otb seq parse t4s4r2                     # Validate and describe a sequence
  otb seq apply --seq t8s8 in.bin out.bin  # Rewrite a capture
  otb locate --format hex --pattern A5 capture.bin
  otb width --min 4 --max 64 capture.bin
  otb compose --entry 1:t4s4 registry.json out.bin`,
	Version: "0.9.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
