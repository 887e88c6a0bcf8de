package cmd

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/OpenTraceBits/pkg/bitseq"
	"github.com/OpenTraceLab/OpenTraceBits/pkg/pipeline"
)

// readBits loads a capture file and expands it into bits, MSB first.
func readBits(path string) (bitseq.BitSeq, error) {
	bits, err := pipeline.FileReader{}.ReadBits(path)
	if err != nil {
		return nil, err
	}
	if verbose {
		fmt.Printf("Loaded %s: %d bits\n", path, len(bits))
	}
	return bits, nil
}

// writeBits packs bits back into bytes (zero-padded tail) and writes them.
func writeBits(path string, bits bitseq.BitSeq) error {
	if err := os.WriteFile(path, bits.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if verbose {
		fmt.Printf("Wrote %s: %d bits (%d bytes)\n", path, len(bits), len(bits.Bytes()))
	}
	return nil
}
