package pipeline

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceBits/pkg/bitseq"
)

// Direction selects whether an interleaver scrambles or unscrambles.
type Direction int

const (
	Interleave Direction = iota
	Deinterleave
)

func (d Direction) String() string {
	if d == Deinterleave {
		return "Deinterleave"
	}
	return "Interleave"
}

// Interleaver reorders bits for error resilience analysis. Interleave and
// Deinterleave with the same parameters round-trip for full matrices.
type Interleaver interface {
	Apply(input bitseq.BitSeq) bitseq.BitSeq
	Describe() string
}

// BlockInterleaver writes bits row-wise into a depth x block-size matrix
// and reads them back column-wise (or the reverse when deinterleaving).
type BlockInterleaver struct {
	BlockSize int // Bits per row
	Depth     int // Number of rows per matrix
	Direction Direction
}

func (c BlockInterleaver) Describe() string {
	return fmt.Sprintf("Block %d×%d %s", c.BlockSize, c.Depth, c.Direction)
}

func (c BlockInterleaver) Apply(input bitseq.BitSeq) bitseq.BitSeq {
	if len(input) == 0 || c.BlockSize <= 0 || c.Depth <= 0 {
		return input.Clone()
	}

	result := make(bitseq.BitSeq, 0, len(input))
	matrixSize := c.BlockSize * c.Depth

	for chunkStart := 0; chunkStart < len(input); chunkStart += matrixSize {
		chunkEnd := chunkStart + matrixSize
		if chunkEnd > len(input) {
			chunkEnd = len(input)
		}
		chunk := input[chunkStart:chunkEnd]

		matrix := make([][]bool, c.Depth)
		for row := range matrix {
			matrix[row] = make([]bool, c.BlockSize)
		}

		if c.Direction == Interleave {
			// Write row-wise, read column-wise.
			for i, bit := range chunk {
				row := i / c.BlockSize
				col := i % c.BlockSize
				if row < c.Depth {
					matrix[row][col] = bit
				}
			}
			for col := 0; col < c.BlockSize; col++ {
				for row := 0; row < c.Depth; row++ {
					if row*c.BlockSize+col < len(chunk) {
						result = append(result, matrix[row][col])
					}
				}
			}
		} else {
			// Write column-wise, read row-wise.
			i := 0
			for col := 0; col < c.BlockSize; col++ {
				for row := 0; row < c.Depth; row++ {
					if i < len(chunk) {
						matrix[row][col] = chunk[i]
						i++
					}
				}
			}
			for row := 0; row < c.Depth; row++ {
				for col := 0; col < c.BlockSize; col++ {
					if row*c.BlockSize+col < len(chunk) {
						result = append(result, matrix[row][col])
					}
				}
			}
		}
	}

	return result
}

// ConvolutionalInterleaver distributes bits round-robin across branches
// with linearly increasing FIFO delays. Branch i carries a delay of
// i*DelayIncrement when interleaving and (Branches-1-i)*DelayIncrement when
// deinterleaving.
type ConvolutionalInterleaver struct {
	Branches       int // Number of parallel branches (B)
	DelayIncrement int // Delay increment between branches (M)
	Direction      Direction
}

func (c ConvolutionalInterleaver) Describe() string {
	return fmt.Sprintf("Conv B=%d M=%d %s", c.Branches, c.DelayIncrement, c.Direction)
}

// TotalDelay returns the end-to-end delay introduced by the interleaver.
func (c ConvolutionalInterleaver) TotalDelay() int {
	if c.Branches <= 0 {
		return 0
	}
	return (c.Branches - 1) * c.DelayIncrement
}

func (c ConvolutionalInterleaver) Apply(input bitseq.BitSeq) bitseq.BitSeq {
	if len(input) == 0 || c.Branches <= 0 {
		return input.Clone()
	}

	delays := make([][]bool, c.Branches)
	for i := range delays {
		n := i * c.DelayIncrement
		if c.Direction == Deinterleave {
			n = (c.Branches - 1 - i) * c.DelayIncrement
		}
		delays[i] = make([]bool, n)
	}

	result := make(bitseq.BitSeq, 0, len(input))
	branch := 0

	for _, bit := range input {
		line := append(delays[branch], bit)
		result = append(result, line[0])
		delays[branch] = line[1:]
		branch = (branch + 1) % c.Branches
	}

	return result
}

// SymbolInterleaver is a block interleaver that treats SymbolSize-bit
// groups as atomic units, so bytes or characters move together. Trailing
// bits that do not fill a whole symbol are dropped.
type SymbolInterleaver struct {
	SymbolSize int // Bits per symbol (8 for bytes)
	BlockSize  int // Symbols per row
	Depth      int // Number of rows per matrix
	Direction  Direction
}

func (c SymbolInterleaver) Describe() string {
	return fmt.Sprintf("Symbol %d×%d (%dbit) %s", c.BlockSize, c.Depth, c.SymbolSize, c.Direction)
}

func (c SymbolInterleaver) Apply(input bitseq.BitSeq) bitseq.BitSeq {
	if len(input) == 0 || c.SymbolSize <= 0 || c.BlockSize <= 0 || c.Depth <= 0 {
		return input.Clone()
	}

	result := make(bitseq.BitSeq, 0, len(input))
	symbolsPerMatrix := c.BlockSize * c.Depth
	bitsPerMatrix := symbolsPerMatrix * c.SymbolSize

	for chunkStart := 0; chunkStart < len(input); chunkStart += bitsPerMatrix {
		chunkEnd := chunkStart + bitsPerMatrix
		if chunkEnd > len(input) {
			chunkEnd = len(input)
		}
		chunk := input[chunkStart:chunkEnd]

		var symbols []bitseq.BitSeq
		for s := 0; s+c.SymbolSize <= len(chunk); s += c.SymbolSize {
			symbols = append(symbols, bitseq.BitSeq(chunk[s:s+c.SymbolSize]))
		}

		matrix := make([][]bitseq.BitSeq, c.Depth)
		for row := range matrix {
			matrix[row] = make([]bitseq.BitSeq, c.BlockSize)
		}

		if c.Direction == Interleave {
			// Write symbols row-wise, read column-wise.
			for i, sym := range symbols {
				row := i / c.BlockSize
				col := i % c.BlockSize
				if row < c.Depth {
					matrix[row][col] = sym
				}
			}
			for col := 0; col < c.BlockSize; col++ {
				for row := 0; row < c.Depth; row++ {
					result = append(result, matrix[row][col]...)
				}
			}
		} else {
			// Write symbols column-wise, read row-wise.
			i := 0
			for col := 0; col < c.BlockSize; col++ {
				for row := 0; row < c.Depth; row++ {
					if i < len(symbols) {
						matrix[row][col] = symbols[i]
						i++
					}
				}
			}
			for row := 0; row < c.Depth; row++ {
				for col := 0; col < c.BlockSize; col++ {
					result = append(result, matrix[row][col]...)
				}
			}
		}
	}

	return result
}
