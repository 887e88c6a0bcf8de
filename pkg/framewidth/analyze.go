package framewidth

import (
	"context"
	"math"

	"github.com/OpenTraceLab/OpenTraceBits/pkg/bitseq"
)

// WidthScore pairs a candidate width with its aggregate score.
type WidthScore struct {
	Width int
	Score float64
}

// Analysis is the full result of a frame width scan, kept in candidate
// order for downstream visualization.
type Analysis struct {
	WidthScores []WidthScore
	BestWidth   int
	BestScore   float64
	// PositionScores holds one per-bit-position score vector per candidate
	// width, indexed by width - MinWidth.
	PositionScores [][]float64
}

// Analyze scores every candidate width in [MinWidth, MaxWidth] against the
// bits and selects the best supported one; ties resolve to the smallest
// width. The function is pure. Cancellation is checked between widths and
// aborts with ctx.Err().
func Analyze(ctx context.Context, bits bitseq.BitSeq, cfg *Config) (*Analysis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	analysis := &Analysis{
		BestWidth: cfg.MinWidth,
		BestScore: math.Inf(-1),
	}

	for width := cfg.MinWidth; width <= cfg.MaxWidth; width++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		var score float64
		var positions []float64
		switch cfg.Mode {
		case ModePeriodic:
			score, positions = scorePeriodic(bits, width, cfg.Delta)
		case ModeEntropy:
			score, positions = scoreEntropy(bits, width)
		default:
			score, positions = scoreConsistency(bits, width)
		}

		analysis.WidthScores = append(analysis.WidthScores, WidthScore{Width: width, Score: score})
		analysis.PositionScores = append(analysis.PositionScores, positions)

		if score > analysis.BestScore {
			analysis.BestScore = score
			analysis.BestWidth = width
		}
	}

	return analysis, nil
}

// scoreConsistency rates each bit position by the imbalance of its column:
// |c0-c1| / (c0+c1), taken down the column of whole frames (trailing
// partial frame discarded), 0 for an empty column. The width score is the
// mean over positions.
func scoreConsistency(bits bitseq.BitSeq, width int) (float64, []float64) {
	numFrames := len(bits) / width
	positions := make([]float64, width)
	total := 0.0

	for p := 0; p < width; p++ {
		c0, c1 := 0, 0
		for f := 0; f < numFrames; f++ {
			if bits[f*width+p] {
				c1++
			} else {
				c0++
			}
		}
		if c0+c1 > 0 {
			positions[p] = math.Abs(float64(c0-c1)) / float64(c0+c1)
		}
		total += positions[p]
	}

	return total / float64(width), positions
}

// scorePeriodic rates each bit position by how often it agrees with the
// same position delta frames later, over the frames that have a partner.
func scorePeriodic(bits bitseq.BitSeq, width, delta int) (float64, []float64) {
	numFrames := len(bits) / width
	samples := numFrames - delta
	positions := make([]float64, width)

	if samples <= 0 {
		return 0, positions
	}

	total := 0.0
	for p := 0; p < width; p++ {
		agreements := 0
		for f := 0; f < samples; f++ {
			if bits[f*width+p] == bits[(f+delta)*width+p] {
				agreements++
			}
		}
		positions[p] = float64(agreements) / float64(samples)
		total += positions[p]
	}

	return total / float64(width), positions
}

// scoreEntropy rates a width by inverted per-column Shannon entropy. Columns
// whose bits are nearly constant (entropy < 0.3) earn a structure bonus, a
// small sample count scales the score down, and widths far above 8 bits pay
// a gentle logarithmic penalty. Needs at least 3 whole frames. The returned
// position scores are consistencies (1 - entropy).
func scoreEntropy(bits bitseq.BitSeq, width int) (float64, []float64) {
	if len(bits) < width*2 {
		return 0, nil
	}
	numFrames := len(bits) / width
	if numFrames < 3 {
		return 0, nil
	}

	positions := make([]float64, width)
	totalEntropy := 0.0
	lowEntropy := 0

	for p := 0; p < width; p++ {
		c0, c1 := 0, 0
		for f := 0; f < numFrames; f++ {
			if bits[f*width+p] {
				c1++
			} else {
				c0++
			}
		}

		entropy := 0.0
		total := float64(c0 + c1)
		if total > 0 {
			if c0 > 0 {
				p0 := float64(c0) / total
				entropy -= p0 * math.Log2(p0)
			}
			if c1 > 0 {
				p1 := float64(c1) / total
				entropy -= p1 * math.Log2(p1)
			}
		}

		if entropy < 0.3 {
			lowEntropy++
		}
		positions[p] = 1 - entropy
		totalEntropy += entropy
	}

	avgEntropy := totalEntropy / float64(width)
	structureBonus := float64(lowEntropy) / float64(width) * 0.5

	sampleConfidence := 1.0
	if numFrames < 30 {
		sampleConfidence = float64(numFrames) / 30.0
	}

	widthPenalty := math.Max(math.Log2(float64(width)/8.0), 0) * 0.05

	score := ((1 - avgEntropy) + structureBonus) * sampleConfidence * (1 - widthPenalty)
	return score, positions
}
