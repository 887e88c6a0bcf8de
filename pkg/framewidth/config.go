// Package framewidth infers the probable repeating frame width of an
// unknown bitstream from positional bit-consistency statistics.
package framewidth

import "fmt"

// Mode selects the scoring statistic.
type Mode int

const (
	// ModeConsistency scores each bit position by how lopsided its 0/1
	// split is across frames.
	ModeConsistency Mode = iota
	// ModePeriodic scores each bit position by how often it agrees with
	// the same position Delta frames later.
	ModePeriodic
	// ModeEntropy scores widths by inverted Shannon entropy per column,
	// with a bonus for structured columns and penalties for small samples
	// and oversized widths.
	ModeEntropy
)

// ParseMode maps a mode name (consistency, periodic, entropy) to a Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "consistency":
		return ModeConsistency, nil
	case "periodic":
		return ModePeriodic, nil
	case "entropy":
		return ModeEntropy, nil
	default:
		return 0, fmt.Errorf("framewidth: unknown mode %q", name)
	}
}

// Config controls a frame width analysis.
type Config struct {
	MinWidth int
	MaxWidth int
	Mode     Mode
	Delta    int // Frame lag for ModePeriodic; ignored otherwise
}

// DefaultConfig returns a Config covering the common byte-oriented range.
func DefaultConfig() *Config {
	return &Config{
		MinWidth: 1,
		MaxWidth: 64,
		Mode:     ModeConsistency,
		Delta:    1,
	}
}

// Validate checks the configuration. Width range errors fail fast before
// any scoring happens.
func (c *Config) Validate() error {
	if c.MinWidth < 1 {
		return fmt.Errorf("framewidth: min width %d must be >= 1", c.MinWidth)
	}
	if c.MinWidth > c.MaxWidth {
		return fmt.Errorf("framewidth: min width %d exceeds max width %d", c.MinWidth, c.MaxWidth)
	}
	if c.Mode == ModePeriodic && c.Delta < 1 {
		return fmt.Errorf("framewidth: periodic mode needs delta >= 1, got %d", c.Delta)
	}
	return nil
}
