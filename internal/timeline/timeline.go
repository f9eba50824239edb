package timeline

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidArgument is returned for negative durations or section counts
// that are negative or not whole numbers.
var ErrInvalidArgument = errors.New("invalid argument")

// MaxSections bounds the section count so a timeline stays small enough
// to allocate.
const MaxSections = 100000

// per-segment durations in frames
type TimingConfig struct {
	IntroFrames      int
	PerSectionFrames int
	TransitionFrames int
	OutroFrames      int
}

// computed schedule, never mutated after Compute returns
type Timeline struct {
	Config       TimingConfig
	SectionCount int
	TotalFrames  int
	// frame offset at which each section's slide begins
	SegmentStarts []int
}

func (c TimingConfig) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"intro frames", c.IntroFrames},
		{"per-section frames", c.PerSectionFrames},
		{"transition frames", c.TransitionFrames},
		{"outro frames", c.OutroFrames},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%w: %s must be >= 0, got %d", ErrInvalidArgument, f.name, f.value)
		}
	}
	return nil
}

// Compute lays out an intro, sectionCount sections each preceded by a
// transition, a final transition and the outro.
func Compute(cfg TimingConfig, sectionCount int) (*Timeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sectionCount < 0 {
		return nil, fmt.Errorf("%w: section count must be >= 0, got %d", ErrInvalidArgument, sectionCount)
	}
	if sectionCount > MaxSections {
		return nil, fmt.Errorf("%w: section count %d exceeds %d", ErrInvalidArgument, sectionCount, MaxSections)
	}

	total, err := totalFrames(cfg, sectionCount)
	if err != nil {
		return nil, err
	}

	stride := cfg.PerSectionFrames + cfg.TransitionFrames
	first := cfg.IntroFrames + cfg.TransitionFrames

	// every start is below total, so none of these can overflow
	starts := make([]int, sectionCount)
	for i := range starts {
		starts[i] = first + i*stride
	}

	return &Timeline{
		Config:        cfg,
		SectionCount:  sectionCount,
		TotalFrames:   total,
		SegmentStarts: starts,
	}, nil
}

// totalFrames sums intro + n*section + (n+1)*transition + outro,
// failing instead of wrapping past math.MaxInt.
func totalFrames(cfg TimingConfig, n int) (int, error) {
	terms := []struct{ count, frames int }{
		{1, cfg.IntroFrames},
		{n, cfg.PerSectionFrames},
		{n + 1, cfg.TransitionFrames},
		{1, cfg.OutroFrames},
	}

	acc := 0
	for _, t := range terms {
		if t.count > 0 && t.frames > (math.MaxInt-acc)/t.count {
			return 0, fmt.Errorf("%w: timeline exceeds %d frames", ErrInvalidArgument, math.MaxInt)
		}
		acc += t.count * t.frames
	}
	return acc, nil
}

// ParseSectionCount accepts a base-10 whole number such as "4" or "4.0".
func ParseSectionCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return SectionCountFromFloat(float64(n))
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: section count %q is not a number", ErrInvalidArgument, s)
	}
	return SectionCountFromFloat(f)
}

func SectionCountFromFloat(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: section count must be finite, got %v", ErrInvalidArgument, f)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: section count must be a whole number, got %v", ErrInvalidArgument, f)
	}
	if f < 0 {
		return 0, fmt.Errorf("%w: section count must be >= 0, got %v", ErrInvalidArgument, f)
	}
	if f > MaxSections {
		return 0, fmt.Errorf("%w: section count %v exceeds %d", ErrInvalidArgument, f, MaxSections)
	}
	return int(f), nil
}
