package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mgpai22/reeltime/internal/timeline"
	"gopkg.in/yaml.v3"
)

// Plan is a video timing plan as read from a YAML file.
type Plan struct {
	FPS        int    `yaml:"fps"`
	Intro      Length `yaml:"intro"`
	PerSection Length `yaml:"per_section"`
	Transition Length `yaml:"transition"`
	Outro      Length `yaml:"outro"`

	// Titles of the content sections. Their count is the section count
	// unless SectionCount is set explicitly.
	Sections     []string      `yaml:"sections"`
	SectionCount *SectionCount `yaml:"section_count"`
}

// Length reads a segment length as a frame count (90) or a duration ("3s").
type Length struct {
	timeline.Length
}

func (l *Length) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: length must be a scalar (line %d)", timeline.ErrInvalidArgument, node.Line)
	}
	parsed, err := timeline.ParseLength(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	l.Length = parsed
	return nil
}

func Frames(n int) Length {
	return Length{timeline.FrameCount(n)}
}

// SectionCount rejects fractional and non-numeric YAML scalars.
type SectionCount int

func (s *SectionCount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: section_count must be a scalar (line %d)", timeline.ErrInvalidArgument, node.Line)
	}
	n, err := timeline.ParseSectionCount(node.Value)
	if err != nil {
		return fmt.Errorf("section_count (line %d): %w", node.Line, err)
	}
	*s = SectionCount(n)
	return nil
}

// DefaultPlan is the newsletter layout: 3s intro and outro, 5s sections,
// 1s transitions at 30fps.
func DefaultPlan() *Plan {
	return &Plan{
		FPS:        int(timeline.DefaultFrameRate),
		Intro:      Frames(90),
		PerSection: Frames(150),
		Transition: Frames(30),
		Outro:      Frames(90),
	}
}

// Load reads a plan file, applies environment overrides and validates the
// result.
func Load(path string) (*Plan, error) {
	plan, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := plan.ApplyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan %s: %w", path, err)
	}
	return plan, nil
}

// Read parses a plan file on top of DefaultPlan without validating it, so
// callers can layer further overrides first.
func Read(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}

	plan := DefaultPlan()
	if err := yaml.Unmarshal(data, plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan %s: %w", path, err)
	}
	return plan, nil
}

// ApplyEnvOverrides applies REELTIME_FPS.
func (p *Plan) ApplyEnvOverrides() error {
	if v := os.Getenv("REELTIME_FPS"); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: REELTIME_FPS=%q is not an integer", timeline.ErrInvalidArgument, v)
		}
		p.FPS = fps
	}
	return nil
}

func (p *Plan) Validate() error {
	if err := p.FrameRate().Validate(); err != nil {
		return err
	}
	if err := p.Timing().Validate(); err != nil {
		return err
	}
	if p.SectionCount != nil && len(p.Sections) > 0 && int(*p.SectionCount) != len(p.Sections) {
		return fmt.Errorf("%w: section_count is %d but %d sections are listed",
			timeline.ErrInvalidArgument, int(*p.SectionCount), len(p.Sections))
	}
	return nil
}

// Timing resolves every length to frames at the plan's frame rate.
func (p *Plan) Timing() timeline.TimingConfig {
	rate := p.FrameRate()
	return timeline.TimingConfig{
		IntroFrames:      p.Intro.Frames(rate),
		PerSectionFrames: p.PerSection.Frames(rate),
		TransitionFrames: p.Transition.Frames(rate),
		OutroFrames:      p.Outro.Frames(rate),
	}
}

func (p *Plan) FrameRate() timeline.FrameRate {
	return timeline.FrameRate(p.FPS)
}

func (p *Plan) Count() int {
	if p.SectionCount != nil {
		return int(*p.SectionCount)
	}
	return len(p.Sections)
}

// Timeline computes the schedule for this plan.
func (p *Plan) Timeline() (*timeline.Timeline, error) {
	return timeline.Compute(p.Timing(), p.Count())
}
