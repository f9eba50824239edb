package timeline

// kind of span in the full schedule
type Kind string

const (
	KindIntro      Kind = "intro"
	KindTransition Kind = "transition"
	KindSection    Kind = "section"
	KindOutro      Kind = "outro"
)

// Segment is one contiguous span of the schedule. Index is the section
// number for sections and the transition number for transitions; 0 otherwise.
type Segment struct {
	Kind   Kind
	Index  int
	Start  int
	Frames int
}

func (s Segment) End() int {
	return s.Start + s.Frames
}

// Segments returns the full back-to-back schedule:
// intro, (transition, section) x n, transition, outro.
// Zero-length spans are kept so the result always has 2n+3 entries.
func (t *Timeline) Segments() []Segment {
	cfg := t.Config
	segs := make([]Segment, 0, 2*t.SectionCount+3)

	segs = append(segs, Segment{Kind: KindIntro, Start: 0, Frames: cfg.IntroFrames})
	cursor := cfg.IntroFrames

	for i := 0; i < t.SectionCount; i++ {
		segs = append(segs, Segment{Kind: KindTransition, Index: i, Start: cursor, Frames: cfg.TransitionFrames})
		cursor += cfg.TransitionFrames
		segs = append(segs, Segment{Kind: KindSection, Index: i, Start: cursor, Frames: cfg.PerSectionFrames})
		cursor += cfg.PerSectionFrames
	}

	segs = append(segs, Segment{Kind: KindTransition, Index: t.SectionCount, Start: cursor, Frames: cfg.TransitionFrames})
	cursor += cfg.TransitionFrames
	segs = append(segs, Segment{Kind: KindOutro, Start: cursor, Frames: cfg.OutroFrames})

	return segs
}

// OutroStart is the frame at which the outro begins.
func (t *Timeline) OutroStart() int {
	return t.TotalFrames - t.Config.OutroFrames
}
