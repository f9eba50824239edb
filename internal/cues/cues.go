package cues

import (
	"fmt"
	"time"

	"github.com/mgpai22/reeltime/internal/timeline"
)

// single chapter cue
type Cue struct {
	Index     int
	StartTime time.Duration
	EndTime   time.Duration
	Title     string
}

// ordered chapter track for one video
type Track struct {
	Title string
	Cues  []Cue
}

// supported cue file formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
	FormatASS Format = "ass"
)

// interface for writing cue tracks to files
type Writer interface {
	Write(track *Track, path string) error
}

// FromTimeline builds a chapter track with one cue for the intro, one per
// section and one for the outro. Transitions are folded into the cue that
// follows them. Missing titles default to "Section N". Zero-length
// chapters are dropped and the remaining cues are numbered from 1.
func FromTimeline(
	tl *timeline.Timeline,
	titles []string,
	rate timeline.FrameRate,
) *Track {
	track := &Track{Cues: make([]Cue, 0, tl.SectionCount+2)}

	add := func(title string, start, end int) {
		if end <= start {
			return
		}
		track.Cues = append(track.Cues, Cue{
			Index:     len(track.Cues) + 1,
			StartTime: rate.Duration(start),
			EndTime:   rate.Duration(end),
			Title:     title,
		})
	}

	cfg := tl.Config
	add("Intro", 0, cfg.IntroFrames)

	for i, start := range tl.SegmentStarts {
		title := fmt.Sprintf("Section %d", i+1)
		if i < len(titles) && titles[i] != "" {
			title = titles[i]
		}
		// previous transition is part of this chapter
		add(title, start-cfg.TransitionFrames, start+cfg.PerSectionFrames)
	}

	add("Outro", tl.OutroStart()-cfg.TransitionFrames, tl.TotalFrames)
	return track
}
