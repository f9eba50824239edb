package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mgpai22/reeltime/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_SectionsList(t *testing.T) {
	t.Setenv("REELTIME_FPS", "")
	path := writePlan(t, `
fps: 30
intro: 90
per_section: 150
transition: 30
outro: 90
sections: ["Headlines", "Deep dive", "Tools", "Links"]
`)

	plan, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, plan.Count())

	tl, err := plan.Timeline()
	require.NoError(t, err)
	assert.Equal(t, 930, tl.TotalFrames)
	assert.Equal(t, []int{120, 300, 480, 660}, tl.SegmentStarts)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("REELTIME_FPS", "")
	plan, err := Load(writePlan(t, "section_count: 0\n"))
	require.NoError(t, err)

	assert.Equal(t, 30, plan.FPS)
	tl, err := plan.Timeline()
	require.NoError(t, err)
	assert.Equal(t, 210, tl.TotalFrames)
	assert.Empty(t, tl.SegmentStarts)
}

func TestLoad_SectionCount(t *testing.T) {
	t.Setenv("REELTIME_FPS", "")

	t.Run("integer", func(t *testing.T) {
		plan, err := Load(writePlan(t, "section_count: 3\n"))
		require.NoError(t, err)
		assert.Equal(t, 3, plan.Count())
	})

	t.Run("fractional rejected", func(t *testing.T) {
		_, err := Load(writePlan(t, "section_count: 2.5\n"))
		assert.ErrorIs(t, err, timeline.ErrInvalidArgument)
	})

	t.Run("non-numeric rejected", func(t *testing.T) {
		_, err := Load(writePlan(t, "section_count: many\n"))
		assert.ErrorIs(t, err, timeline.ErrInvalidArgument)
	})

	t.Run("negative rejected", func(t *testing.T) {
		_, err := Load(writePlan(t, "section_count: -1\n"))
		assert.ErrorIs(t, err, timeline.ErrInvalidArgument)
	})

	t.Run("must agree with sections", func(t *testing.T) {
		_, err := Load(writePlan(t, "section_count: 3\nsections: [a, b]\n"))
		assert.ErrorIs(t, err, timeline.ErrInvalidArgument)
	})
}

func TestLoad_NegativeDuration(t *testing.T) {
	t.Setenv("REELTIME_FPS", "")
	_, err := Load(writePlan(t, "intro: -5\n"))
	assert.ErrorIs(t, err, timeline.ErrInvalidArgument)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Run("REELTIME_FPS replaces file value", func(t *testing.T) {
		t.Setenv("REELTIME_FPS", "60")
		plan, err := Load(writePlan(t, "fps: 30\n"))
		require.NoError(t, err)
		assert.Equal(t, 60, plan.FPS)
	})

	t.Run("REELTIME_FPS must be an integer", func(t *testing.T) {
		t.Setenv("REELTIME_FPS", "29.97")
		_, err := Load(writePlan(t, "fps: 30\n"))
		assert.ErrorIs(t, err, timeline.ErrInvalidArgument)
	})

	t.Run("zero fps rejected", func(t *testing.T) {
		t.Setenv("REELTIME_FPS", "0")
		_, err := Load(writePlan(t, "fps: 30\n"))
		assert.ErrorIs(t, err, timeline.ErrInvalidArgument)
	})
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_DurationLengths(t *testing.T) {
	t.Setenv("REELTIME_FPS", "")
	plan, err := Load(writePlan(t, `
fps: 24
intro: 3s
per_section: 1m30s
transition: 12
outro: 1.5s
section_count: 1
`))
	require.NoError(t, err)

	timing := plan.Timing()
	assert.Equal(t, 72, timing.IntroFrames)
	assert.Equal(t, 2160, timing.PerSectionFrames)
	assert.Equal(t, 12, timing.TransitionFrames)
	assert.Equal(t, 36, timing.OutroFrames)
}

func TestLoad_DurationFollowsEnvFPS(t *testing.T) {
	t.Setenv("REELTIME_FPS", "60")
	plan, err := Load(writePlan(t, "fps: 30\nintro: 2s\n"))
	require.NoError(t, err)
	assert.Equal(t, 120, plan.Timing().IntroFrames)
}

func TestLoad_InvalidLength(t *testing.T) {
	t.Setenv("REELTIME_FPS", "")

	_, err := Load(writePlan(t, "intro: soon\n"))
	assert.ErrorIs(t, err, timeline.ErrInvalidArgument)

	_, err = Load(writePlan(t, "outro: -1s\n"))
	assert.ErrorIs(t, err, timeline.ErrInvalidArgument)

	_, err = Load(writePlan(t, "intro: [1, 2]\n"))
	assert.ErrorIs(t, err, timeline.ErrInvalidArgument)
}

func TestRead_DefersValidation(t *testing.T) {
	t.Setenv("REELTIME_FPS", "")
	path := writePlan(t, "intro: -5\n")

	plan, err := Read(path)
	require.NoError(t, err)
	assert.ErrorIs(t, plan.Validate(), timeline.ErrInvalidArgument)

	plan.Intro = Frames(10)
	assert.NoError(t, plan.Validate())
}

func TestApplyEnvOverrides_DefaultPlan(t *testing.T) {
	t.Setenv("REELTIME_FPS", "50")
	plan := DefaultPlan()
	require.NoError(t, plan.ApplyEnvOverrides())
	assert.Equal(t, 50, plan.FPS)
}

func TestPlanTimeline_SectionLimit(t *testing.T) {
	plan := DefaultPlan()
	plan.Sections = make([]string, timeline.MaxSections+1)
	_, err := plan.Timeline()
	assert.ErrorIs(t, err, timeline.ErrInvalidArgument)
}
