package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mgpai22/reeltime/internal/config"
	"github.com/mgpai22/reeltime/internal/timeline"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the frame timeline for a video",
	Long: `Compute the total length of the video and the start frame of every section.

Durations come from the plan file (--config) when given, otherwise from the
newsletter defaults (90 frame intro and outro, 150 frame sections,
30 frame transitions at 30fps). Individual flags override both.

Examples:
  reeltime plan --sections 4
  reeltime plan -c plan.yaml --json
  reeltime plan --intro 2s --transition 15 -t Headlines,Tools,Links`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().Bool("json", false, "Emit JSON instead of a table")
	planCmd.Flags().Bool("segments", false, "List every span, including transitions")
}

// resolvePlan layers the plan file (or defaults), $REELTIME_FPS and
// command-line flags, then validates the result.
func resolvePlan(cmd *cobra.Command) (*config.Plan, error) {
	plan := config.DefaultPlan()

	flags := cmd.Flags()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Read(path)
		if err != nil {
			return nil, err
		}
		plan = loaded
		logger.Debugw("Loaded plan file", "path", path)
	}
	if err := plan.ApplyEnvOverrides(); err != nil {
		return nil, err
	}

	if flags.Changed("fps") {
		plan.FPS, _ = flags.GetInt("fps")
	}

	lengths := []struct {
		name string
		dst  *config.Length
	}{
		{"intro", &plan.Intro},
		{"per-section", &plan.PerSection},
		{"transition", &plan.Transition},
		{"outro", &plan.Outro},
	}
	for _, f := range lengths {
		if !flags.Changed(f.name) {
			continue
		}
		raw, _ := flags.GetString(f.name)
		l, err := timeline.ParseLength(raw)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", f.name, err)
		}
		f.dst.Length = l
	}

	if flags.Changed("titles") {
		plan.Sections, _ = flags.GetStringSlice("titles")
		plan.SectionCount = nil
	}
	if flags.Changed("sections") {
		raw, _ := flags.GetString("sections")
		n, err := timeline.ParseSectionCount(raw)
		if err != nil {
			return nil, fmt.Errorf("--sections: %w", err)
		}
		count := config.SectionCount(n)
		plan.SectionCount = &count
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

func runPlan(cmd *cobra.Command, args []string) error {
	plan, err := resolvePlan(cmd)
	if err != nil {
		return err
	}

	tl, err := plan.Timeline()
	if err != nil {
		return fmt.Errorf("failed to compute timeline: %w", err)
	}

	logger.Infow("Computed timeline",
		"sections", tl.SectionCount,
		"total_frames", tl.TotalFrames,
		"fps", plan.FPS,
	)

	asJSON, _ := cmd.Flags().GetBool("json")
	withSegments, _ := cmd.Flags().GetBool("segments")

	out := cmd.OutOrStdout()
	if asJSON {
		return writePlanJSON(out, plan, tl, withSegments)
	}
	writePlanText(out, plan, tl, withSegments)
	return nil
}

type segmentJSON struct {
	Kind   string `json:"kind"`
	Index  int    `json:"index"`
	Start  int    `json:"start"`
	Frames int    `json:"frames"`
}

type planJSON struct {
	FPS           int           `json:"fps"`
	SectionCount  int           `json:"sectionCount"`
	TotalFrames   int           `json:"totalFrames"`
	DurationMs    int64         `json:"durationMs"`
	SegmentStarts []int         `json:"segmentStarts"`
	OutroStart    int           `json:"outroStart"`
	Segments      []segmentJSON `json:"segments,omitempty"`
}

func writePlanJSON(w io.Writer, plan *config.Plan, tl *timeline.Timeline, withSegments bool) error {
	doc := planJSON{
		FPS:           plan.FPS,
		SectionCount:  tl.SectionCount,
		TotalFrames:   tl.TotalFrames,
		DurationMs:    plan.FrameRate().Duration(tl.TotalFrames).Milliseconds(),
		SegmentStarts: tl.SegmentStarts,
		OutroStart:    tl.OutroStart(),
	}
	if withSegments {
		for _, s := range tl.Segments() {
			doc.Segments = append(doc.Segments, segmentJSON{
				Kind:   string(s.Kind),
				Index:  s.Index,
				Start:  s.Start,
				Frames: s.Frames,
			})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func writePlanText(w io.Writer, plan *config.Plan, tl *timeline.Timeline, withSegments bool) {
	rate := plan.FrameRate()

	fmt.Fprintf(w, "Total: %d frames (%s at %dfps)\n", tl.TotalFrames, rate.Duration(tl.TotalFrames), plan.FPS)
	fmt.Fprintf(w, "Sections: %d\n", tl.SectionCount)

	for i, start := range tl.SegmentStarts {
		title := fmt.Sprintf("Section %d", i+1)
		if i < len(plan.Sections) && plan.Sections[i] != "" {
			title = plan.Sections[i]
		}
		fmt.Fprintf(w, "  %-24s frame %6d  %s\n", title, start, rate.Duration(start))
	}
	fmt.Fprintf(w, "  %-24s frame %6d  %s\n", "Outro", tl.OutroStart(), rate.Duration(tl.OutroStart()))

	if !withSegments {
		return
	}
	fmt.Fprintln(w, "Segments:")
	for _, s := range tl.Segments() {
		fmt.Fprintf(w, "  %-10s %3d  %6d..%-6d\n", s.Kind, s.Index, s.Start, s.End())
	}
}
