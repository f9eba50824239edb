package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mgpai22/reeltime/internal/cues"
	"github.com/spf13/cobra"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters",
	Short: "Export the timeline as a chapter track",
	Long: `Write one cue per intro, section and outro so the plan can be previewed
in a player or muxed into the rendered video.

The format follows the output extension unless --format is given.

Examples:
  reeltime chapters -c plan.yaml -o chapters.vtt
  reeltime chapters --sections 3 -o chapters.srt
  reeltime chapters -t Headlines,Tools -f ass -o out/chapters`,
	Args: cobra.NoArgs,
	RunE: runChapters,
}

func init() {
	rootCmd.AddCommand(chaptersCmd)

	chaptersCmd.Flags().StringP("output", "o", "", "Output file path (required)")
	chaptersCmd.Flags().StringP("format", "f", "", "Cue format (srt, vtt, ass)")
	chaptersCmd.Flags().String("title", "", "Track title")
	_ = chaptersCmd.MarkFlagRequired("output")
}

func runChapters(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	formatStr, _ := cmd.Flags().GetString("format")
	title, _ := cmd.Flags().GetString("title")

	var format cues.Format
	switch strings.ToLower(formatStr) {
	case "":
		format = cues.GetFormatFromExtension(outputPath)
	case "srt":
		format = cues.FormatSRT
	case "vtt":
		format = cues.FormatVTT
	case "ass":
		format = cues.FormatASS
	default:
		return fmt.Errorf("unsupported format %q: use srt, vtt, or ass", formatStr)
	}

	if filepath.Ext(outputPath) == "" {
		outputPath += cues.GetExtensionForFormat(format)
	}

	plan, err := resolvePlan(cmd)
	if err != nil {
		return err
	}

	tl, err := plan.Timeline()
	if err != nil {
		return fmt.Errorf("failed to compute timeline: %w", err)
	}

	track := cues.FromTimeline(tl, plan.Sections, plan.FrameRate())
	track.Title = title

	writer, err := cues.NewWriter(format)
	if err != nil {
		return fmt.Errorf("failed to create cue writer: %w", err)
	}
	if err := writer.Write(track, outputPath); err != nil {
		return fmt.Errorf("failed to write chapters: %w", err)
	}

	logger.Infow("Wrote chapter track",
		"output", outputPath,
		"format", string(format),
		"cues", len(track.Cues),
	)

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Chapters written: %s\n", absOutput)
	fmt.Fprintf(cmd.OutOrStdout(), "  Cues: %d\n", len(track.Cues))
	return nil
}
