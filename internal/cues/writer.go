package cues

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SubRip format
type SRTWriter struct{}

// WebVTT format
type VTTWriter struct{}

// Advanced SubStation Alpha format
type ASSWriter struct {
	Title    string
	FontName string
	FontSize int
}

func NewWriter(format Format) (Writer, error) {
	switch format {
	case FormatSRT:
		return &SRTWriter{}, nil
	case FormatVTT:
		return &VTTWriter{}, nil
	case FormatASS:
		return &ASSWriter{
			Title:    "Reeltime Chapters",
			FontName: "Arial",
			FontSize: 28,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func (w *SRTWriter) Write(track *Track, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(w.Render(track)), 0644)
}

func (w *SRTWriter) Render(track *Track) string {
	var sb strings.Builder
	for i, cue := range track.Cues {
		fmt.Fprintf(&sb, "%d\n", i+1)
		// 00:00:00,000 --> 00:00:00,000
		fmt.Fprintf(&sb, "%s --> %s\n",
			formatSRTTime(cue.StartTime),
			formatSRTTime(cue.EndTime))
		sb.WriteString(cue.Title)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func (w *VTTWriter) Write(track *Track, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(w.Render(track)), 0644)
}

func (w *VTTWriter) Render(track *Track) string {
	var sb strings.Builder
	sb.WriteString("WEBVTT")
	if track.Title != "" {
		sb.WriteString(" - ")
		sb.WriteString(track.Title)
	}
	sb.WriteString("\n\n")

	for i, cue := range track.Cues {
		fmt.Fprintf(&sb, "chapter-%d\n", i+1)
		// 00:00:00.000 --> 00:00:00.000
		fmt.Fprintf(&sb, "%s --> %s\n",
			formatVTTTime(cue.StartTime),
			formatVTTTime(cue.EndTime))
		sb.WriteString(cue.Title)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func (w *ASSWriter) Write(track *Track, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(w.Render(track)), 0644)
}

func (w *ASSWriter) Render(track *Track) string {
	title := w.Title
	if track.Title != "" {
		title = track.Title
	}

	var sb strings.Builder
	sb.WriteString("[Script Info]\n")
	fmt.Fprintf(&sb, "Title: %s\n", title)
	sb.WriteString("ScriptType: v4.00+\n")
	sb.WriteString("Collisions: Normal\n")
	sb.WriteString("PlayDepth: 0\n\n")

	sb.WriteString("[V4+ Styles]\n")
	sb.WriteString("Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n")
	// top-left aligned chapter label
	fmt.Fprintf(&sb, "Style: Chapter,%s,%d,&H00FFFFFF,&H000000FF,&H00000000,&H80000000,1,0,0,0,100,100,0,0,3,1,0,7,20,20,20,1\n\n",
		w.FontName, w.FontSize)

	sb.WriteString("[Events]\n")
	sb.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")
	for _, cue := range track.Cues {
		fmt.Fprintf(&sb, "Dialogue: 0,%s,%s,Chapter,,0,0,0,,%s\n",
			formatASSTime(cue.StartTime),
			formatASSTime(cue.EndTime),
			escapeASSText(cue.Title))
	}
	return sb.String()
}

// formatTimestamp renders hh:mm:ss followed by sep and the fraction of a
// second truncated to digits places. ASS uses an unpadded hour.
func formatTimestamp(d time.Duration, sep byte, digits int, padHours bool) string {
	ms := d.Milliseconds()
	frac := ms % 1000
	for i := digits; i < 3; i++ {
		frac /= 10
	}
	hourFmt := "%d"
	if padHours {
		hourFmt = "%02d"
	}
	return fmt.Sprintf(hourFmt+":%02d:%02d%c%0*d",
		ms/3_600_000, ms/60_000%60, ms/1000%60, sep, digits, frac)
}

func formatSRTTime(d time.Duration) string { return formatTimestamp(d, ',', 3, true) }
func formatVTTTime(d time.Duration) string { return formatTimestamp(d, '.', 3, true) }
func formatASSTime(d time.Duration) string { return formatTimestamp(d, '.', 2, false) }

func escapeASSText(text string) string {
	return strings.ReplaceAll(text, "\n", "\\N")
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}

// cue format based on file extension
func GetFormatFromExtension(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vtt":
		return FormatVTT
	case ".ass", ".ssa":
		return FormatASS
	default:
		return FormatSRT
	}
}

// file extension for a format
func GetExtensionForFormat(format Format) string {
	switch format {
	case FormatVTT:
		return ".vtt"
	case FormatASS:
		return ".ass"
	default:
		return ".srt"
	}
}
