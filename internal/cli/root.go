package cli

import (
	"github.com/mgpai22/reeltime/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	logger  = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "reeltime",
	Short: "Frame timing planner for newsletter-style videos",
	Long: `Reeltime plans the frame layout of a video made of an intro,
a list of content sections separated by transitions, and an outro.

It prints the total frame count and the frame at which each section starts,
and can export the plan as a chapter track (SRT, VTT or ASS).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	addPlanFlags(rootCmd.PersistentFlags())
}

// flags shared by every command that resolves a plan
func addPlanFlags(fs *pflag.FlagSet) {
	fs.StringP("config", "c", "", "YAML plan file")
	fs.Int("fps", 0, "Frames per second (default 30, or $REELTIME_FPS)")
	fs.String("intro", "", "Intro length in frames, or a duration such as 3s")
	fs.String("per-section", "", "Length of each section in frames, or a duration")
	fs.String("transition", "", "Transition length in frames, or a duration")
	fs.String("outro", "", "Outro length in frames, or a duration")
	fs.StringP("sections", "n", "", "Number of content sections")
	fs.StringSliceP("titles", "t", nil, "Section titles (sets the section count when --sections is absent)")
}
