package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/clockface/pkg/stream"
)

var streamOpts struct {
	frames int
}

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Write clock, theme and calendar events as JSON lines",
	Long: `Write one JSON object per event to stdout:

  {"type":"frame", ...}     every display.frame_interval
  {"type":"theme", ...}     at start and whenever day/night flips
  {"type":"calendar", ...}  at start and when the date changes

Events are indented when stdout is a terminal. The stream runs until
interrupted or until --frames frame events were written.`,
	Args: cobra.NoArgs,
	RunE: runStream,
}

func init() {
	rootCmd.AddCommand(streamCmd)

	streamCmd.Flags().IntVarP(&streamOpts.frames, "frames", "n", 0,
		"Stop after this many frames (0 = unlimited)")
}

func runStream(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fd := os.Stdout.Fd()
	s, err := stream.New(stream.Config{
		Out:           cmd.OutOrStdout(),
		Clock:         clockwork.NewRealClock(),
		FrameInterval: cfg.Display.FrameInterval.Duration,
		ThemeInterval: cfg.Display.ThemeInterval.Duration,
		Frames:        streamOpts.frames,
		Pretty:        isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		Logger:        logger,
	})
	if err != nil {
		return err
	}
	return s.Run(ctx)
}
