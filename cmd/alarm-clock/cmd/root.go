package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	clockservice "github.com/oshokin/alarm-clock/internal/service/clock"
	"github.com/oshokin/alarm-clock/internal/sound"
	"github.com/oshokin/alarm-clock/internal/version"
)

const (
	// exitCodeBadTime is returned when the time string matches no accepted format.
	exitCodeBadTime = 2
	// exitCodePlayback is returned when the sound could not be played.
	exitCodePlayback = 3
)

var (
	// configPath stores the path to the optional settings YAML file.
	configPath string
	// pollInterval overrides how often the wait loop checks the clock.
	pollInterval time.Duration
	// logLevel sets the minimum operational logging level.
	logLevel string

	// rootCmd represents the base command that arms a single alarm.
	rootCmd = &cobra.Command{
		Use:   "alarm-clock [time] [sound-file]",
		Short: "Wait until a time of day, then play a sound.",
		Long: `Single-shot alarm clock: waits until the given time of day and plays a sound.

The time may be given in 12-hour or 24-hour notation, for example:
  7:00 AM    07:00 AM    7:00    07:00    10:00 PM    22:00

When the time already passed today, the alarm fires tomorrow. Without
arguments the alarm is set for 7:00 AM with the sound file "alarm.aif".
Interrupting the wait (Ctrl+C) cancels the alarm cleanly.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful cancellation handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}

			opts := &clockservice.Options{
				ConfigPath:   configPath,
				PollInterval: pollInterval,
			}

			if len(args) > 0 {
				opts.TimeString = args[0]
			}

			if len(args) > 1 {
				opts.SoundFile = args[1]
			}

			return clockservice.Run(ctx, opts)
		},
	}
)

// Execute runs the alarm-clock CLI and maps the outcome to an exit code:
// 0 for completion or user cancellation, 2 for an unparseable time string,
// 3 for a playback failure.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	err := rootCmd.Execute()
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	if errors.Is(err, alarm.ErrInvalidFormat) {
		fmt.Fprintln(os.Stderr, "Accepted formats: 7:00 AM, 07:00, 10:00 PM, 22:00, etc.")
		os.Exit(exitCodeBadTime)
	}

	if errors.Is(err, sound.ErrFileNotFound) || errors.Is(err, sound.ErrNoPlaybackMethod) {
		os.Exit(exitCodePlayback)
	}

	os.Exit(1)
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to optional settings file")
	rootCmd.Flags().DurationVarP(&pollInterval, "poll-interval", "p", 0, "clock check interval (default from settings, 1s)")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "", "minimum log level (debug, info, warn, error)")
}
