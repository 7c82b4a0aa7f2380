package clock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/notify"
	"github.com/oshokin/alarm-clock/internal/scheduler"
	"github.com/oshokin/alarm-clock/internal/sound"
)

// Options controls a single alarm run.
type Options struct {
	// ConfigPath specifies the path to the optional settings YAML file.
	ConfigPath string
	// TimeString overrides the configured alarm time when non-empty.
	TimeString string
	// SoundFile overrides the configured sound file when non-empty.
	SoundFile string
	// PollInterval overrides the configured poll interval when positive.
	PollInterval time.Duration
}

// timestampLayout formats the resolved alarm instant for the user.
const timestampLayout = "2006-01-02 15:04:05"

// Run arms the alarm and blocks until it fires or the context is canceled.
// Cancellation before the target instant is reported as the context error;
// the trigger is not invoked in that case.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "alarm-clock")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	applyOverrides(cfg, opts)

	target, err := alarm.Parse(cfg.AlarmTime)
	if err != nil {
		return err
	}

	warnIfAlreadyRunning(ctx)

	alarmAt := scheduler.NextOccurrence(target, time.Now())

	fmt.Printf("Alarm set for: %s\n", alarmAt.Format(timestampLayout))
	fmt.Printf("Sound file: %s\n", cfg.SoundFile)
	logger.InfoKV(ctx, "Alarm armed",
		"target", target.String(),
		"fires_at", alarmAt.Format(time.RFC3339),
		"poll_interval", cfg.PollInterval.String())

	player := sound.NewPlayer()
	notifier := notify.New()

	trigger := func() error {
		fmt.Println("Alarm time reached. Playing sound...")

		if notifyErr := notifier.Notify(notify.AppName, "Alarm time reached"); notifyErr != nil {
			logger.WarnKV(ctx, "Desktop notification failed", "error", notifyErr)
		}

		return player.Play(ctx, cfg.SoundFile)
	}

	err = scheduler.WaitUntil(ctx, alarmAt, scheduler.SystemClock, cfg.PollInterval, trigger)

	switch {
	case err == nil:
		fmt.Println("Done.")
		return nil
	case errors.Is(err, context.Canceled):
		fmt.Println("\nAlarm cancelled by user.")
		return err
	default:
		fmt.Printf("Failed to play sound: %v\n", err)
		return err
	}
}

// applyOverrides layers command-line values over the loaded settings.
func applyOverrides(cfg *config.Config, opts *Options) {
	if opts.TimeString != "" {
		cfg.AlarmTime = opts.TimeString
	}

	if opts.SoundFile != "" {
		cfg.SoundFile = opts.SoundFile
	}

	if opts.PollInterval > 0 {
		cfg.PollInterval = opts.PollInterval
	}
}
