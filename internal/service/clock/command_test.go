package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-clock/internal/config"
)

// TestApplyOverrides layers only the provided options over the settings.
func TestApplyOverrides(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	applyOverrides(cfg, &Options{
		TimeString:   "10:00 PM",
		PollInterval: 200 * time.Millisecond,
	})

	require.Equal(t, "10:00 PM", cfg.AlarmTime)
	require.Equal(t, config.DefaultSoundFile, cfg.SoundFile)
	require.Equal(t, 200*time.Millisecond, cfg.PollInterval)
}

// TestApplyOverridesKeepsSettings leaves the settings untouched when no
// overrides are given.
func TestApplyOverridesKeepsSettings(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	applyOverrides(cfg, &Options{})

	require.Equal(t, config.Default(), cfg)
}

// TestExecutableName normalizes paths and the Windows suffix.
func TestExecutableName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "alarm-clock", executableName("/usr/local/bin/alarm-clock"))
	require.Equal(t, "alarm-clock", executableName("Alarm-Clock.EXE"))
	require.Equal(t, "alarm-clock", executableName("alarm-clock"))
}
