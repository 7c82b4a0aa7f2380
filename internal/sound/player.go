package sound

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"

	"github.com/oshokin/alarm-clock/internal/logger"
)

var (
	// ErrFileNotFound is returned when the sound path does not resolve
	// to an existing regular file.
	ErrFileNotFound = errors.New("sound file not found")
	// ErrNoPlaybackMethod is returned when every playback mechanism in
	// the chain has been tried and failed.
	ErrNoPlaybackMethod = errors.New("no available method to play sound")
)

// Mechanism is one way of getting audio out of the host.
type Mechanism interface {
	// Name identifies the mechanism in logs.
	Name() string
	// Play blocks until playback finishes or fails.
	Play(ctx context.Context, path string) error
}

// Player resolves a sound file and tries its mechanisms in order.
type Player struct {
	// mechanisms are attempted front to back; the first success wins.
	mechanisms []Mechanism
}

// NewPlayer returns a player with the default mechanism chain for this
// platform: the in-process decoder first, then the command-line players.
func NewPlayer() *Player {
	return NewPlayerWithMechanisms(defaultMechanisms()...)
}

// NewPlayerWithMechanisms returns a player with an explicit chain.
// Used by tests to substitute fakes.
func NewPlayerWithMechanisms(mechanisms ...Mechanism) *Player {
	return &Player{mechanisms: mechanisms}
}

// Play expands and checks path, then tries each mechanism until one
// succeeds. It blocks until playback completes. Mechanism failures are
// logged at debug level and do not abort the chain.
func (p *Player) Play(ctx context.Context, path string) error {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFileNotFound, path, err)
	}

	info, err := os.Stat(expanded)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	for _, mechanism := range p.mechanisms {
		err = mechanism.Play(ctx, expanded)
		if err == nil {
			logger.DebugKV(ctx, "Playback finished", "mechanism", mechanism.Name())
			return nil
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		logger.DebugKV(ctx, "Playback mechanism failed",
			"mechanism", mechanism.Name(), "error", err)
	}

	return fmt.Errorf("%w: %s", ErrNoPlaybackMethod, path)
}
