package sound

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// errUnsupportedContainer makes the beep mechanism fall through to the
// command-line players for formats it cannot decode.
var errUnsupportedContainer = errors.New("unsupported audio container")

// speakerBufferLength sizes the speaker buffer; a tenth of a second is
// enough to avoid underruns for alarm-length sounds.
const speakerBufferLength = 100 * time.Millisecond

// beepMechanism decodes the file in-process and plays it through the
// default audio device. Only containers with a beep decoder are handled;
// anything else (notably AIFF) falls through to the command-line players.
type beepMechanism struct {
	// initOnce guards speaker initialization, which must happen once
	// per process.
	initOnce sync.Once
	// initErr remembers a failed initialization for later attempts.
	initErr error
}

// newBeepMechanism returns the in-process decoder mechanism.
func newBeepMechanism() *beepMechanism {
	return &beepMechanism{}
}

// Name identifies the mechanism in logs.
func (m *beepMechanism) Name() string {
	return "beep"
}

// Play decodes the file by extension and blocks until the stream drains
// or the context is canceled.
func (m *beepMechanism) Play(ctx context.Context, path string) error {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("open sound file: %w", err)
	}
	defer file.Close()

	streamer, format, err := decode(file, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return err
	}
	defer streamer.Close()

	m.initOnce.Do(func() {
		m.initErr = speaker.Init(format.SampleRate, format.SampleRate.N(speakerBufferLength))
	})

	if m.initErr != nil {
		return fmt.Errorf("initialize speaker: %w", m.initErr)
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(streamer, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	case <-done:
		return nil
	}
}

// decode picks a beep decoder by file extension.
func decode(file *os.File, extension string) (beep.StreamSeekCloser, beep.Format, error) {
	switch extension {
	case ".wav":
		return wav.Decode(file)
	case ".mp3":
		return mp3.Decode(file)
	case ".flac":
		return flac.Decode(file)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %s", errUnsupportedContainer, extension)
	}
}
