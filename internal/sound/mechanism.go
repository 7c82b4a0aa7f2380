package sound

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"
)

// defaultMechanisms builds the fallback chain for the current platform.
// The in-process decoder goes first, mirroring the preference for a
// library player over shelling out; the command-line players follow in
// a fixed order.
func defaultMechanisms() []Mechanism {
	mechanisms := []Mechanism{newBeepMechanism()}

	switch runtime.GOOS {
	case "darwin":
		mechanisms = append(mechanisms,
			&commandMechanism{command: "afplay"},
		)
	case "linux":
		mechanisms = append(mechanisms,
			&commandMechanism{command: "paplay"},
			&commandMechanism{command: "aplay"},
			&commandMechanism{command: "ffplay", args: []string{"-nodisp", "-autoexit"}},
		)
	case "windows":
		mechanisms = append(mechanisms, &powershellMechanism{})
	}

	return mechanisms
}

// commandMechanism plays a file by running an external player and
// waiting for it to exit.
type commandMechanism struct {
	// command is the player executable looked up on PATH.
	command string
	// args are passed before the file path.
	args []string
}

// Name returns the player executable name.
func (m *commandMechanism) Name() string {
	return m.command
}

// Play runs the player with the file path appended, discarding its output.
func (m *commandMechanism) Play(ctx context.Context, path string) error {
	args := make([]string, 0, len(m.args)+1)
	args = append(args, m.args...)
	args = append(args, path)

	cmd := exec.CommandContext(ctx, m.command, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	return cmd.Run()
}

// powershellMechanism plays a file through Windows Media.SoundPlayer,
// which blocks until playback completes via PlaySync.
type powershellMechanism struct{}

// Name identifies the mechanism in logs.
func (m *powershellMechanism) Name() string {
	return "powershell"
}

// Play invokes PowerShell with an inline PlaySync script.
func (m *powershellMechanism) Play(ctx context.Context, path string) error {
	script := fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync();", path)

	cmd := exec.CommandContext(ctx, "powershell", "-Command", script)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	return cmd.Run()
}
