package execute

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/ThatOtherAndrew/pincher/internal/stroke"
)

// Command builds the detached shell process for a recognised gesture. The
// gesture name and similarity are passed in PINCHER_GESTURE and
// PINCHER_SIMILARITY. It returns nil for an empty command.
func Command(res stroke.Result) *exec.Cmd {
	command := res.Template.ID()
	if command == "" {
		return nil
	}

	cmd := exec.Command("sh", "-c", command)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
	cmd.Env = append(os.Environ(),
		"PINCHER_GESTURE="+command,
		fmt.Sprintf("PINCHER_SIMILARITY=%.6f", res.Similarity),
	)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd
}

// Start launches the command bound to res without waiting for it.
func Start(res stroke.Result) error {
	cmd := Command(res)
	if cmd == nil {
		return nil
	}
	return cmd.Start()
}
