package build

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"
)

// Builder produces the artifact under test. The harness treats it as a
// blocking collaborator with no output contract beyond logging.
type Builder interface {
	Build() error
}

// CommandBuilder shells out to the toolchain build command
// ("cargo build --release" by default), streaming its output through.
type CommandBuilder struct {
	command string
}

// NewCommandBuilder creates a Builder for the given shell-out command.
func NewCommandBuilder(command string) *CommandBuilder {
	return &CommandBuilder{command: command}
}

// Build runs the build command once and blocks until it exits.
func (b *CommandBuilder) Build() error {
	parts := strings.Fields(b.command)
	if len(parts) == 0 {
		return fmt.Errorf("empty build command")
	}

	color.Cyan("Building artifact: %s", b.command)
	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("build command %q: %w", b.command, err)
	}
	return nil
}
