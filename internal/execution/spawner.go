package execution

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"

	"qsnap/internal/domain"
)

// Spawner runs the artifact under test against one case file. The rest of
// the harness only sees Outcomes, so tests can substitute canned results.
type Spawner interface {
	Spawn(casePath string) (domain.Outcome, error)
}

// ArtifactSpawner invokes the compiled artifact with the case path as its
// only argument, capturing both streams separately.
type ArtifactSpawner struct {
	artifact string
}

// NewArtifactSpawner creates a Spawner for the artifact at the given path.
func NewArtifactSpawner(artifact string) *ArtifactSpawner {
	return &ArtifactSpawner{artifact: artifact}
}

// Spawn runs one invocation and blocks until the process exits. A nonzero
// exit status is a normal Outcome; only failures to start the process (or
// abnormal termination) are errors.
func (a *ArtifactSpawner) Spawn(casePath string) (domain.Outcome, error) {
	cmd := exec.Command(a.artifact, casePath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return domain.Outcome{}, fmt.Errorf("spawn %s %s: %w", a.artifact, casePath, err)
		}
	}

	return domain.Outcome{
		ExitStatus: cmd.ProcessState.ExitCode(),
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
	}, nil
}
