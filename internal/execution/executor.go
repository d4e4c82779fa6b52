package execution

import (
	"path/filepath"
	"time"

	"qsnap/internal/domain"
	"qsnap/internal/snapshot"
)

// Executor runs a single test case and serializes what it observes.
// One external process per call, no retries, no shared state across calls.
type Executor struct {
	spawner Spawner
}

// NewExecutor creates an Executor over the given Spawner.
func NewExecutor(spawner Spawner) *Executor {
	return &Executor{spawner: spawner}
}

// Execute invokes the artifact for casePath and returns the serialized
// result plus a Benchmark. Only the invocation itself is timed;
// serialization and I/O stay outside the measurement.
func (e *Executor) Execute(casePath string) (string, domain.Benchmark, error) {
	start := time.Now()
	outcome, err := e.spawner.Spawn(casePath)
	elapsed := time.Since(start)

	bench := domain.Benchmark{
		Path:   filepath.ToSlash(casePath),
		Millis: elapsed.Round(time.Millisecond).Milliseconds(),
	}
	if err != nil {
		return "", bench, err
	}
	return snapshot.Serialize(outcome), bench, nil
}
