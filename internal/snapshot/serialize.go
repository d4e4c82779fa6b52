package snapshot

import (
	"fmt"

	"qsnap/internal/domain"
)

// Serialize renders an execution outcome as the canonical snapshot text:
// the exit status followed by the two streams, each in its own labeled
// section, in fixed order. The stream labels carry the section's byte
// length so the encoding stays unambiguous when a stream itself contains
// a label line.
func Serialize(o domain.Outcome) string {
	return fmt.Sprintf("returncode: %d\nstdout(%d):\n%sstderr(%d):\n%s",
		o.ExitStatus, len(o.Stdout), o.Stdout, len(o.Stderr), o.Stderr)
}
