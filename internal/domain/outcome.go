package domain

// Outcome captures a single invocation of the artifact under test.
// It is never persisted directly; the snapshot serializer turns it into
// the canonical text form first.
type Outcome struct {
	ExitStatus int    // Process exit status
	Stdout     string // Captured standard output, verbatim
	Stderr     string // Captured standard error, verbatim
}
