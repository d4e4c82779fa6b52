package domain

// CaseStatus is the per-case outcome of a harness command.
type CaseStatus int

const (
	// StatusSynced means a snapshot was (re)written for the case.
	StatusSynced CaseStatus = iota
	// StatusPassed means the fresh result matched the stored snapshot.
	StatusPassed
	// StatusFailed means the fresh result differed from the stored snapshot.
	StatusFailed
	// StatusMissing means no snapshot exists for the case.
	StatusMissing
	// StatusError means the case could not be executed or stored.
	StatusError
)

// Benchmark records wall-clock timing for one case execution.
type Benchmark struct {
	Path   string // Case path, slash-separated for display
	Millis int64  // Elapsed milliseconds, rounded to nearest
}

// CaseResult is the outcome of one test case under sync or run.
type CaseResult struct {
	Benchmark
	Status CaseStatus
	Diff   string // Line diff against the snapshot, set on StatusFailed
	Err    error  // Set on StatusMissing and StatusError
}

// Summary counts case outcomes for one directory subtree.
type Summary struct {
	Synced  int
	Passed  int
	Failed  int
	Missing int
	Errors  int
}

// Add merges a child subtree's summary into s.
func (s *Summary) Add(other Summary) {
	s.Synced += other.Synced
	s.Passed += other.Passed
	s.Failed += other.Failed
	s.Missing += other.Missing
	s.Errors += other.Errors
}

// Total returns the number of cases the summary covers.
func (s Summary) Total() int {
	return s.Synced + s.Passed + s.Failed + s.Missing + s.Errors
}

// Failures returns the number of cases that should fail the run.
func (s Summary) Failures() int {
	return s.Failed + s.Missing + s.Errors
}
