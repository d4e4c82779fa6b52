package domain

// RunMeta contains metadata about a run invocation.
type RunMeta struct {
	TotalCases       int     `json:"total_cases"`
	Passed           int     `json:"passed"`
	Failed           int     `json:"failed"`
	MissingSnapshots int     `json:"missing_snapshots"`
	ExecutionErrors  int     `json:"execution_errors"`
	Duration         string  `json:"duration"`
	DurationSeconds  float64 `json:"duration_seconds"`
	Timestamp        string  `json:"timestamp"`
}

// CaseFailure is one failed case as persisted for the viewer.
type CaseFailure struct {
	Path     string `json:"path"`
	Reason   string `json:"reason"` // "mismatch", "missing snapshot" or "execution error"
	Diff     string `json:"diff,omitempty"`
	Detail   string `json:"detail,omitempty"`
	Resolved bool   `json:"resolved,omitempty"` // Track if the failure is marked as resolved
}

// RunOutput is the complete persisted output of a run.
type RunOutput struct {
	Meta     RunMeta       `json:"meta"`
	Failures []CaseFailure `json:"failures"`
}
