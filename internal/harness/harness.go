// Package harness orchestrates the sync, run and clean operations over a
// test tree. Traversal is a depth-first explicit visit: every directory
// level returns its own results and summary, and the caller merges them.
package harness

import (
	"errors"
	"fmt"

	"qsnap/internal/config"
	"qsnap/internal/discovery"
	"qsnap/internal/domain"
	"qsnap/internal/execution"
	"qsnap/internal/snapshot"
	"qsnap/internal/ui"
)

// Harness runs harness commands over a directory tree, one case at a time.
type Harness struct {
	cfg      *config.Config
	walker   *discovery.Walker
	filter   *discovery.Filter
	store    *snapshot.Store
	executor *execution.Executor
	reporter *ui.Reporter
	progress *ui.ProgressBar
}

// New creates a Harness with its collaborators.
func New(
	cfg *config.Config,
	walker *discovery.Walker,
	filter *discovery.Filter,
	store *snapshot.Store,
	executor *execution.Executor,
	reporter *ui.Reporter,
) *Harness {
	return &Harness{
		cfg:      cfg,
		walker:   walker,
		filter:   filter,
		store:    store,
		executor: executor,
		reporter: reporter,
	}
}

// SetProgress sets the progress bar updated after each executed case.
func (h *Harness) SetProgress(progress *ui.ProgressBar) {
	h.progress = progress
}

// Sync regenerates every snapshot under dir: prior snapshot state is
// removed first, then each discovered case is executed and its serialized
// result written unconditionally. A filtered sync rewrites only the
// matching cases and leaves every other snapshot untouched, so the
// tree-wide clean is skipped.
func (h *Harness) Sync(dir string) ([]domain.CaseResult, domain.Summary) {
	if h.cfg.Flags.NameFilter == "" {
		if err := h.store.Clean(dir); err != nil {
			h.reporter.TraversalError(err)
		}
	}
	return h.syncDir(dir)
}

func (h *Harness) syncDir(dir string) ([]domain.CaseResult, domain.Summary) {
	var results []domain.CaseResult
	var sum domain.Summary

	listing, err := h.walker.List(dir)
	if err != nil {
		h.reporter.TraversalError(err)
		sum.Errors++
		return results, sum
	}

	for _, sub := range listing.Subdirs {
		childResults, childSum := h.syncDir(sub)
		results = append(results, childResults...)
		sum.Add(childSum)
	}

	for _, casePath := range h.filter.FilterByName(listing.Cases, h.cfg.Flags.NameFilter) {
		res := h.syncCase(casePath)
		results = append(results, res)
		h.account(&sum, res)
	}
	return results, sum
}

func (h *Harness) syncCase(casePath string) domain.CaseResult {
	tc := domain.NewTestCase(casePath)

	serialized, bench, err := h.executor.Execute(tc.Path)
	if err != nil {
		return domain.CaseResult{Benchmark: bench, Status: domain.StatusError, Err: err}
	}
	if err := h.store.Write(h.store.PathFor(tc.Dir, tc.Name), serialized); err != nil {
		return domain.CaseResult{Benchmark: bench, Status: domain.StatusError, Err: err}
	}
	return domain.CaseResult{Benchmark: bench, Status: domain.StatusSynced}
}

// Run executes every discovered case and compares the serialized result
// with the stored snapshot. A case without a snapshot is reported as
// missing, never silently skipped or passed.
func (h *Harness) Run(dir string) ([]domain.CaseResult, domain.Summary) {
	var results []domain.CaseResult
	var sum domain.Summary

	listing, err := h.walker.List(dir)
	if err != nil {
		h.reporter.TraversalError(err)
		sum.Errors++
		return results, sum
	}

	for _, sub := range listing.Subdirs {
		childResults, childSum := h.Run(sub)
		results = append(results, childResults...)
		sum.Add(childSum)
	}

	for _, casePath := range h.filter.FilterByName(listing.Cases, h.cfg.Flags.NameFilter) {
		res := h.runCase(casePath)
		results = append(results, res)
		h.account(&sum, res)
	}
	return results, sum
}

func (h *Harness) runCase(casePath string) domain.CaseResult {
	tc := domain.NewTestCase(casePath)

	serialized, bench, err := h.executor.Execute(tc.Path)
	if err != nil {
		return domain.CaseResult{Benchmark: bench, Status: domain.StatusError, Err: err}
	}

	stored, err := h.store.Read(h.store.PathFor(tc.Dir, tc.Name))
	if errors.Is(err, snapshot.ErrNotFound) {
		return domain.CaseResult{
			Benchmark: bench,
			Status:    domain.StatusMissing,
			Err:       fmt.Errorf("no snapshot for %s, run the sync subcommand first", tc.Path),
		}
	}
	if err != nil {
		return domain.CaseResult{Benchmark: bench, Status: domain.StatusError, Err: err}
	}

	if stored != serialized {
		return domain.CaseResult{
			Benchmark: bench,
			Status:    domain.StatusFailed,
			Diff:      ui.UnifiedDiff(stored, serialized),
		}
	}
	return domain.CaseResult{Benchmark: bench, Status: domain.StatusPassed}
}

// Clean removes all snapshot state under dir. Test cases and unrelated
// files are untouched.
func (h *Harness) Clean(dir string) error {
	return h.store.Clean(dir)
}

// ListCases returns every case under dir (filter applied), children
// first, matching the order Sync and Run execute them in. Listing
// failures are collected and returned alongside whatever was found.
func (h *Harness) ListCases(dir string) ([]string, error) {
	listing, err := h.walker.List(dir)
	if err != nil {
		return nil, err
	}
	var cases []string
	var errs []error
	for _, sub := range listing.Subdirs {
		subCases, err := h.ListCases(sub)
		cases = append(cases, subCases...)
		if err != nil {
			errs = append(errs, err)
		}
	}
	cases = append(cases, h.filter.FilterByName(listing.Cases, h.cfg.Flags.NameFilter)...)
	return cases, errors.Join(errs...)
}

// CountCases returns the number of cases Sync or Run will execute.
// Listing failures are left for the walk itself to report.
func (h *Harness) CountCases(dir string) int {
	cases, _ := h.ListCases(dir)
	return len(cases)
}

func (h *Harness) account(sum *domain.Summary, res domain.CaseResult) {
	switch res.Status {
	case domain.StatusSynced:
		sum.Synced++
	case domain.StatusPassed:
		sum.Passed++
	case domain.StatusFailed:
		sum.Failed++
	case domain.StatusMissing:
		sum.Missing++
	case domain.StatusError:
		sum.Errors++
	}
	if h.progress != nil {
		h.progress.Increment(res.Status == domain.StatusSynced || res.Status == domain.StatusPassed)
	}
}
