package harness

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"qsnap/internal/config"
	"qsnap/internal/discovery"
	"qsnap/internal/domain"
	"qsnap/internal/execution"
	"qsnap/internal/snapshot"
	"qsnap/internal/ui"
)

// fakeSpawner returns canned outcomes keyed by case base name, so harness
// behavior can be tested without a compiled artifact.
type fakeSpawner struct {
	outcomes map[string]domain.Outcome
}

func (f *fakeSpawner) Spawn(casePath string) (domain.Outcome, error) {
	if o, ok := f.outcomes[filepath.Base(casePath)]; ok {
		return o, nil
	}
	return domain.Outcome{ExitStatus: 127, Stderr: "unknown case\n"}, nil
}

func newTestHarness(spawner execution.Spawner) (*Harness, *bytes.Buffer) {
	cfg := &config.Config{}
	walker := discovery.NewWalker(config.CaseExtension, config.ResultsDirName)
	store := snapshot.NewStore(walker, config.ResultsDirName, config.SnapshotExtension)
	var out bytes.Buffer
	reporter := ui.NewReporter(&out)
	h := New(cfg, walker, discovery.NewFilter(), store, execution.NewExecutor(spawner), reporter)
	return h, &out
}

// writeTree creates tests/a.قتام, tests/sub/b.قتام and tests/sub/deep/c.قتام
// under a temp dir and returns the tree root.
func writeTree(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "tests")

	files := []string{
		"a.قتام",
		"sub/b.قتام",
		"sub/deep/c.قتام",
	}
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("code"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	// A file the walker must ignore.
	if err := os.WriteFile(filepath.Join(root, "README.md"), []byte("docs"), 0644); err != nil {
		t.Fatal(err)
	}
	return root
}

func defaultOutcomes() map[string]domain.Outcome {
	return map[string]domain.Outcome{
		"a.قتام": {ExitStatus: 0, Stdout: "hi\n"},
		"b.قتام": {ExitStatus: 1, Stderr: "oops\n"},
		"c.قتام": {ExitStatus: 0, Stdout: "deep\n"},
	}
}

func TestHarness_SyncThenRunPasses(t *testing.T) {
	root := writeTree(t)
	h, _ := newTestHarness(&fakeSpawner{outcomes: defaultOutcomes()})

	_, syncSum := h.Sync(root)
	if syncSum.Synced != 3 {
		t.Fatalf("expected 3 synced cases, got %+v", syncSum)
	}

	// Snapshots land in the reserved container next to each case.
	for _, snap := range []string{
		filepath.Join(root, "النتائج", "a.قتام.txt"),
		filepath.Join(root, "sub", "النتائج", "b.قتام.txt"),
		filepath.Join(root, "sub", "deep", "النتائج", "c.قتام.txt"),
	} {
		if _, err := os.Stat(snap); err != nil {
			t.Errorf("expected snapshot %s: %v", snap, err)
		}
	}

	results, runSum := h.Run(root)
	if runSum.Passed != 3 || runSum.Failures() != 0 {
		t.Fatalf("expected 3 passes after sync, got %+v", runSum)
	}
	for _, res := range results {
		if res.Status != domain.StatusPassed {
			t.Errorf("case %s: expected pass, got status %v (%v)", res.Path, res.Status, res.Err)
		}
	}
}

func TestHarness_RunReportsMismatchWithDiff(t *testing.T) {
	root := writeTree(t)
	outcomes := defaultOutcomes()
	h, _ := newTestHarness(&fakeSpawner{outcomes: outcomes})
	h.Sync(root)

	// The artifact's behavior changes for one case only.
	outcomes["a.قتام"] = domain.Outcome{ExitStatus: 0, Stdout: "bye\n"}

	results, sum := h.Run(root)
	if sum.Failed != 1 || sum.Passed != 2 {
		t.Fatalf("expected 1 failure and 2 passes, got %+v", sum)
	}

	var failed domain.CaseResult
	for _, res := range results {
		if res.Status == domain.StatusFailed {
			failed = res
		}
	}
	if filepath.Base(failed.Path) != "a.قتام" {
		t.Fatalf("wrong case failed: %q", failed.Path)
	}
	if !strings.Contains(failed.Diff, "-hi") || !strings.Contains(failed.Diff, "+bye") {
		t.Errorf("diff does not show the change:\n%s", failed.Diff)
	}
}

func TestHarness_RunWithoutSnapshotsReportsMissing(t *testing.T) {
	root := writeTree(t)
	h, _ := newTestHarness(&fakeSpawner{outcomes: defaultOutcomes()})
	h.Sync(root)

	if err := h.Clean(root); err != nil {
		t.Fatalf("clean failed: %v", err)
	}

	results, sum := h.Run(root)
	if sum.Missing != 3 {
		t.Fatalf("expected every case to be missing, got %+v", sum)
	}
	for _, res := range results {
		if res.Status != domain.StatusMissing {
			t.Errorf("case %s: expected missing status, got %v", res.Path, res.Status)
		}
		if res.Err == nil || !strings.Contains(res.Err.Error(), "sync") {
			t.Errorf("case %s: missing-snapshot error should point at sync, got %v", res.Path, res.Err)
		}
	}
}

func TestHarness_SyncReplacesStaleSnapshots(t *testing.T) {
	root := writeTree(t)
	outcomes := defaultOutcomes()
	h, _ := newTestHarness(&fakeSpawner{outcomes: outcomes})
	h.Sync(root)

	outcomes["a.قتام"] = domain.Outcome{ExitStatus: 2, Stderr: "new behavior\n"}
	h.Sync(root)

	_, sum := h.Run(root)
	if sum.Failures() != 0 {
		t.Errorf("run after re-sync should pass everywhere, got %+v", sum)
	}
}

func TestHarness_ResultOrderIsChildrenFirst(t *testing.T) {
	root := writeTree(t)
	h, _ := newTestHarness(&fakeSpawner{outcomes: defaultOutcomes()})

	results, _ := h.Sync(root)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	// Deepest directory first, tree root last.
	if filepath.Base(results[0].Path) != "c.قتام" || filepath.Base(results[2].Path) != "a.قتام" {
		t.Errorf("unexpected result order: %v", []string{results[0].Path, results[1].Path, results[2].Path})
	}
}

func TestHarness_NameFilter(t *testing.T) {
	root := writeTree(t)
	h, _ := newTestHarness(&fakeSpawner{outcomes: defaultOutcomes()})
	h.cfg.Flags.NameFilter = "a*"

	results, sum := h.Sync(root)
	if len(results) != 1 || sum.Synced != 1 {
		t.Fatalf("expected only the filtered case, got %+v", sum)
	}
	if filepath.Base(results[0].Path) != "a.قتام" {
		t.Errorf("wrong case synced: %q", results[0].Path)
	}
}

func TestHarness_FilteredSyncKeepsUnrelatedSnapshots(t *testing.T) {
	root := writeTree(t)
	h, _ := newTestHarness(&fakeSpawner{outcomes: defaultOutcomes()})
	h.Sync(root)

	h.cfg.Flags.NameFilter = "a*"
	_, sum := h.Sync(root)
	if sum.Synced != 1 {
		t.Fatalf("expected only the filtered case to be synced, got %+v", sum)
	}

	// Snapshots the filter excluded must survive the filtered sync.
	for _, snap := range []string{
		filepath.Join(root, "sub", "النتائج", "b.قتام.txt"),
		filepath.Join(root, "sub", "deep", "النتائج", "c.قتام.txt"),
	} {
		if _, err := os.Stat(snap); err != nil {
			t.Errorf("filtered sync removed unrelated snapshot %s: %v", snap, err)
		}
	}

	h.cfg.Flags.NameFilter = ""
	_, runSum := h.Run(root)
	if runSum.Failures() != 0 {
		t.Errorf("full run after filtered sync should pass everywhere, got %+v", runSum)
	}
}

func TestHarness_ListCasesReturnsTraversalError(t *testing.T) {
	h, _ := newTestHarness(&fakeSpawner{outcomes: defaultOutcomes()})

	cases, err := h.ListCases(filepath.Join(t.TempDir(), "gone"))
	if err == nil {
		t.Fatal("expected listing error for missing directory")
	}
	if len(cases) != 0 {
		t.Errorf("expected no cases, got %v", cases)
	}
}

func TestHarness_MissingDirectoryIsReportedNotFatal(t *testing.T) {
	h, out := newTestHarness(&fakeSpawner{outcomes: defaultOutcomes()})

	results, sum := h.Run(filepath.Join(t.TempDir(), "gone"))
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
	if sum.Errors != 1 {
		t.Errorf("expected the traversal error to be counted, got %+v", sum)
	}
	if out.Len() == 0 {
		t.Error("expected the traversal error to be printed")
	}
}

func TestHarness_CountCases(t *testing.T) {
	root := writeTree(t)
	h, _ := newTestHarness(&fakeSpawner{outcomes: defaultOutcomes()})

	if got := h.CountCases(root); got != 3 {
		t.Errorf("expected 3 cases, got %d", got)
	}

	// Snapshots must not change the count.
	h.Sync(root)
	if got := h.CountCases(root); got != 3 {
		t.Errorf("expected 3 cases after sync, got %d", got)
	}

	cases, err := h.ListCases(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cases) != 3 {
		t.Errorf("expected 3 listed cases, got %v", cases)
	}
}
