package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"qsnap/internal/domain"
)

// Reporter formats per-case results, timings and diffs for the console.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// PrintResults prints one line per case in the given order: path, pass/fail
// glyph (run only), elapsed milliseconds. A failed case gets its name and
// full line diff printed before its summary line; missing-snapshot and
// execution errors get their error message.
func (r *Reporter) PrintResults(results []domain.CaseResult, withStatus bool) {
	for _, res := range results {
		switch res.Status {
		case domain.StatusFailed:
			fmt.Fprintln(r.out, color.RedString("✕ %s", res.Path))
			r.printDiff(res.Diff)
		case domain.StatusMissing, domain.StatusError:
			fmt.Fprintln(r.out, color.RedString("✕ %v", res.Err))
		}

		if withStatus {
			fmt.Fprintf(r.out, "%-50s %s (in %dms)\n", res.Path, statusGlyph(res.Status), res.Millis)
		} else {
			fmt.Fprintf(r.out, "%-50s (in %dms)\n", res.Path, res.Millis)
		}
	}
}

// printDiff prints a unified diff with removals in red and additions in green.
func (r *Reporter) printDiff(diff string) {
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(r.out, color.GreenString("%s", line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(r.out, color.RedString("%s", line))
		default:
			fmt.Fprintln(r.out, line)
		}
	}
}

// TraversalError reports a directory that could not be listed; the walk
// continues elsewhere.
func (r *Reporter) TraversalError(err error) {
	fmt.Fprintln(r.out, color.RedString("✕ %v", err))
}

// PrintSyncSummary prints the terminal state of a sync.
func (r *Reporter) PrintSyncSummary(sum domain.Summary) {
	fmt.Fprintln(r.out)
	if sum.Errors > 0 {
		fmt.Fprintln(r.out, color.RedString("✕ synced %d snapshot(s), %d case(s) could not be executed", sum.Synced, sum.Errors))
		return
	}
	fmt.Fprintln(r.out, color.GreenString("✓ synced %d snapshot(s)", sum.Synced))
}

// PrintRunSummary prints the terminal state of a run.
func (r *Reporter) PrintRunSummary(sum domain.Summary, elapsed time.Duration) {
	fmt.Fprintln(r.out)
	if sum.Failures() == 0 {
		fmt.Fprintln(r.out, color.GreenString("✓ all %d case(s) passed (in %.2fs)", sum.Total(), elapsed.Seconds()))
		return
	}
	fmt.Fprintln(r.out, color.RedString("✕ %d of %d case(s) failed (in %.2fs)", sum.Failures(), sum.Total(), elapsed.Seconds()))
	if sum.Missing > 0 {
		fmt.Fprintln(r.out, color.YellowString("hint: %d case(s) have no snapshot, run the sync subcommand first", sum.Missing))
	}
}

// PrintCaseList prints discovered cases without executing them.
func (r *Reporter) PrintCaseList(cases []string) {
	fmt.Fprintln(r.out, color.GreenString("Found %d case(s):", len(cases)))
	for i, c := range cases {
		if i == len(cases)-1 {
			fmt.Fprintln(r.out, color.CyanString("└── %s", c))
		} else {
			fmt.Fprintln(r.out, color.CyanString("├── %s", c))
		}
	}
}

// statusGlyph returns the pass/fail symbol for a case status.
func statusGlyph(status domain.CaseStatus) string {
	if status == domain.StatusPassed || status == domain.StatusSynced {
		return color.GreenString("✓")
	}
	return color.RedString("✕")
}
