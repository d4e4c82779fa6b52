package ui

import (
	"strings"
	"testing"

	"qsnap/internal/domain"
)

func TestHeaderText(t *testing.T) {
	t.Run("counts and key hints", func(t *testing.T) {
		text := headerText(4, 2, "")
		if !strings.Contains(text, "4 total, 2 unresolved") {
			t.Errorf("counts missing: %q", text)
		}
		if strings.Contains(text, "save failed") {
			t.Errorf("warning shown without a failure: %q", text)
		}
	})

	t.Run("save failure is surfaced", func(t *testing.T) {
		text := headerText(1, 1, "write results: disk full")
		if !strings.Contains(text, "save failed: write results: disk full") {
			t.Errorf("save failure not surfaced: %q", text)
		}
	})
}

func TestFormatFailureBody(t *testing.T) {
	t.Run("diff lines are color tagged", func(t *testing.T) {
		body := formatFailureBody(domain.CaseFailure{
			Path:   "tests/a.قتام",
			Reason: "mismatch",
			Diff:   "--- snapshot\n+++ current\n-hi\n+bye\n",
		})
		if !strings.Contains(body, "[red]-hi[white]") || !strings.Contains(body, "[green]+bye[white]") {
			t.Errorf("diff lines not tagged:\n%s", body)
		}
	})

	t.Run("detail shown when no diff exists", func(t *testing.T) {
		body := formatFailureBody(domain.CaseFailure{
			Path:   "tests/c.قتام",
			Reason: "missing snapshot",
			Detail: "no snapshot for tests/c.قتام, run the sync subcommand first",
		})
		if !strings.Contains(body, "run the sync subcommand first") {
			t.Errorf("detail missing:\n%s", body)
		}
	})
}
