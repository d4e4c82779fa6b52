package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"qsnap/internal/domain"
	"qsnap/internal/storage"
)

// DiffViewer displays the last run's failures in an interactive TUI:
// failed cases on the left, the stored diff on the right.
type DiffViewer struct {
	storage storage.Storage
}

// NewDiffViewer creates a new DiffViewer
func NewDiffViewer(st storage.Storage) *DiffViewer {
	return &DiffViewer{storage: st}
}

// View displays run failures in an interactive TUI
func (dv *DiffViewer) View(output *domain.RunOutput) error {
	if len(output.Failures) == 0 {
		color.Green("✓ No failures in the last run!")
		return nil
	}

	// Track resolved failures (by index) - loaded from the results file
	resolved := make(map[int]bool)
	for i, f := range output.Failures {
		if f.Resolved {
			resolved[i] = true
		}
	}

	saveResolved := func() error {
		for i := range output.Failures {
			output.Failures[i].Resolved = resolved[i]
		}
		return dv.storage.SaveOutput(output)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	itemText := func(index int) string {
		f := output.Failures[index]
		if resolved[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, f.Path)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, f.Path)
	}

	for i := range output.Failures {
		list.AddItem(itemText(i), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	countUnresolved := func() int {
		count := 0
		for i := range output.Failures {
			if !resolved[i] {
				count++
			}
		}
		return count
	}

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	var saveWarning string
	updateHeader := func() {
		headerView.SetText(headerText(len(output.Failures), countUnresolved(), saveWarning))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(output.Failures) {
			return
		}
		f := output.Failures[index]
		statsView.SetText(fmt.Sprintf("[cyan]case:[white] [yellow]%s[white]\n[cyan]reason:[white] %s", f.Path, f.Reason))
		detailsView.SetText(formatFailureBody(f))
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(output.Failures) {
					resolved[index] = !resolved[index]
					list.SetItemText(index, itemText(index), "")
					saveWarning = ""
					if err := saveResolved(); err != nil {
						saveWarning = err.Error()
					}
					updateHeader()
				}
				return nil
			}
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// headerText renders the viewer header, including a warning when the
// resolved-toggle could not be persisted.
func headerText(total, unresolved int, saveWarning string) string {
	text := fmt.Sprintf(
		" Failures (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] mark resolved, Ctrl+C exit ",
		total, unresolved)
	if saveWarning != "" {
		text += fmt.Sprintf("| [red]save failed: %s[white] ", tview.Escape(saveWarning))
	}
	return text
}

// formatFailureBody renders the diff (or error detail) with tview color tags.
func formatFailureBody(f domain.CaseFailure) string {
	if f.Diff == "" {
		return fmt.Sprintf("[yellow]%s[white]", tview.Escape(f.Detail))
	}

	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(f.Diff, "\n"), "\n") {
		escaped := tview.Escape(line)
		switch {
		case strings.HasPrefix(line, "+"):
			fmt.Fprintf(&b, "[green]%s[white]\n", escaped)
		case strings.HasPrefix(line, "-"):
			fmt.Fprintf(&b, "[red]%s[white]\n", escaped)
		default:
			fmt.Fprintf(&b, "%s\n", escaped)
		}
	}
	return b.String()
}
