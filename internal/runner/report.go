package runner

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vyshnavm345/commitgate/pkg/types"
)

const reportWidth = 72

var (
	passedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	skippedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	modifiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
)

// ComputeVerdict applies the gating invariant: Block iff any result failed
// or rewrote files. Skipped hooks never contribute to Block. An aborted
// run blocks regardless of collected results.
func ComputeVerdict(results []types.Result, aborted bool) types.Verdict {
	if aborted {
		return types.VerdictBlock
	}
	for _, result := range results {
		switch result.Outcome {
		case types.OutcomeFailed, types.OutcomeModified:
			return types.VerdictBlock
		}
	}
	return types.VerdictAllow
}

// Render writes the human-readable run report: one dot-padded line per
// hook, captured output for failing hooks, and re-stage guidance on Block.
func Render(w io.Writer, report types.Report, color bool) {
	for _, result := range report.Results {
		fmt.Fprintln(w, resultLine(result, color))

		if result.Outcome == types.OutcomeFailed || result.Outcome == types.OutcomeModified {
			renderDetail(w, result, color)
		}
	}

	if report.Aborted {
		fmt.Fprintln(w, stylize("Run interrupted.", failedStyle, color))
	}

	if report.Verdict == types.VerdictBlock {
		fmt.Fprintln(w)
		if modified := report.ModifiedPaths(); len(modified) > 0 {
			fmt.Fprintln(w, "Hooks rewrote files. Review the changes, re-stage them with")
			fmt.Fprintf(w, "'git add %s', and retry the commit.\n", strings.Join(modified, " "))
		} else {
			fmt.Fprintln(w, "Commit blocked. Fix the reported problems and retry.")
		}
	}
}

func resultLine(result types.Result, color bool) string {
	var label string
	var style lipgloss.Style

	switch result.Outcome {
	case types.OutcomePassed:
		label, style = "Passed", passedStyle
	case types.OutcomeFailed:
		label, style = "Failed", failedStyle
	case types.OutcomeSkipped:
		label, style = "Skipped", skippedStyle
	case types.OutcomeModified:
		label, style = "Files modified", modifiedStyle
	default:
		label, style = string(result.Outcome), failedStyle
	}

	pad := reportWidth - len(result.HookID) - len(label)
	if pad < 2 {
		pad = 2
	}

	return result.HookID + strings.Repeat(".", pad) + stylize(label, style, color)
}

func renderDetail(w io.Writer, result types.Result, color bool) {
	if result.Err != nil {
		fmt.Fprintln(w, stylize("- "+result.Err.Error(), faintStyle, color))
	}
	for _, path := range result.Modified {
		fmt.Fprintln(w, stylize("- rewrote "+path, faintStyle, color))
	}
	if result.Output != "" {
		for _, line := range strings.Split(result.Output, "\n") {
			fmt.Fprintln(w, "  "+line)
		}
	}
}

func stylize(s string, style lipgloss.Style, color bool) string {
	if !color {
		return s
	}
	return style.Render(s)
}
