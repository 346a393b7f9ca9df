package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"passwordCheckerBackend/internal/core/domain"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	secretStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

func strengthStyle(level domain.StrengthLevel) lipgloss.Style {
	switch level {
	case domain.StrengthVeryStrong, domain.StrengthStrong:
		return okStyle
	case domain.StrengthModerate:
		return warnStyle
	default:
		return dangerStyle
	}
}

// renderReport prints one analysis in the layout of the interactive tool:
// headline numbers, class checklist, warnings, then verbose extras.
func renderReport(w io.Writer, r domain.Report, verbose bool) {
	fmt.Fprintln(w, titleStyle.Render("Password Analysis"))
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "Strength:    %s (%d/100)\n",
		strengthStyle(r.Strength).Render(r.Strength.DisplayName()), r.Score)
	fmt.Fprintf(w, "Length:      %d characters\n", r.Length)
	fmt.Fprintf(w, "Entropy:     %.2f bits\n", r.EntropyBits)
	fmt.Fprintf(w, "Crack Time:  %s\n", r.CrackTime)

	fmt.Fprintf(w, "Char Types:  %d/4 %s %s %s %s\n",
		r.CharVariety,
		classMark(r.Classes.Lowercase, "a-z"),
		classMark(r.Classes.Uppercase, "A-Z"),
		classMark(r.Classes.Digit, "0-9"),
		classMark(r.Classes.Symbol, "!@#$"))

	if r.KnownCommon {
		fmt.Fprintln(w, dangerStyle.Render("WARNING: Common password detected!"))
	}
	if r.HasPattern {
		fmt.Fprintln(w, warnStyle.Render("WARNING: Pattern detected!"))
	}

	if r.Breach != nil {
		switch {
		case r.Breach.Unknown():
			fmt.Fprintln(w, warnStyle.Render("Breach status: unknown (lookup unavailable)"))
		case r.Breach.Known:
			fmt.Fprintln(w, dangerStyle.Render(fmt.Sprintf("BREACHED: found %d times in data breaches!", r.Breach.Count)))
		default:
			fmt.Fprintln(w, okStyle.Render("Not found in breach databases"))
		}
	}

	if verbose {
		fmt.Fprintln(w, titleStyle.Render("Suggestions:"))
		for i, s := range r.Suggestions {
			fmt.Fprintf(w, "  %d. %s\n", i+1, s)
		}
		fmt.Fprintln(w, titleStyle.Render("Detailed Statistics:"))
		fmt.Fprintf(w, "  Unique characters:   %d\n", r.UniqueChars)
		fmt.Fprintf(w, "  Repeated characters: %d\n", r.RepeatedChars)
		fmt.Fprintf(w, "  Character variety:   %d\n", r.CharVariety)
	}
	fmt.Fprintln(w, divider)
}

func renderSummary(w io.Writer, summary domain.BatchSummary) {
	fmt.Fprintln(w, titleStyle.Render("Batch Analysis Summary"))
	fmt.Fprintln(w, divider)

	levels := []domain.StrengthLevel{
		domain.StrengthVeryWeak,
		domain.StrengthWeak,
		domain.StrengthModerate,
		domain.StrengthStrong,
		domain.StrengthVeryStrong,
	}
	for _, level := range levels {
		count, ok := summary.ByStrength[level]
		if !ok {
			continue
		}
		percentage := float64(count) / float64(summary.Total) * 100
		fmt.Fprintf(w, "%-15s %3d (%5.1f%%)\n", level.DisplayName(), count, percentage)
	}

	fmt.Fprintf(w, "\nAverage Score:   %.1f/100\n", summary.AverageScore)
	fmt.Fprintf(w, "Average Entropy: %.1f bits\n", summary.AverageEntropy)
	fmt.Fprintln(w, divider)
}

const divider = "============================================================"

func classMark(present bool, label string) string {
	if present {
		return okStyle.Render("+" + label)
	}
	return dangerStyle.Render("-" + label)
}
