package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/lime816/whatsappsuitetest-sub002"
	"github.com/lime816/whatsappsuitetest-sub002/internal/presentation/tui"
)

// ReportMarkdown formats a validation result as a markdown document.
func ReportMarkdown(name string, res flowsuite.ValidationResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Validation report: %s\n\n", name)
	fmt.Fprintf(&sb, "%d errors, %d warnings.\n", len(res.Errors), len(res.Warnings))

	writeIssues(&sb, "Errors", res.Errors)
	writeIssues(&sb, "Warnings", res.Warnings)
	return sb.String()
}

func writeIssues(sb *strings.Builder, title string, issues []flowsuite.Issue) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n## %s\n\n", title)
	sb.WriteString("| Code | Screen | Element | Message |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, is := range issues {
		fmt.Fprintf(sb, "| %s | %s | %s | %s |\n",
			is.Code, cell(is.ScreenID), cell(is.ElementID), strings.ReplaceAll(is.Message, "|", "\\|"))
	}
}

func cell(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Summary returns the one-line verdict, colored for the given profile.
func Summary(res flowsuite.ValidationResult, profile termenv.Profile) string {
	if !res.IsValid {
		return profile.String(fmt.Sprintf("✗ invalid: %d errors, %d warnings", len(res.Errors), len(res.Warnings))).
			Foreground(profile.Color("#ef4444")).Bold().String()
	}
	if len(res.Warnings) > 0 {
		return profile.String(fmt.Sprintf("✓ valid with %d warnings", len(res.Warnings))).
			Foreground(profile.Color("#f59e0b")).String()
	}
	return profile.String("✓ valid").Foreground(profile.Color("#22c55e")).String()
}

// PrintReport writes the report to out. Terminals get glamour-rendered
// markdown and a colored summary; pipes and buffers get plain markdown.
func PrintReport(out io.Writer, name string, res flowsuite.ValidationResult) error {
	md := ReportMarkdown(name, res)

	if f, ok := out.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		return writeReport(out, md, Summary(res, termenv.Ascii))
	}

	rendered, err := tui.NewRenderer()(md)
	if err != nil {
		rendered = md
	}
	return writeReport(out, rendered, Summary(res, termenv.NewOutput(out).Profile))
}

func writeReport(w io.Writer, body, summary string) error {
	if _, err := io.WriteString(w, body); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, summary)
	return err
}
