// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/portfolio-hydrator/internal/loader"
	"github.com/jonathan/portfolio-hydrator/internal/schemas"
	"github.com/jonathan/portfolio-hydrator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to limit runes, marking the cut with "...".
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

// PrintLoadResult outputs where the profile document was read from.
func (p *Printer) PrintLoadResult(result *loader.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:   %s\n", result.Source))
	sb.WriteString(fmt.Sprintf("Size:     %d bytes\n", len(result.Raw)))
	if result.FellBack {
		sb.WriteString("Fallback: yes (primary source unavailable)")
	} else {
		sb.WriteString("Fallback: no")
	}

	p.printBox("DATA SOURCE", sb.String())
}

// PrintProfile outputs a human-readable summary of the profile document.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", profile.Name))
	if profile.Tagline != "" {
		sb.WriteString(fmt.Sprintf("Tagline:  %s\n", profile.Tagline))
	}
	sb.WriteString(fmt.Sprintf("About:    %d paragraph(s)\n", len(profile.About.Paragraphs())))
	sb.WriteString(fmt.Sprintf("Links:    %d   Contact: %d\n", len(profile.Links), len(profile.Contact)))
	sb.WriteString("\n")

	if profile.Skills.IsGrouped() {
		sb.WriteString("Skills (grouped):\n")
		for _, g := range profile.Skills.Groups() {
			sb.WriteString(fmt.Sprintf("  • %s (%d)\n", g.Title, len(g.Items)))
		}
	} else if flat := profile.Skills.Flat(); len(flat) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:   %s\n", strings.Join(flat, ", ")))
	}

	if len(profile.Projects) > 0 {
		sb.WriteString("\nProjects:\n")
		count := min(len(profile.Projects), maxItemsToShow)
		for i := 0; i < count; i++ {
			name := profile.Projects[i].Name
			if name == "" {
				name = "(untitled)"
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", name))
		}
		if len(profile.Projects) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Projects)-maxItemsToShow))
		}
	}

	if len(profile.Experience) > 0 {
		sb.WriteString("\nExperience:\n")
		count := min(len(profile.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			e := profile.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s\n", strings.Trim(e.Role+" @ "+e.Company, " @")))
		}
		if len(profile.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Experience)-maxItemsToShow))
		}
	}

	p.printBox("PORTFOLIO PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidation outputs schema validation problems, or a success line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(verr *schemas.ValidationError) {
	if verr == nil || len(verr.Errors) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ DOCUMENT IS VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d problem(s):\n\n", len(verr.Errors)))

	for i, fe := range verr.Errors {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", fe.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", fe.Message))
		if i < len(verr.Errors)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SCHEMA VALIDATION", strings.TrimSuffix(sb.String(), "\n"))
}
