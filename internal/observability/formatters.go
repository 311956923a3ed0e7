// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/daniela/contamination-checker/internal/types"
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSummary outputs the headline numbers of an analysis result.
func (p *Printer) PrintSummary(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	switch result.Outcome {
	case types.OutcomeNoMatches:
		sb.WriteString("No species meet the location count threshold.\n")
	case types.OutcomeBelowThreshold:
		sb.WriteString("All matched species scored below the threshold.\n")
	default:
		sb.WriteString(fmt.Sprintf("Matched species:        %d\n", result.TotalMatches))
		sb.WriteString(fmt.Sprintf("Above score threshold:  %d\n", result.ThresholdRows))
	}
	sb.WriteString(fmt.Sprintf("Unmatched rows:         %d", len(result.Unmatched)))

	p.printBox("ANALYSIS SUMMARY", sb.String())
}

// PrintForwardTable outputs the top rows of the forward table with scores and
// contributing properties.
func (p *Printer) PrintForwardTable(rows []types.ForwardRow) {
	if len(rows) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Flagged rows: %d\n\n", len(rows)))

	count := min(len(rows), maxItemsToShow)
	for i := 0; i < count; i++ {
		row := rows[i]
		sb.WriteString(fmt.Sprintf("• %s\n", row.Label))
		sb.WriteString(fmt.Sprintf("    Score: %s  Locations: %d\n", row.Score, row.NumLocations))
		if len(row.ContributingProperties) > 0 {
			props := strings.Join(row.ContributingProperties, ", ")
			if len(props) > 40 {
				props = props[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Properties: %s\n", props))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(rows) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more rows", len(rows)-maxItemsToShow))
	}

	p.printBox("FLAGGED CONTAMINANTS", sb.String())
}

// PrintReverseTable outputs the property → record index.
func (p *Printer) PrintReverseTable(entries []types.ReverseEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	for i, entry := range entries {
		sb.WriteString(fmt.Sprintf("%s (%d rows)\n", entry.Property, entry.Count))
		labels := strings.Join(entry.Labels, ", ")
		if len(labels) > 50 {
			labels = labels[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s", labels))
		if i < len(entries)-1 {
			sb.WriteString("\n\n")
		}
	}

	p.printBox("PROPERTIES → SPECIES", sb.String())
}

// PrintGroupStats outputs the group match statistics table.
func (p *Printer) PrintGroupStats(stats []types.GroupStat) {
	if len(stats) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(stats), maxItemsToShow)
	for i := 0; i < count; i++ {
		stat := stats[i]
		sb.WriteString(fmt.Sprintf("%s → genus %s, %d species\n", stat.Group, stat.Genus, stat.MatchCount))
		species := strings.Join(stat.Species, ", ")
		if len(species) > 50 {
			species = species[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", species))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(stats) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more groups", len(stats)-maxItemsToShow))
	}

	p.printBox("GROUP MATCH STATISTICS", strings.TrimSuffix(sb.String(), "\n"))
}
