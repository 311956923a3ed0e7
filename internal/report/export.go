package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/daniela/contamination-checker/internal/types"
)

// WriteForwardCSV serializes the forward table as CSV for download. The first
// column header is the original label column of the uploaded input.
func WriteForwardCSV(w io.Writer, labelColumn string, rows []types.ForwardRow) error {
	writer := csv.NewWriter(w)

	header := []string{labelColumn, "Score", "Contributing Properties", "Num loc", "Locations"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write forward table header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Label,
			row.Score,
			strings.Join(row.ContributingProperties, "; "),
			strconv.Itoa(row.NumLocations),
			formatLocations(row.Locations),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write forward table row for %q: %w", row.Label, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// formatLocations renders a presence map as "loc=count" pairs, sorted by
// location name so exports are reproducible.
func formatLocations(locations map[string]int) string {
	names := make([]string, 0, len(locations))
	for name := range locations {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, fmt.Sprintf("%s=%d", name, locations[name]))
	}
	return strings.Join(pairs, "; ")
}
