package parsing

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/daniela/contamination-checker/internal/types"
)

const (
	// syntheticLocation is the location column added to a single-column
	// input so presence filtering has something to count.
	syntheticLocation = "sample_loc1"
	syntheticReads    = 100
)

// ParseInputTable reads a detection table from CSV. The first column is the
// taxon label under whatever header the caller used; every remaining column is
// a per-location read count and must be a non-negative integer.
func ParseInputTable(r io.Reader) (*types.InputTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read input header: %w", err)
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("input table has no columns")
	}

	table := &types.InputTable{
		LabelColumn: strings.TrimSpace(header[0]),
		Locations:   make([]string, 0, len(header)-1),
	}
	for _, col := range header[1:] {
		table.Locations = append(table.Locations, strings.TrimSpace(col))
	}

	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input row %d: %w", rowNum+1, err)
		}
		rowNum++

		row := types.InputRecord{
			Index: len(table.Records),
			Label: strings.TrimSpace(record[0]),
			Reads: make(map[string]int, len(table.Locations)),
		}
		for i, loc := range table.Locations {
			cell := ""
			if i+1 < len(record) {
				cell = strings.TrimSpace(record[i+1])
			}
			if cell == "" {
				row.Reads[loc] = 0
				continue
			}
			count, err := strconv.Atoi(cell)
			if err != nil || count < 0 {
				if err == nil {
					err = fmt.Errorf("read count must be non-negative")
				}
				return nil, &CellError{Row: rowNum, Column: loc, Value: cell, Cause: err}
			}
			row.Reads[loc] = count
		}
		table.Records = append(table.Records, row)
	}

	return table, nil
}

// LoadInputTable reads a detection table from a CSV file on disk.
func LoadInputTable(path string) (*types.InputTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer f.Close()

	table, err := ParseInputTable(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse input file %s: %w", path, err)
	}
	return table, nil
}

// PadSingleColumn adds a synthetic location column with a constant read count
// to a table that carried only the label column, so every label gets exactly
// one qualifying location under any reasonable reads threshold.
func PadSingleColumn(table *types.InputTable) {
	if len(table.Locations) > 0 {
		return
	}
	table.Locations = []string{syntheticLocation}
	for i := range table.Records {
		if table.Records[i].Reads == nil {
			table.Records[i].Reads = make(map[string]int, 1)
		}
		table.Records[i].Reads[syntheticLocation] = syntheticReads
	}
}

// ParseCuratedReference reads a curated reference table from CSV. The header
// must contain the species key column; every other column is a numeric
// property indicator. An empty cell reads as zero.
func ParseCuratedReference(r io.Reader) (*types.CuratedReference, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read curated reference header: %w", err)
	}

	keyIdx := -1
	columns := make([]string, 0, len(header)-1)
	for i, col := range header {
		col = strings.TrimSpace(col)
		if col == types.SpeciesColumn {
			keyIdx = i
			continue
		}
		columns = append(columns, col)
	}
	if keyIdx == -1 {
		return nil, &ReferenceFormatError{
			Message: fmt.Sprintf("missing required %q column", types.SpeciesColumn),
		}
	}

	var species []types.CuratedSpecies
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read curated row %d: %w", rowNum+1, err)
		}
		rowNum++

		entry := types.CuratedSpecies{
			Species:    strings.TrimSpace(record[keyIdx]),
			Properties: make(map[string]float64, len(columns)),
		}
		col := 0
		for i, cell := range record {
			if i == keyIdx {
				continue
			}
			if col >= len(columns) {
				break
			}
			name := columns[col]
			col++

			cell = strings.TrimSpace(cell)
			if cell == "" {
				entry.Properties[name] = 0
				continue
			}
			value, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, &CellError{Row: rowNum, Column: name, Value: cell, Cause: err}
			}
			entry.Properties[name] = value
		}
		species = append(species, entry)
	}

	return types.NewCuratedReference(columns, species)
}

// LoadCuratedReference reads a curated reference from a CSV file on disk.
func LoadCuratedReference(path string) (*types.CuratedReference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open curated reference %s: %w", path, err)
	}
	defer f.Close()

	ref, err := ParseCuratedReference(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse curated reference %s: %w", path, err)
	}
	return ref, nil
}
