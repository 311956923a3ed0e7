// Package types provides type definitions for structured data used throughout the contamination-checker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// SpeciesColumn is the canonical name of the curated reference's key column.
const SpeciesColumn = "Species"

// CuratedSpecies is a single curated reference entry: a species name and its
// per-property indicator values (typically 0/1, occasionally a magnitude).
type CuratedSpecies struct {
	Species    string             `json:"species"`
	Properties map[string]float64 `json:"properties"`
}

// CuratedReference is the authoritative list of known species used as the
// matching target. It is loaded once per analysis run and never mutated, so a
// single instance may be shared read-only across concurrent invocations.
type CuratedReference struct {
	// Columns holds the property column names in curated-file order,
	// excluding the species key column.
	Columns []string         `json:"columns"`
	Species []CuratedSpecies `json:"species"`

	index map[string]int
}

// NewCuratedReference builds a reference from ordered columns and species rows.
// Returns an error on duplicate species names, since the species name is the
// unique key every downstream lookup depends on.
func NewCuratedReference(columns []string, species []CuratedSpecies) (*CuratedReference, error) {
	ref := &CuratedReference{
		Columns: columns,
		Species: species,
		index:   make(map[string]int, len(species)),
	}
	for i, sp := range species {
		if sp.Species == "" {
			return nil, fmt.Errorf("curated reference row %d has an empty species name", i)
		}
		if _, exists := ref.index[sp.Species]; exists {
			return nil, fmt.Errorf("curated reference contains duplicate species %q", sp.Species)
		}
		ref.index[sp.Species] = i
	}
	return ref, nil
}

// Lookup returns the curated entry for an exact species name.
func (r *CuratedReference) Lookup(species string) (*CuratedSpecies, bool) {
	i, ok := r.resolve(species)
	if !ok {
		return nil, false
	}
	return &r.Species[i], true
}

// Contains reports whether a species name is present verbatim in the reference.
func (r *CuratedReference) Contains(species string) bool {
	_, ok := r.resolve(species)
	return ok
}

// HasColumn reports whether a property column exists in the reference.
func (r *CuratedReference) HasColumn(name string) bool {
	for _, c := range r.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Len returns the number of curated species.
func (r *CuratedReference) Len() int {
	return len(r.Species)
}

// resolve handles references constructed without NewCuratedReference
// (e.g. decoded from JSON) by building the index lazily.
func (r *CuratedReference) resolve(species string) (int, bool) {
	if r.index == nil {
		r.index = make(map[string]int, len(r.Species))
		for i, sp := range r.Species {
			r.index[sp.Species] = i
		}
	}
	i, ok := r.index[species]
	return i, ok
}
