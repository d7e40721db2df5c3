// Package pokedex provides read-only lookup tables resolving the numeric IDs
// found in save data (species, moves, items) to display names, plus the
// species-to-ability mapping. Reference data ships embedded in the binary and
// never changes at runtime.
package pokedex

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed data/species.txt
var speciesTxt string

//go:embed data/moves.txt
var movesTxt string

//go:embed data/items.txt
var itemsTxt string

//go:embed data/abilities.csv
var abilitiesCSV string

// Placeholder is returned for any ID or species the catalog does not know.
const Placeholder = "???"

// Ability slots, in the order the game stores them.
const (
	AbilityPrimary = iota
	AbilitySecondary
	AbilityHidden
)

// Catalog holds the name tables. It is immutable after construction and safe
// for concurrent lookups.
type Catalog struct {
	species   []string
	moves     []string
	items     []string
	abilities map[string][3]string
}

// New builds a Catalog from raw reference data: three newline-delimited,
// 1-indexed name lists and one header-plus-rows ability table
// (species,primary,secondary,hidden). Ability rows with fewer than four
// columns are skipped rather than failing the load.
func New(species, moves, items, abilities string) *Catalog {
	c := &Catalog{
		species:   buildLookup(species),
		moves:     buildLookup(moves),
		items:     buildLookup(items),
		abilities: make(map[string][3]string),
	}
	lines := strings.Split(abilities, "\n")
	if len(lines) > 0 {
		lines = lines[1:] // header
	}
	for _, line := range lines {
		cols := strings.Split(line, ",")
		if len(cols) < 4 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(cols[0]))
		c.abilities[key] = [3]string{
			strings.TrimSpace(cols[1]),
			strings.TrimSpace(cols[2]),
			strings.TrimSpace(cols[3]),
		}
	}
	return c
}

// buildLookup turns a 1-indexed name list into a slice with a dummy entry at
// index 0 so lookup[id] needs no subtraction.
func buildLookup(text string) []string {
	names := []string{""}
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		names = append(names, strings.TrimSpace(line))
	}
	return names
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process-wide catalog built from the embedded reference
// data. The first call builds it; later calls return the same instance.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New(speciesTxt, movesTxt, itemsTxt, abilitiesCSV)
	})
	return defaultCatalog
}

// SpeciesName resolves a species ID, returning Placeholder when out of range.
func (c *Catalog) SpeciesName(id uint16) string {
	return lookup(c.species, id)
}

// MoveName resolves a move ID, returning Placeholder when out of range.
func (c *Catalog) MoveName(id uint16) string {
	return lookup(c.moves, id)
}

// ItemName resolves an item ID, returning Placeholder when out of range.
func (c *Catalog) ItemName(id uint16) string {
	return lookup(c.items, id)
}

func lookup(names []string, id uint16) string {
	if int(id) >= len(names) {
		return Placeholder
	}
	return names[id]
}

// AbilityName resolves a species name and ability slot (AbilityPrimary,
// AbilitySecondary or AbilityHidden) to an ability name. The species lookup
// is case-insensitive; unknown species return Placeholder.
func (c *Catalog) AbilityName(species string, slot int) string {
	abilities, ok := c.abilities[strings.ToLower(species)]
	if !ok {
		return Placeholder
	}
	switch slot {
	case AbilityHidden:
		return abilities[2]
	case AbilitySecondary:
		return abilities[1]
	default:
		return abilities[0]
	}
}
