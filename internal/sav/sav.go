// Package sav decodes party data from Gen-3 save files written by CFRU-based
// ROM hacks, which use the stock section layout but an unencrypted,
// unshuffled 100-byte party record.
package sav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/gen3tools/partyview/internal/model"
	"github.com/gen3tools/partyview/internal/pokedex"
)

// Fatal parse conditions. Anything else degrades gracefully: empty slots are
// skipped, truncated records end the walk early and unknown IDs resolve to a
// placeholder name.
var (
	// ErrTooSmall means the file cannot hold two save slots.
	ErrTooSmall = errors.New("file too small to be a valid .sav")

	// ErrSectionNotFound means the active slot has no section with the
	// required logical ID, so the file is a different format or game version.
	ErrSectionNotFound = errors.New("section not found")
)

const (
	partyCountOffset = 0x0034
	partyOffset      = 0x0038
	maxPartySize     = 6
)

// Parse reads a save file and returns its party, in party order, with empty
// slots already excluded. The catalog resolves numeric IDs to names.
func Parse(path string, dex *pokedex.Catalog) ([]model.Pokemon, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read save file: %w", err)
	}
	return parse(raw, dex)
}

func parse(raw []byte, dex *pokedex.Catalog) ([]model.Pokemon, error) {
	if len(raw) < SlotSize*2 {
		return nil, ErrTooSmall
	}

	sections := activeSlot(raw)
	sec, err := findSection(sections, teamItemsSectionID)
	if err != nil {
		return nil, err
	}

	// The on-disk count is untrusted; the game caps the party at six.
	count := int(binary.LittleEndian.Uint32(sec[partyCountOffset:]))
	if count > maxPartySize {
		count = maxPartySize
	}

	party := make([]model.Pokemon, 0, count)
	for i := 0; i < count; i++ {
		off := partyOffset + i*pokemonSize
		if off+pokemonSize > len(sec) {
			break
		}
		if mon := parsePokemon(sec[off:off+pokemonSize], dex); mon != nil {
			party = append(party, *mon)
		}
	}
	return party, nil
}
