package sav

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/gen3tools/partyview/internal/charmap"
	"github.com/gen3tools/partyview/internal/model"
	"github.com/gen3tools/partyview/internal/pokedex"
)

// Offsets within one 100-byte party record. CFRU-based hacks keep the four
// substructures in fixed order with no XOR encryption, so Growth, Attacks
// and Misc sit at constant offsets instead of the stock game's
// personality-keyed permutation.
const (
	pokemonSize = 100

	personalityOffset = 0
	nicknameOffset    = 8
	nicknameLen       = 10
	growthOffset      = 32 // species u16, item u16
	attacksOffset     = 44 // four move IDs, u16 each
	miscIVWordOffset  = 72 // bit 31 = hidden-ability flag
	levelOffset       = 84
)

// parsePokemon decodes one 100-byte party record. A zero personality value
// marks an unused slot and yields nil; that is the format's own empty
// sentinel, not a failure.
func parsePokemon(b []byte, dex *pokedex.Catalog) *model.Pokemon {
	personality := binary.LittleEndian.Uint32(b[personalityOffset:])
	if personality == 0 {
		return nil
	}

	nickname := charmap.Decode(b[nicknameOffset : nicknameOffset+nicknameLen])
	level := b[levelOffset]
	nature := model.Natures[personality%25]

	speciesID := binary.LittleEndian.Uint16(b[growthOffset:])
	itemID := binary.LittleEndian.Uint16(b[growthOffset+2:])
	species := dex.SpeciesName(speciesID)

	var moves []string
	for i := 0; i < 4; i++ {
		id := binary.LittleEndian.Uint16(b[attacksOffset+i*2:])
		if id != 0 {
			moves = append(moves, dex.MoveName(id))
		}
	}

	// Ability slot: hidden when bit 31 of the IV word is set, otherwise the
	// personality's parity picks primary or secondary. This is the game's own
	// deterministic derivation.
	ivWord := binary.LittleEndian.Uint32(b[miscIVWordOffset:])
	slot := pokedex.AbilityPrimary
	switch {
	case ivWord>>31 == 1:
		slot = pokedex.AbilityHidden
	case personality%2 == 1:
		slot = pokedex.AbilitySecondary
	}
	ability := dex.AbilityName(species, slot)

	var item string
	if itemID != 0 {
		item = dex.ItemName(itemID)
	}

	mon := &model.Pokemon{
		Nickname: nickname,
		Species:  species,
		Level:    level,
		Item:     item,
		Nature:   nature,
		Ability:  ability,
		Moves:    moves,
	}
	mon.DisplayText = displayText(mon)
	return mon
}

// displayText renders the showdown-style summary block. Line order and
// punctuation are part of the output contract.
func displayText(mon *model.Pokemon) string {
	var b strings.Builder
	if mon.Item != "" {
		fmt.Fprintf(&b, "%s (%s) @ %s\n", mon.Nickname, mon.Species, mon.Item)
	} else {
		fmt.Fprintf(&b, "%s (%s)\n", mon.Nickname, mon.Species)
	}
	fmt.Fprintf(&b, "Level: %d\n", mon.Level)
	fmt.Fprintf(&b, "%s Nature\n", mon.Nature)
	fmt.Fprintf(&b, "Ability: %s\n", mon.Ability)
	for _, m := range mon.Moves {
		fmt.Fprintf(&b, "- %s\n", m)
	}
	return strings.TrimRight(b.String(), "\n")
}
