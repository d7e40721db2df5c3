package sav

import (
	"encoding/binary"
	"fmt"
)

// Save-slot geometry. A save file holds two redundant slot copies; each slot
// is 14 contiguous 4 KiB sections with an ID and write counter in the
// section footer.
const (
	SectionSize  = 0x1000
	SectionCount = 14
	SlotSize     = SectionSize * SectionCount

	sectionIDOffset    = 0xFF4
	saveIndexOffset    = 0xFFC
	teamItemsSectionID = 1
)

// Section is one 4 KiB chunk of a save slot.
type Section struct {
	ID        uint16
	SaveIndex uint32
	Data      []byte
}

// parseSlot splits one save slot out of the raw file into its 14 sections.
// The caller guarantees raw holds at least offset+SlotSize bytes.
func parseSlot(raw []byte, offset int) []Section {
	sections := make([]Section, 0, SectionCount)
	for i := 0; i < SectionCount; i++ {
		start := offset + i*SectionSize
		data := raw[start : start+SectionSize]
		sections = append(sections, Section{
			ID:        binary.LittleEndian.Uint16(data[sectionIDOffset:]),
			SaveIndex: binary.LittleEndian.Uint32(data[saveIndexOffset:]),
			Data:      data,
		})
	}
	return sections
}

// activeSlot picks the slot copy the game wrote last. The save index
// increments on every write, so the copy whose first section carries the
// higher index is current; on a tie the first copy wins. Only section 0 is
// consulted, same as the game's own arbitration.
func activeSlot(raw []byte) []Section {
	a := parseSlot(raw, 0)
	b := parseSlot(raw, SlotSize)
	if a[0].SaveIndex >= b[0].SaveIndex {
		return a
	}
	return b
}

// findSection returns the raw bytes of the section with the given logical
// ID, or ErrSectionNotFound if the slot has no such section.
func findSection(sections []Section, id uint16) ([]byte, error) {
	for _, s := range sections {
		if s.ID == id {
			return s.Data, nil
		}
	}
	return nil, fmt.Errorf("section %d: %w", id, ErrSectionNotFound)
}
