// Package charmap decodes the proprietary fixed-width text encoding used by
// Gen-3 save files. The byte-to-character table ships as an embedded data
// artifact rather than hard-coded logic, so a variant charset only needs a
// different table file.
package charmap

import (
	_ "embed"
	"strconv"
	"strings"
	"sync"
)

//go:embed data/charmap.txt
var tableTxt string

// Terminator marks the end of a string within a fixed-width text field.
const Terminator = 0xFF

var (
	tableOnce sync.Once
	table     [256]rune
)

// buildTable parses the embedded table: one "XX<TAB>char" mapping per line,
// hex byte on the left, literal character on the right. Unmapped bytes
// decode as '?'. Malformed lines are skipped.
func buildTable() {
	for i := range table {
		table[i] = '?'
	}
	for _, line := range strings.Split(tableTxt, "\n") {
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 || parts[1] == "" {
			continue
		}
		b, err := strconv.ParseUint(parts[0], 16, 8)
		if err != nil {
			continue
		}
		table[b] = []rune(parts[1])[0]
	}
}

// Decode converts a fixed-width text field into a Go string. Decoding stops
// at the first terminator byte; bytes with no table entry become '?'.
func Decode(b []byte) string {
	tableOnce.Do(buildTable)
	var sb strings.Builder
	for _, c := range b {
		if c == Terminator {
			break
		}
		sb.WriteRune(table[c])
	}
	return sb.String()
}
