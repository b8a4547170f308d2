package layout

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// ParseGrid reads a delimited grid export and extracts LED positions and
// boundary markers. Cells are scanned row-major with zero-based indices:
// blank cells are skipped, a case-insensitive "x" marks a boundary cell, an
// all-digit cell is an LED index, and anything else is ignored. A duplicate
// LED index silently takes the later position; the duplicates are recorded
// on the layout so callers can warn.
func ParseGrid(r io.Reader) (*Layout, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // spreadsheet exports are ragged
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading grid CSV: %w", err)
	}

	l := &Layout{
		Leds:       make(map[int]Coordinate),
		Boundaries: make(map[Coordinate]struct{}),
	}

	seenDup := make(map[int]bool)
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			if strings.EqualFold(cell, "x") {
				l.Boundaries[Coordinate{Row: rowIdx, Col: colIdx}] = struct{}{}
				continue
			}
			if idx, ok := parseLedIndex(cell); ok {
				if _, exists := l.Leds[idx]; exists && !seenDup[idx] {
					seenDup[idx] = true
					l.Duplicates = append(l.Duplicates, idx)
				}
				l.Leds[idx] = Coordinate{Row: rowIdx, Col: colIdx}
			}
		}
	}
	sort.Ints(l.Duplicates)

	return l, nil
}

// ParseGridFile reads and parses a grid export from disk.
func ParseGridFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening grid file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return ParseGrid(f)
}

// parseLedIndex accepts only unsigned all-digit cells, so "-3" and "1.5"
// are ignored rather than misread.
func parseLedIndex(cell string) (int, bool) {
	for _, r := range cell {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	idx, err := strconv.Atoi(cell)
	if err != nil {
		return 0, false
	}
	return idx, true
}
