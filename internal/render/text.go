// Package render turns allocation results and box ranges into the plain text
// and cell plans written to the clipboard or to a summary sheet.
package render

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/eugenenazirov/carton-packer/internal/boxrange"
)

const sizePrefix = "SIZE "

// Lines flattens ranges into one "SIZE <label>" heading per range followed by
// one line per carton number.
func Lines(ranges []boxrange.BoxRange, separator string) []string {
	var lines []string
	for _, br := range ranges {
		lines = append(lines, sizePrefix+br.Label(separator))
		for _, n := range br.BoxNumbers() {
			lines = append(lines, strconv.Itoa(n))
		}
	}
	return lines
}

// BoxListText joins Lines with newlines.
func BoxListText(ranges []boxrange.BoxRange, separator string) string {
	return strings.Join(Lines(ranges, separator), "\n")
}

// IsHeading reports whether a rendered line starts a size block.
func IsHeading(line string) bool {
	return strings.HasPrefix(line, sizePrefix)
}

// SplitIntoColumns fills columns of at most maxRows-headerRows lines each.
// The split is a running counter over the line stream, so a size block may
// continue in the next column.
func SplitIntoColumns(lines []string, maxRows, headerRows int) ([][]string, error) {
	capacity := maxRows - headerRows
	if capacity < 1 {
		return nil, fmt.Errorf("%w: max rows %d, header rows %d", ErrInvalidLayout, maxRows, headerRows)
	}

	var columns [][]string
	for chunk := range slices.Chunk(lines, capacity) {
		columns = append(columns, chunk)
	}
	return columns, nil
}

// ClipboardText renders every column under its own copy of the header,
// separated by blank lines.
func ClipboardText(header string, columns [][]string) string {
	var parts []string
	for i, column := range columns {
		parts = append(parts, header, "")
		parts = append(parts, column...)
		if i < len(columns)-1 {
			parts = append(parts, "")
		}
	}
	return strings.Join(parts, "\n")
}

// Header builds the export title "<file>_PO:<po>", suffixed with the carton
// capacity when known.
func Header(filename, po string, itemsPerBox int) string {
	header := fmt.Sprintf("%s_PO:%s", TrimExtension(filename), NormalizePO(po))
	if itemsPerBox > 0 {
		header = fmt.Sprintf("%s / %d PCS", header, itemsPerBox)
	}
	return header
}

// TrimExtension drops the last extension of a workbook name.
func TrimExtension(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

// NormalizePO strips the ".0" a numeric PO cell picks up when read as a float.
func NormalizePO(po string) string {
	return strings.TrimSuffix(strings.TrimSpace(po), ".0")
}

// SheetName builds "<file>_<last four characters of the PO>".
func SheetName(filename, po string) string {
	po = NormalizePO(po)
	if r := []rune(po); len(r) > 4 {
		po = string(r[len(r)-4:])
	}
	return fmt.Sprintf("%s_%s", TrimExtension(filename), po)
}

// UniqueSheetName appends _1, _2, ... to base until it no longer collides
// with an existing sheet.
func UniqueSheetName(base string, existing []string) string {
	if !slices.Contains(existing, base) {
		return base
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d", base, i)
		if !slices.Contains(existing, candidate) {
			return candidate
		}
	}
}
