package render

import (
	"fmt"

	"github.com/eugenenazirov/carton-packer/internal/colref"
)

// Alignment is the horizontal alignment of a written cell.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
)

// Cell is a single value a sheet writer should place.
type Cell struct {
	Ref    string    `json:"ref"`
	Row    int       `json:"row"`
	Column int       `json:"column"`
	Value  string    `json:"value"`
	Bold   bool      `json:"bold"`
	Align  Alignment `json:"align"`
}

// SheetCells lays the columns out on a sheet starting at startColumn/startRow.
// The header goes into the first column only; every column's lines start
// headerRows below startRow. Size headings are bold.
func SheetCells(header string, columns [][]string, startColumn string, startRow, headerRows int) ([]Cell, error) {
	first, err := colref.ToNumber(startColumn)
	if err != nil {
		return nil, err
	}
	if startRow < 1 {
		return nil, fmt.Errorf("start row must be positive, got %d", startRow)
	}

	var cells []Cell
	for i, lines := range columns {
		col := first + i
		if i == 0 {
			cell, err := newCell(startRow, col, header, true, AlignLeft)
			if err != nil {
				return nil, err
			}
			cells = append(cells, cell)
		}

		row := startRow + headerRows
		for _, line := range lines {
			cell, err := newCell(row, col, line, IsHeading(line), AlignCenter)
			if err != nil {
				return nil, err
			}
			cells = append(cells, cell)
			row++
		}
	}
	return cells, nil
}

func newCell(row, col int, value string, bold bool, align Alignment) (Cell, error) {
	ref, err := colref.CellRef(col, row)
	if err != nil {
		return Cell{}, err
	}
	return Cell{Ref: ref, Row: row, Column: col, Value: value, Bold: bold, Align: align}, nil
}
