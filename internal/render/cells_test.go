package render

import (
	"errors"
	"testing"

	"github.com/eugenenazirov/carton-packer/internal/colref"
)

func TestSheetCells(t *testing.T) {
	t.Parallel()

	columns := [][]string{{"SIZE S", "1"}, {"2"}}
	cells, err := SheetCells("TITLE", columns, "Z", 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Cell{
		{Ref: "Z3", Row: 3, Column: 26, Value: "TITLE", Bold: true, Align: AlignLeft},
		{Ref: "Z5", Row: 5, Column: 26, Value: "SIZE S", Bold: true, Align: AlignCenter},
		{Ref: "Z6", Row: 6, Column: 26, Value: "1", Align: AlignCenter},
		{Ref: "AA5", Row: 5, Column: 27, Value: "2", Align: AlignCenter},
	}
	if len(cells) != len(want) {
		t.Fatalf("expected %d cells, got %d: %+v", len(want), len(cells), cells)
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Fatalf("cell %d: expected %+v, got %+v", i, want[i], cells[i])
		}
	}
}

func TestSheetCellsRejectsBadOrigin(t *testing.T) {
	t.Parallel()

	if _, err := SheetCells("T", nil, "1A", 1, 2); !errors.Is(err, colref.ErrInvalidColumn) {
		t.Fatalf("expected ErrInvalidColumn, got %v", err)
	}
	if _, err := SheetCells("T", nil, "A", 0, 2); err == nil {
		t.Fatalf("expected error for row 0")
	}
}
