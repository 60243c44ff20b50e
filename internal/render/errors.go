package render

import "errors"

var (
	// ErrInvalidLayout is returned when a column cannot hold a single content row.
	ErrInvalidLayout = errors.New("max rows per column must exceed header rows")
	// ErrNoBoxData is returned when none of the requested sizes has usable box data.
	ErrNoBoxData = errors.New("no size has valid box data")
	// ErrTooManyBoxes is returned when the reconciled ranges cover more cartons
	// than the layout allows in one export.
	ErrTooManyBoxes = errors.New("box list exceeds the carton limit")
)
