package render

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/eugenenazirov/carton-packer/internal/boxrange"
)

// DefaultMaxBoxes caps the cartons a single export may list.
const DefaultMaxBoxes = 10000

// Layout holds the box list export settings.
type Layout struct {
	Separator         string
	CombinedDetection bool
	SortCombinedSizes bool
	MaxRowsPerColumn  int
	HeaderRows        int
	// MaxBoxes limits the cartons listed across all ranges; zero means DefaultMaxBoxes.
	MaxBoxes int
}

// ExportRequest is the box data read from a sheet plus the context needed to
// title the export.
type ExportRequest struct {
	Sizes       []boxrange.SizeEntries
	ItemsPerBox int
	Filename    string
	PO          string
	StartColumn string
	StartRow    int
}

// ExportResult is everything a clipboard or sheet writer needs.
type ExportResult struct {
	Ranges       []boxrange.BoxRange
	Header       string
	Columns      [][]string
	BoxListText  string
	Text         string
	Cells        []Cell
	TotalBoxes   int
	TotalColumns int
	Summary      string
}

// Exporter builds box list exports for a fixed layout.
type Exporter struct {
	layout Layout
	logger *zap.Logger
}

// NewExporter creates an Exporter. A nil logger disables logging.
func NewExporter(layout Layout, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{layout: layout, logger: logger}
}

// Export reconciles the box data and renders it. StartColumn defaults to "A"
// and StartRow to 1.
func (e *Exporter) Export(req ExportRequest) (ExportResult, error) {
	e.logger.Info("exporting box list", zap.Int("sizes", len(req.Sizes)))

	if !boxrange.HasData(req.Sizes) {
		return ExportResult{}, ErrNoBoxData
	}

	reconciler := boxrange.NewReconciler(boxrange.Options{
		CombinedDetection: e.layout.CombinedDetection,
		SortCombinedSizes: e.layout.SortCombinedSizes,
		ItemsPerBox:       req.ItemsPerBox,
	}, e.logger)
	ranges := reconciler.Reconcile(req.Sizes)
	if err := e.checkBoxCount(ranges); err != nil {
		return ExportResult{}, err
	}

	lines := Lines(ranges, e.layout.Separator)
	columns, err := SplitIntoColumns(lines, e.layout.MaxRowsPerColumn, e.layout.HeaderRows)
	if err != nil {
		return ExportResult{}, err
	}

	header := Header(req.Filename, req.PO, req.ItemsPerBox)

	startColumn := req.StartColumn
	if startColumn == "" {
		startColumn = "A"
	}
	startRow := req.StartRow
	if startRow == 0 {
		startRow = 1
	}
	cells, err := SheetCells(header, columns, startColumn, startRow, e.layout.HeaderRows)
	if err != nil {
		return ExportResult{}, err
	}

	result := ExportResult{
		Ranges:       ranges,
		Header:       header,
		Columns:      columns,
		BoxListText:  BoxListText(ranges, e.layout.Separator),
		Text:         ClipboardText(header, columns),
		Cells:        cells,
		TotalBoxes:   boxrange.TotalBoxes(ranges),
		TotalColumns: len(columns),
		Summary:      ExportSummary(ranges, len(columns)),
	}

	e.logger.Info("box list exported",
		zap.Int("boxes", result.TotalBoxes),
		zap.Int("columns", result.TotalColumns),
	)
	return result, nil
}

// checkBoxCount runs before any carton numbers are expanded into lines.
func (e *Exporter) checkBoxCount(ranges []boxrange.BoxRange) error {
	limit := e.layout.MaxBoxes
	if limit <= 0 {
		limit = DefaultMaxBoxes
	}

	remaining := limit
	for _, br := range ranges {
		count := br.BoxCount()
		if count > remaining {
			e.logger.Warn("box list over carton limit",
				zap.Int("box_start", br.BoxStart),
				zap.Int("box_end", br.BoxEnd),
				zap.Int("limit", limit),
			)
			return fmt.Errorf("%w: more than %d cartons", ErrTooManyBoxes, limit)
		}
		remaining -= count
	}
	return nil
}
