package api

import (
	"time"

	"github.com/eugenenazirov/carton-packer/internal/allocation"
	"github.com/eugenenazirov/carton-packer/internal/boxrange"
	"github.com/eugenenazirov/carton-packer/internal/render"
	"github.com/eugenenazirov/carton-packer/internal/storage"
)

type settingsPayload struct {
	ItemsPerBox       int    `json:"itemsPerBox"`
	Separator         string `json:"separator"`
	CombinedDetection bool   `json:"combinedDetection"`
	SortCombinedSizes bool   `json:"sortCombinedSizes"`
	MaxRowsPerColumn  int    `json:"maxRowsPerColumn"`
	HeaderRows        int    `json:"headerRows"`
}

func toSettingsPayload(s storage.Settings) settingsPayload {
	return settingsPayload{
		ItemsPerBox:       s.ItemsPerBox,
		Separator:         s.Separator,
		CombinedDetection: s.CombinedDetection,
		SortCombinedSizes: s.SortCombinedSizes,
		MaxRowsPerColumn:  s.MaxRowsPerColumn,
		HeaderRows:        s.HeaderRows,
	}
}

func (p settingsPayload) toSettings() storage.Settings {
	return storage.Settings{
		ItemsPerBox:       p.ItemsPerBox,
		Separator:         p.Separator,
		CombinedDetection: p.CombinedDetection,
		SortCombinedSizes: p.SortCombinedSizes,
		MaxRowsPerColumn:  p.MaxRowsPerColumn,
		HeaderRows:        p.HeaderRows,
	}
}

type settingsResponse struct {
	settingsPayload
	UpdatedAt time.Time `json:"updatedAt"`
	Message   string    `json:"message,omitempty"`
}

type allocationRequest struct {
	ItemsPerBox *int           `json:"itemsPerBox"`
	Sizes       map[string]int `json:"sizes"`
}

type combinedCartonResponse struct {
	Sizes      []string       `json:"sizes"`
	Quantities map[string]int `json:"quantities"`
	TotalPcs   int            `json:"totalPcs"`
	Label      string         `json:"label"`
	IsFull     bool           `json:"isFull"`
}

type allocationResponse struct {
	ItemsPerBox        int                         `json:"itemsPerBox"`
	Allocations        []allocation.SizeAllocation `json:"allocations"`
	CombinedCartons    []combinedCartonResponse    `json:"combinedCartons"`
	TotalFullBoxes     int                         `json:"totalFullBoxes"`
	TotalCombinedBoxes int                         `json:"totalCombinedBoxes"`
	TotalBoxes         int                         `json:"totalBoxes"`
	Summary            string                      `json:"summary"`
	CalculationTimeMs  int64                       `json:"calculationTimeMs"`
}

func toAllocationResponse(result allocation.Result, separator string, elapsed time.Duration) allocationResponse {
	cartons := make([]combinedCartonResponse, 0, len(result.CombinedCartons))
	for _, c := range result.CombinedCartons {
		cartons = append(cartons, combinedCartonResponse{
			Sizes:      c.Sizes,
			Quantities: c.Quantities,
			TotalPcs:   c.TotalPcs,
			Label:      c.Label(separator),
			IsFull:     c.IsFull(result.ItemsPerBox),
		})
	}

	return allocationResponse{
		ItemsPerBox:        result.ItemsPerBox,
		Allocations:        result.SortedAllocations(),
		CombinedCartons:    cartons,
		TotalFullBoxes:     result.TotalFullBoxes,
		TotalCombinedBoxes: result.TotalCombinedBoxes,
		TotalBoxes:         result.TotalBoxes(),
		Summary:            render.AllocationSummary(result),
		CalculationTimeMs:  elapsed.Milliseconds(),
	}
}

type entryRequest struct {
	BoxStart int `json:"boxStart"`
	BoxEnd   int `json:"boxEnd"`
	Column   int `json:"column"`
	Quantity int `json:"quantity"`
}

type sizeRangesRequest struct {
	Size   string         `json:"size"`
	Ranges []entryRequest `json:"ranges"`
}

type boxListRequest struct {
	Sizes       []sizeRangesRequest `json:"sizes"`
	ItemsPerBox *int                `json:"itemsPerBox"`
	Filename    string              `json:"filename"`
	PO          string              `json:"po"`
	StartColumn string              `json:"startColumn"`
	StartRow    int                 `json:"startRow"`
}

func (r boxListRequest) sizeEntries() []boxrange.SizeEntries {
	out := make([]boxrange.SizeEntries, 0, len(r.Sizes))
	for _, s := range r.Sizes {
		entries := make([]boxrange.Entry, 0, len(s.Ranges))
		for _, e := range s.Ranges {
			entries = append(entries, boxrange.Entry{
				BoxStart: e.BoxStart,
				BoxEnd:   e.BoxEnd,
				Column:   e.Column,
				Quantity: e.Quantity,
			})
		}
		out = append(out, boxrange.SizeEntries{Size: s.Size, Entries: entries})
	}
	return out
}

type boxRangeResponse struct {
	Sizes      []string `json:"sizes"`
	Label      string   `json:"label"`
	BoxStart   int      `json:"boxStart"`
	BoxEnd     int      `json:"boxEnd"`
	Column     int      `json:"column"`
	TotalPcs   int      `json:"totalPcs"`
	IsCombined bool     `json:"isCombined"`
	IsPartial  bool     `json:"isPartial"`
	BoxNumbers []int    `json:"boxNumbers"`
}

type boxListResponse struct {
	Header       string             `json:"header"`
	Ranges       []boxRangeResponse `json:"ranges"`
	Columns      [][]string         `json:"columns"`
	BoxListText  string             `json:"boxListText"`
	Text         string             `json:"text"`
	Cells        []render.Cell      `json:"cells"`
	TotalBoxes   int                `json:"totalBoxes"`
	TotalColumns int                `json:"totalColumns"`
	Summary      string             `json:"summary"`
}

func toBoxListResponse(result render.ExportResult, separator string) boxListResponse {
	ranges := make([]boxRangeResponse, 0, len(result.Ranges))
	for _, br := range result.Ranges {
		ranges = append(ranges, boxRangeResponse{
			Sizes:      br.Sizes,
			Label:      br.Label(separator),
			BoxStart:   br.BoxStart,
			BoxEnd:     br.BoxEnd,
			Column:     br.Column,
			TotalPcs:   br.TotalPcs,
			IsCombined: br.IsCombined(),
			IsPartial:  br.IsPartial(),
			BoxNumbers: br.BoxNumbers(),
		})
	}

	return boxListResponse{
		Header:       result.Header,
		Ranges:       ranges,
		Columns:      result.Columns,
		BoxListText:  result.BoxListText,
		Text:         result.Text,
		Cells:        result.Cells,
		TotalBoxes:   result.TotalBoxes,
		TotalColumns: result.TotalColumns,
		Summary:      result.Summary,
	}
}
