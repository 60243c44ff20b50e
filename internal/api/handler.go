package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/eugenenazirov/carton-packer/internal/allocation"
	"github.com/eugenenazirov/carton-packer/internal/colref"
	"github.com/eugenenazirov/carton-packer/internal/metrics"
	"github.com/eugenenazirov/carton-packer/internal/render"
	"github.com/eugenenazirov/carton-packer/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

// Handler wires settings storage and the allocation engine into HTTP handlers.
type Handler struct {
	storage storage.Storage
	logger  *zap.Logger
	metrics *metrics.Metrics

	clock func() time.Time

	mu                sync.RWMutex
	settingsUpdatedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// WithHandlerLogger passes a logger down to the calculator and exporter.
func WithHandlerLogger(logger *zap.Logger) HandlerOption {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithHandlerMetrics records allocation and export metrics.
func WithHandlerMetrics(m *metrics.Metrics) HandlerOption {
	return func(h *Handler) {
		h.metrics = m
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		storage: store,
		logger:  zap.NewNop(),
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.settingsUpdatedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	_ = r
	settings, err := h.storage.GetSettings()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, settingsResponse{
		settingsPayload: toSettingsPayload(settings),
		UpdatedAt:       h.currentSettingsUpdatedAt(),
	})
}

func (h *Handler) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsPayload
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.storage.SetSettings(req.toSettings()); err != nil {
		if errors.Is(err, storage.ErrInvalidSettings) {
			writeError(w, http.StatusBadRequest, "Invalid settings", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	h.markSettingsUpdated()

	settings, err := h.storage.GetSettings()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, settingsResponse{
		settingsPayload: toSettingsPayload(settings),
		UpdatedAt:       h.currentSettingsUpdatedAt(),
		Message:         "Settings updated successfully",
	})
}

func (h *Handler) handleAllocate(w http.ResponseWriter, r *http.Request) {
	var req allocationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if len(req.Sizes) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid request", "sizes must contain at least one size")
		return
	}

	settings, err := h.storage.GetSettings()
	if err != nil {
		writeInternalError(w, err)
		return
	}
	itemsPerBox := settings.ItemsPerBox
	if req.ItemsPerBox != nil {
		itemsPerBox = *req.ItemsPerBox
	}

	start := time.Now()
	result, calcErr := h.allocate(itemsPerBox, req.Sizes)
	elapsed := time.Since(start)
	if h.metrics != nil {
		h.metrics.RecordAllocation(result.TotalFullBoxes, result.TotalCombinedBoxes, elapsed, calcErr)
	}

	if calcErr != nil {
		switch {
		case errors.Is(calcErr, allocation.ErrInvalidConfiguration):
			writeError(w, http.StatusBadRequest, "Invalid items per box", calcErr.Error())
		case errors.Is(calcErr, allocation.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Invalid quantities", calcErr.Error(),
				"Piece counts must be zero or greater")
		default:
			writeInternalError(w, calcErr)
		}
		return
	}

	writeJSON(w, http.StatusOK, toAllocationResponse(result, settings.Separator, elapsed))
}

func (h *Handler) allocate(itemsPerBox int, quantities map[string]int) (allocation.Result, error) {
	calc, err := allocation.New(itemsPerBox, allocation.WithLogger(h.logger))
	if err != nil {
		return allocation.Result{}, err
	}
	return calc.Calculate(quantities)
}

func (h *Handler) handleBoxList(w http.ResponseWriter, r *http.Request) {
	var req boxListRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.StartRow < 0 {
		writeError(w, http.StatusBadRequest, "Invalid request", "startRow must be a positive integer")
		return
	}

	settings, err := h.storage.GetSettings()
	if err != nil {
		writeInternalError(w, err)
		return
	}
	itemsPerBox := settings.ItemsPerBox
	if req.ItemsPerBox != nil {
		itemsPerBox = *req.ItemsPerBox
	}

	exporter := render.NewExporter(render.Layout{
		Separator:         settings.Separator,
		CombinedDetection: settings.CombinedDetection,
		SortCombinedSizes: settings.SortCombinedSizes,
		MaxRowsPerColumn:  settings.MaxRowsPerColumn,
		HeaderRows:        settings.HeaderRows,
	}, h.logger)

	result, exportErr := exporter.Export(render.ExportRequest{
		Sizes:       req.sizeEntries(),
		ItemsPerBox: itemsPerBox,
		Filename:    req.Filename,
		PO:          req.PO,
		StartColumn: req.StartColumn,
		StartRow:    req.StartRow,
	})
	if h.metrics != nil {
		h.metrics.RecordExport(len(result.Ranges), exportErr)
	}

	if exportErr != nil {
		switch {
		case errors.Is(exportErr, render.ErrNoBoxData):
			writeError(w, http.StatusUnprocessableEntity, "No box data", exportErr.Error(),
				"Select sizes that have quantities and box numbers")
		case errors.Is(exportErr, render.ErrTooManyBoxes):
			writeError(w, http.StatusBadRequest, "Too many boxes", exportErr.Error(),
				"Check the box start and end numbers of each size")
		case errors.Is(exportErr, colref.ErrInvalidColumn), errors.Is(exportErr, colref.ErrInvalidIndex):
			writeError(w, http.StatusBadRequest, "Invalid request", exportErr.Error())
		default:
			writeInternalError(w, exportErr)
		}
		return
	}

	writeJSON(w, http.StatusOK, toBoxListResponse(result, settings.Separator))
}

func (h *Handler) currentSettingsUpdatedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.settingsUpdatedAt
}

func (h *Handler) markSettingsUpdated() {
	h.mu.Lock()
	h.settingsUpdatedAt = h.clock()
	h.mu.Unlock()
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// decodeJSON reads at most maxBodyBytes into dst and writes the error
// response itself when decoding fails.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "Request too large",
			fmt.Sprintf("request body must not exceed %d bytes", tooLarge.Limit))
		return false
	}
	writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
	return false
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
