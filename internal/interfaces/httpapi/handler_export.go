package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
)

type exportCSVRequest struct {
	Context   string     `json:"context" validate:"required"`
	Label     string     `json:"label"`
	TableType string     `json:"table_type" validate:"required"`
	Headers   []string   `json:"headers" validate:"required,min=1"`
	Rows      [][]string `json:"rows" validate:"required,min=1"`
}

// ExportCSV renders posted table data as a CSV attachment.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportCSV")
	defer span.End()

	var req exportCSVRequest
	if err := h.decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	export, err := h.exportService.BuildCSV(ctx, req.Context, req.Label, req.TableType, req.Headers, req.Rows)
	if err != nil {
		h.logger.ErrorContext(ctx, "csv export failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Content)
}
