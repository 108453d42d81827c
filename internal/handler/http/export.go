package http

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/emscorp/ems-backend-go/internal/handler/http/response"
	"github.com/emscorp/ems-backend-go/internal/service/export"
)

type ExportHandler interface {
	Export(w http.ResponseWriter, r *http.Request)
}

type ExportHandlerImpl struct {
	exportService export.Service
}

func NewExportHandler(exportService export.Service) ExportHandler {
	return &ExportHandlerImpl{exportService: exportService}
}

// Export implements ExportHandler. The file is buffered before any header
// is written so a late failure can still produce a JSON error.
func (h *ExportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	dataset := export.Dataset(query.Get("type"))
	format := export.Format(query.Get("format"))
	if format == "" {
		format = export.FormatCSV
	}

	var buf bytes.Buffer
	meta, err := h.exportService.Export(r.Context(), dataset, format, &buf)
	if err != nil {
		slog.Error("Export service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", meta.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+meta.Filename+`"`)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Export write error", "error", err)
	}
}
