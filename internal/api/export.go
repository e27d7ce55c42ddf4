package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/unnativehicles2009-web/Open-RO/internal/exporter"
	"github.com/unnativehicles2009-web/Open-RO/internal/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Export streams the filtered rows as an Excel workbook. The no-data
// cases answer 200 with a JSON error body; the UI tells the two apart
// by content type.
// GET /api/export
func (h *Handler) Export(c *gin.Context) {
	snap := h.cache.Get(c.Request.Context())
	if snap.Rows() == 0 {
		c.JSON(http.StatusOK, gin.H{"error": "No data"})
		return
	}

	filtered := report.Apply(snap.Records, report.ParseFilter(c.Query))
	if len(filtered) == 0 {
		c.JSON(http.StatusOK, gin.H{"error": "No data for filters"})
		return
	}

	exp := exporter.NewExporter()
	file, err := exp.Export(report.ProjectRows(filtered))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	filename := exporter.Filename(time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)

	if err := file.Write(c.Writer); err != nil {
		// Headers are out; all we can do is log the broken download.
		slog.Warn("export write failed", "error", err)
	}
}
