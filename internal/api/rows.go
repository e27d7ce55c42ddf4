package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unnativehicles2009-web/Open-RO/internal/report"
)

// RowsResponse is one table page plus the counts the pager needs.
type RowsResponse struct {
	TotalCount    int          `json:"total_count"`
	FilteredCount int          `json:"filtered_count"`
	Rows          []report.Row `json:"rows"`
}

// Rows returns the filtered, paged table rows.
// GET /api/rows
func (h *Handler) Rows(c *gin.Context) {
	snap := h.cache.Get(c.Request.Context())
	if snap.Rows() == 0 {
		c.JSON(http.StatusOK, RowsResponse{Rows: []report.Row{}})
		return
	}

	filtered := report.Apply(snap.Records, report.ParseFilter(c.Query))

	limit := parseIntWithDefault(c.Query("limit"), 50)
	skip := parseIntWithDefault(c.Query("skip"), 0)
	page := report.Page(filtered, skip, limit)

	c.JSON(http.StatusOK, RowsResponse{
		TotalCount:    snap.Rows(),
		FilteredCount: len(filtered),
		Rows:          report.ProjectRows(page),
	})
}

func parseIntWithDefault(v string, d int) int {
	if v == "" {
		return d
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return d
	}
	return i
}
