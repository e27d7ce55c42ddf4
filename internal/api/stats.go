package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unnativehicles2009-web/Open-RO/internal/report"
)

// StatsResponse carries the KPI card totals for the filtered view.
type StatsResponse struct {
	TotalROs         int     `json:"total_ros"`
	TotalROAmount    float64 `json:"total_ro_amount"`
	TotalPartsAmount float64 `json:"total_parts_amount"`
	TotalLaborAmount float64 `json:"total_labor_amount"`
}

// Stats sums the repair orders matching the query filters.
// GET /api/stats
func (h *Handler) Stats(c *gin.Context) {
	snap := h.cache.Get(c.Request.Context())
	if snap.Rows() == 0 {
		c.JSON(http.StatusOK, StatsResponse{})
		return
	}

	filtered := report.Apply(snap.Records, report.ParseFilter(c.Query))
	totals := report.Sum(filtered)

	c.JSON(http.StatusOK, StatsResponse{
		TotalROs:         totals.Count,
		TotalROAmount:    totals.ROAmount,
		TotalPartsAmount: totals.PartsAmount,
		TotalLaborAmount: totals.LaborAmount,
	})
}
