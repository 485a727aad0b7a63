package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"store-admin-backend/internal/services/billing"
)

type ReportHandler struct {
	service *billing.BillingService
}

func NewReportHandler(s *billing.BillingService) *ReportHandler {
	return &ReportHandler{service: s}
}

// Summary serves the aggregates the dashboard and accounting pages
// render: revenue totals, per-status breakdown, and monthly buckets.
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.service.RevenueSummary()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
