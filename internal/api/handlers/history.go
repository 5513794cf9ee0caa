package handlers

import (
	"net/http"

	"portfolio-analyzer/internal/api/models"
	"portfolio-analyzer/internal/history"

	"github.com/gin-gonic/gin"
)

// historyLimit is how many recent runs the endpoint returns.
const historyLimit = 10

// HistoryHandler serves recent simulation runs
type HistoryHandler struct {
	store history.Store
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(store history.Store) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// ListSimulations handles GET /api/v1/simulations
func (h *HistoryHandler) ListSimulations(c *gin.Context) {
	recs, err := h.store.Recent(c.Request.Context(), historyLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "HISTORY_ERROR",
				Message: err.Error(),
			},
		})
		return
	}
	if recs == nil {
		recs = []history.Record{}
	}
	c.JSON(http.StatusOK, models.HistoryResponse{Simulations: recs})
}
