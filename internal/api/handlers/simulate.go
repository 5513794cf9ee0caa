package handlers

import (
	"log"
	"net/http"
	"time"

	"portfolio-analyzer/internal/api/models"
	"portfolio-analyzer/internal/history"
	"portfolio-analyzer/internal/model"
	"portfolio-analyzer/internal/montecarlo"

	"github.com/gin-gonic/gin"
)

// SimulateHandler handles simulation requests
type SimulateHandler struct {
	store   history.Store
	workers int
}

// NewSimulateHandler creates a new simulation handler. The store receives
// every successful run; workers <= 0 lets the engine pick.
func NewSimulateHandler(store history.Store, workers int) *SimulateHandler {
	return &SimulateHandler{store: store, workers: workers}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	// An explicit seed makes the run reproducible; otherwise each run gets
	// fresh randomness.
	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	engine := montecarlo.New(montecarlo.Options{Seed: seed, Workers: h.workers})
	result, err := engine.Run(c.Request.Context(), req.ToModel())
	if err != nil {
		if ve, ok := model.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    string(ve.Kind),
					Message: ve.Message,
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	// History is best effort: a storage failure must not fail the run.
	if h.store != nil {
		if err := h.store.Record(c.Request.Context(), history.RecordResult(result)); err != nil {
			log.Printf("SimulateHandler: failed to record result %s: %v", result.ID, err)
		}
	}

	c.JSON(http.StatusOK, models.NewSimulateResponse(result, req.Options))
}
