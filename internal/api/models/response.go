package models

import (
	"time"

	"portfolio-analyzer/internal/history"
	"portfolio-analyzer/internal/model"
	"portfolio-analyzer/internal/montecarlo"
)

// SimulateResponse represents the response from a simulation run.
// All numbers are full precision; rounding is a presentation concern.
type SimulateResponse struct {
	ID              string                  `json:"id"`
	CreatedAt       time.Time               `json:"created_at"`
	SimulationPaths [][]model.PathPoint     `json:"simulation_paths,omitempty"`
	FinalValues     []float64               `json:"final_values,omitempty"`
	Statistics      montecarlo.Statistics   `json:"statistics"`
	Parameters      model.SimulationRequest `json:"parameters"`
}

// NewSimulateResponse builds the wire response from an engine result,
// honoring the payload-bounding options.
func NewSimulateResponse(res *montecarlo.Result, opts SimulateOptions) SimulateResponse {
	out := SimulateResponse{
		ID:         res.ID,
		CreatedAt:  res.CreatedAt,
		Statistics: res.Stats,
		Parameters: res.Request,
	}
	if !opts.OmitPaths {
		out.SimulationPaths = res.Paths
	}
	if !opts.OmitFinalValues {
		out.FinalValues = res.FinalValues
	}
	return out
}

// HistoryResponse represents the response from the history endpoint
type HistoryResponse struct {
	Simulations []history.Record `json:"simulations"`
}

// DefaultAssetsResponse represents the default configuration payload
type DefaultAssetsResponse struct {
	AssetClasses             []model.AssetClass `json:"asset_classes"`
	DefaultInitialInvestment float64            `json:"default_initial_investment"`
	DefaultTimeHorizon       int                `json:"default_time_horizon"`
	DefaultNumSimulations    int                `json:"default_num_simulations"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
