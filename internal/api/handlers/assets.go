package handlers

import (
	"net/http"

	"portfolio-analyzer/internal/api/models"
	"portfolio-analyzer/internal/montecarlo"

	"github.com/gin-gonic/gin"
)

// ListDefaultAssets handles GET /api/v1/default-assets
func ListDefaultAssets(c *gin.Context) {
	defaults := montecarlo.DefaultAssetClasses()
	c.JSON(http.StatusOK, models.DefaultAssetsResponse{
		AssetClasses:             defaults.AssetClasses,
		DefaultInitialInvestment: defaults.InitialInvestment,
		DefaultTimeHorizon:       defaults.TimeHorizon,
		DefaultNumSimulations:    defaults.NumSimulations,
	})
}
