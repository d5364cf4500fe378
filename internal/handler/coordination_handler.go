package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/urbansim/signals-backend-go/internal/service"
	"github.com/urbansim/signals-backend-go/pkg/response"
)

// AnalyzeRequest carries the optional corridor-detection parameters.
// Zero values fall back to the configured defaults.
type AnalyzeRequest struct {
	MaxSpacingM           float64 `json:"maxSpacingM"`
	MaxBearingVarianceDeg float64 `json:"maxBearingVarianceDeg"`
}

// UpdateSpeedRequest carries a corridor's new design speed.
type UpdateSpeedRequest struct {
	TargetSpeedKmh float64 `json:"targetSpeedKmh" binding:"required,gt=0"`
}

// CoordinationHandler handles HTTP requests for corridors and coordination
// state
type CoordinationHandler struct {
	service *service.CoordinationService
}

// NewCoordinationHandler creates a new coordination handler
func NewCoordinationHandler(service *service.CoordinationService) *CoordinationHandler {
	return &CoordinationHandler{service: service}
}

// Analyze handles POST /api/v1/coordination/analyze
func (h *CoordinationHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}
	}

	result := h.service.Analyze(req.MaxSpacingM, req.MaxBearingVarianceDeg)
	response.Success(c, result)
}

// GetCorridors handles GET /api/v1/corridors
func (h *CoordinationHandler) GetCorridors(c *gin.Context) {
	corridors := h.service.GetCorridors()
	response.Success(c, gin.H{
		"data":  corridors,
		"count": len(corridors),
	})
}

// GetCorridor handles GET /api/v1/corridors/:id
func (h *CoordinationHandler) GetCorridor(c *gin.Context) {
	corridor, ok := h.service.GetCorridor(c.Param("id"))
	if !ok {
		response.NotFound(c, "Corridor not found")
		return
	}

	response.Success(c, corridor)
}

// UpdateCorridorSpeed handles PUT /api/v1/corridors/:id/speed
func (h *CoordinationHandler) UpdateCorridorSpeed(c *gin.Context) {
	var req UpdateSpeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "targetSpeedKmh must be a positive number")
		return
	}

	corridor, ok := h.service.UpdateCorridorSpeed(c.Param("id"), req.TargetSpeedKmh)
	if !ok {
		response.NotFound(c, "Corridor not found")
		return
	}

	response.Success(c, corridor)
}

// GetStats handles GET /api/v1/coordination/stats
func (h *CoordinationHandler) GetStats(c *gin.Context) {
	response.Success(c, h.service.GetStats())
}

// Reset handles POST /api/v1/coordination/reset
func (h *CoordinationHandler) Reset(c *gin.Context) {
	h.service.Reset()
	response.Success(c, gin.H{"message": "coordination state cleared"})
}
