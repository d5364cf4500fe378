package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/urbansim/signals-backend-go/internal/models"
	"github.com/urbansim/signals-backend-go/internal/service"
	"github.com/urbansim/signals-backend-go/pkg/response"
)

// SignalHandler handles HTTP requests for the signal roster
type SignalHandler struct {
	service *service.SignalService
}

// NewSignalHandler creates a new signal handler
func NewSignalHandler(service *service.SignalService) *SignalHandler {
	return &SignalHandler{service: service}
}

// GetSignals handles GET /api/v1/signals
func (h *SignalHandler) GetSignals(c *gin.Context) {
	var filter models.SignalFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	signals := h.service.GetSignals(filter)
	response.Success(c, gin.H{
		"data":  signals,
		"count": len(signals),
	})
}

// GetSignalCoordination handles GET /api/v1/signals/:id/coordination
func (h *SignalHandler) GetSignalCoordination(c *gin.Context) {
	view, ok := h.service.GetSignalCoordination(c.Param("id"))
	if !ok {
		response.Error(c, http.StatusNotFound, "Signal not found")
		return
	}

	response.Success(c, view)
}
