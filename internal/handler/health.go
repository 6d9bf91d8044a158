package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feewhiz/feewhiz/internal/fee"
	"github.com/feewhiz/feewhiz/internal/repository"
)

type HealthHandler struct {
	dispatcher *fee.Dispatcher
	repo       *repository.RateTableRepository
}

// NewHealthHandler reports rate-table status. repo may be nil when rate
// tables are not read from Postgres.
func NewHealthHandler(dispatcher *fee.Dispatcher, repo *repository.RateTableRepository) *HealthHandler {
	return &HealthHandler{dispatcher: dispatcher, repo: repo}
}

func (h *HealthHandler) Health(c *gin.Context) {
	loaded := []string{}
	for _, calc := range h.dispatcher.Available() {
		loaded = append(loaded, string(calc.Platform()))
	}
	failures := h.dispatcher.Failures()
	unavailable := []string{}
	for _, desc := range fee.Platforms() {
		if _, failed := failures[desc.ID]; failed {
			unavailable = append(unavailable, string(desc.ID))
		}
	}

	body := gin.H{
		"status":      "healthy",
		"platforms":   loaded,
		"unavailable": unavailable,
	}
	status := http.StatusOK
	if len(loaded) == 0 {
		body["status"] = "unhealthy"
		status = http.StatusServiceUnavailable
	} else if len(unavailable) > 0 {
		body["status"] = "degraded"
	}

	if h.repo != nil {
		stored, err := h.repo.Platforms(c.Request.Context())
		if err != nil {
			body["status"] = "unhealthy"
			body["database"] = "disconnected"
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
		body["database"] = "connected"
		body["stored_platforms"] = len(stored)
	}

	c.JSON(status, body)
}
