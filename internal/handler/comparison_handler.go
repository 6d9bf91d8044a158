package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feewhiz/feewhiz/internal/dto"
	"github.com/feewhiz/feewhiz/internal/service"
)

type ComparisonHandler struct {
	svc *service.ComparisonService
}

func NewComparisonHandler(svc *service.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{svc: svc}
}

func (h *ComparisonHandler) Compare(c *gin.Context) {
	var q dto.CompareQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		validationFailed(c, err)
		return
	}

	var amounts []float64
	if q.Amount > 0 {
		amounts = []float64{q.Amount}
	}

	cmp, err := h.svc.Compare(c.Request.Context(), q.PlatformA, q.PlatformB, amounts)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewComparisonResponse(cmp))
}

func (h *ComparisonHandler) Quote(c *gin.Context) {
	var q dto.QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		validationFailed(c, err)
		return
	}

	results, err := h.svc.Quote(c.Request.Context(), q.Amount, q.Region)
	if err != nil {
		_ = c.Error(err)
		return
	}

	data := make([]dto.CalculationResponse, len(results))
	for i, r := range results {
		data[i] = dto.NewCalculationResponse(r)
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}
