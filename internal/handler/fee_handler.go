package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feewhiz/feewhiz/internal/dto"
	"github.com/feewhiz/feewhiz/internal/middleware"
	"github.com/feewhiz/feewhiz/internal/service"
)

type FeeHandler struct {
	svc *service.CalculatorService
}

func NewFeeHandler(svc *service.CalculatorService) *FeeHandler {
	return &FeeHandler{svc: svc}
}

func (h *FeeHandler) Calculate(c *gin.Context) {
	var req dto.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, err)
		return
	}

	calc, err := h.svc.Calculate(c.Request.Context(), service.CalculationRequest{
		Platform:        req.Platform,
		Amount:          req.Amount,
		TransactionType: req.TransactionType,
		Region:          req.Region,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCalculationResponse(calc))
}

func (h *FeeHandler) PlatformFee(c *gin.Context) {
	var q dto.FeeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		validationFailed(c, err)
		return
	}

	calc, err := h.svc.Calculate(c.Request.Context(), service.CalculationRequest{
		Platform:        c.Param("platform"),
		Amount:          q.Amount,
		TransactionType: q.TransactionType,
		Region:          q.Region,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCalculationResponse(calc))
}

func (h *FeeHandler) ListPlatforms(c *gin.Context) {
	platforms := h.svc.Platforms()
	data := make([]dto.PlatformResponse, len(platforms))
	for i, p := range platforms {
		data[i] = dto.NewPlatformResponse(p)
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (h *FeeHandler) GetPlatform(c *gin.Context) {
	info, err := h.svc.Platform(c.Param("platform"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPlatformResponse(*info))
}

func validationFailed(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, middleware.ErrorResponse{
		Error:   "validation failed",
		Details: err.Error(),
		Hint:    middleware.Hint,
	})
}
