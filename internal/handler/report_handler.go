package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/feewhiz/feewhiz/internal/dto"
	"github.com/feewhiz/feewhiz/internal/service"
)

type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) GetReport(c *gin.Context) {
	var q dto.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		validationFailed(c, err)
		return
	}

	data, err := h.svc.GenerateReport(c.Request.Context(), q.Amount, q.Region)
	if err != nil {
		_ = c.Error(err)
		return
	}

	wantsHTML := q.Format == "html" || strings.Contains(c.GetHeader("Accept"), "text/html")

	if wantsHTML {
		html, err := h.svc.RenderHTML(data)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
		return
	}

	c.JSON(http.StatusOK, dto.NewReportResponse(data))
}
