package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iwansal64/report-web-api/internal/services"
	"github.com/iwansal64/report-web-api/internal/utils"
)

type PICHandler struct {
	reports *services.ReportService
}

func NewPICHandler(reports *services.ReportService) *PICHandler {
	return &PICHandler{reports: reports}
}

// List returns the person-in-charge directory for the report form.
func (h *PICHandler) List(c *gin.Context) {
	pics, err := h.reports.ListPICs(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pics)
}
