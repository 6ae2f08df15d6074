package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iwansal64/report-web-api/internal/models"
	"github.com/iwansal64/report-web-api/internal/services"
	"github.com/iwansal64/report-web-api/internal/utils"
)

type ReportHandler struct {
	reports *services.ReportService
}

type AddReportRequest struct {
	Message    string `json:"message" binding:"required"`
	PICName    string `json:"pic_name" binding:"required"`
	ReportType string `json:"report_type" binding:"required,oneof=behavior academic facility other"`
	FollowUp   string `json:"follow_up" binding:"required,oneof=student teacher admin"`
}

type ChangeStatusRequest struct {
	ReportID     string `json:"report_id" binding:"required"`
	ReportStatus string `json:"report_status" binding:"required,oneof=open in_progress resolved"`
}

type DeleteReportRequest struct {
	ReportID string `json:"report_id" binding:"required"`
}

type UpdateReportRequest struct {
	ReportID      string        `json:"report_id" binding:"required"`
	NewReportData NewReportData `json:"new_report_data" binding:"required"`
}

type NewReportData struct {
	Message    string `json:"message" binding:"required"`
	PICName    string `json:"pic_name" binding:"required"`
	ReportType string `json:"report_type" binding:"required,oneof=behavior academic facility other"`
	FollowUp   string `json:"follow_up" binding:"required,oneof=student teacher admin"`
	Status     string `json:"status" binding:"required,oneof=open in_progress resolved"`
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) Add(c *gin.Context) {
	var req AddReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	if err := h.reports.Create(c.Request.Context(), req.Message, req.PICName, req.ReportType, req.FollowUp); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "report created"})
}

func (h *ReportHandler) List(c *gin.Context) {
	reports, err := h.reports.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

func (h *ReportHandler) ChangeStatus(c *gin.Context) {
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	if err := h.reports.SetStatus(c.Request.Context(), req.ReportID, req.ReportStatus); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

func (h *ReportHandler) Delete(c *gin.Context) {
	var req DeleteReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	if err := h.reports.Delete(c.Request.Context(), req.ReportID); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "report deleted"})
}

// Update overwrites every mutable field of the report. Admin-gated.
func (h *ReportHandler) Update(c *gin.Context) {
	var req UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	update := models.ReportUpdate{
		Message:     req.NewReportData.Message,
		ReportType:  req.NewReportData.ReportType,
		FollowUp:    req.NewReportData.FollowUp,
		Status:      req.NewReportData.Status,
		PICUsername: req.NewReportData.PICName,
	}

	if err := h.reports.Update(c.Request.Context(), req.ReportID, update); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "report updated"})
}
