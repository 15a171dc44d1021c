package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type FinancialReportHandler struct {
	reportService service.FinancialReportService
}

func NewFinancialReportHandler(reportService service.FinancialReportService) *FinancialReportHandler {
	return &FinancialReportHandler{reportService: reportService}
}

func (h *FinancialReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/api/financial-reports")
	reports.Use(middleware.RequireRole(model.RoleAdmin, model.RoleUser))
	{
		reports.GET("", h.ListFinancialReports)
		reports.POST("", h.CreateFinancialReport)
	}
}

// ListFinancialReports returns reports filtered by date range, name, status, type
// @Summary      List financial reports
// @Tags         financial-reports
// @Security     BearerAuth
// @Produce      json
// @Param        start_date       query     string  false  "Uploaded on or after (YYYY-MM-DD)"
// @Param        end_date         query     string  false  "Uploaded on or before (YYYY-MM-DD)"
// @Param        enterprise_name  query     string  false  "Filter by enterprise name"
// @Param        process_status   query     string  false  "Filter by processing status"
// @Param        report_type      query     string  false  "Filter by report type"
// @Success      200  {object}  response.Response
// @Router       /api/financial-reports [get]
func (h *FinancialReportHandler) ListFinancialReports(c *gin.Context) {
	query := service.FinancialReportListQuery{
		StartDate:      c.Query("start_date"),
		EndDate:        c.Query("end_date"),
		EnterpriseName: c.Query("enterprise_name"),
		ProcessStatus:  c.Query("process_status"),
		ReportType:     c.Query("report_type"),
	}

	reports, err := h.reportService.List(c.Request.Context(), query)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, reports))
}

// CreateFinancialReport registers a financial report's metadata
// @Summary      Create financial report
// @Tags         financial-reports
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.FinancialReportRequest  true  "Financial report payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/financial-reports [post]
func (h *FinancialReportHandler) CreateFinancialReport(c *gin.Context) {
	var req service.FinancialReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	report, err := h.reportService.Create(c.Request.Context(), req, middleware.UserIDFromContext(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, report))
}
