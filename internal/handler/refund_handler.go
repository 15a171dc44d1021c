package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type RefundHandler struct {
	refundService service.RefundService
	configService service.RefundConfigService
}

func NewRefundHandler(refundService service.RefundService, configService service.RefundConfigService) *RefundHandler {
	return &RefundHandler{
		refundService: refundService,
		configService: configService,
	}
}

func (h *RefundHandler) RegisterRoutes(router *gin.RouterGroup) {
	config := router.Group("/api/tax-refund-config")
	config.Use(middleware.RequireRole(model.RoleAdmin, model.RoleUser))
	{
		config.GET("", h.GetRefundConfig)
		config.POST("", h.ReplaceRefundConfig)
	}

	refunds := router.Group("/api/tax-refund")
	refunds.Use(middleware.RequireRole(model.RoleAdmin, model.RoleUser))
	{
		refunds.GET("", h.ListRefunds)
		refunds.POST("/calculate", h.CalculateRefund)
		refunds.PUT("/:id/status", h.UpdateRefundStatus)
	}
}

// GetRefundConfig returns the active refund rates plus the config history
// @Summary      Get refund configuration
// @Tags         tax-refund
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/tax-refund-config [get]
func (h *RefundHandler) GetRefundConfig(c *gin.Context) {
	rates, err := h.configService.GetActiveRates(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	history, err := h.configService.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"active":  rates,
		"history": history,
	}))
}

// ReplaceRefundConfig replaces the active refund rate generation
// @Summary      Replace refund configuration
// @Tags         tax-refund
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.RefundConfigRequest  true  "Refund rates payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/tax-refund-config [post]
func (h *RefundHandler) ReplaceRefundConfig(c *gin.Context) {
	var req service.RefundConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	if err := h.configService.ReplaceAll(c.Request.Context(), req, middleware.UserIDFromContext(c)); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Refund configuration updated successfully"}))
}

// ListRefunds returns refunds filtered by period range, enterprise name, status
// @Summary      List tax refunds
// @Tags         tax-refund
// @Security     BearerAuth
// @Produce      json
// @Param        start_period     query     string  false  "Inclusive lower period bound (YYYY-MM)"
// @Param        end_period       query     string  false  "Inclusive upper period bound (YYYY-MM)"
// @Param        enterprise_name  query     string  false  "Filter by enterprise name"
// @Param        status           query     string  false  "Filter by refund status"
// @Success      200  {object}  response.Response
// @Router       /api/tax-refund [get]
func (h *RefundHandler) ListRefunds(c *gin.Context) {
	query := repository.TaxRefundListQuery{
		StartPeriod:    c.Query("start_period"),
		EndPeriod:      c.Query("end_period"),
		EnterpriseName: c.Query("enterprise_name"),
		Status:         c.Query("status"),
	}

	refunds, err := h.refundService.List(c.Request.Context(), query)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, refunds))
}

// CalculateRefund computes a refund from paid tax records and persists it
// @Summary      Calculate tax refund
// @Tags         tax-refund
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CalculateRefundRequest  true  "Calculation payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /api/tax-refund/calculate [post]
func (h *RefundHandler) CalculateRefund(c *gin.Context) {
	var req service.CalculateRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	refund, err := h.refundService.Calculate(c.Request.Context(), req, middleware.UserIDFromContext(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, refund))
}

// UpdateRefundStatus transitions a refund to a new processing status
// @Summary      Update refund status
// @Tags         tax-refund
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                             true  "Refund ID"
// @Param        payload  body  service.UpdateRefundStatusRequest  true  "Status payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/tax-refund/{id}/status [put]
func (h *RefundHandler) UpdateRefundStatus(c *gin.Context) {
	var req service.UpdateRefundStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	if err := h.refundService.UpdateStatus(c.Request.Context(), c.Param("id"), req, middleware.UserIDFromContext(c)); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Refund status updated successfully"}))
}
