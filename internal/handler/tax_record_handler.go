package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type TaxRecordHandler struct {
	taxRecordService service.TaxRecordService
}

func NewTaxRecordHandler(taxRecordService service.TaxRecordService) *TaxRecordHandler {
	return &TaxRecordHandler{taxRecordService: taxRecordService}
}

func (h *TaxRecordHandler) RegisterRoutes(router *gin.RouterGroup) {
	records := router.Group("/api/enterprises/:id/tax-records")
	records.Use(middleware.RequireRole(model.RoleAdmin, model.RoleUser))
	{
		records.GET("", h.ListTaxRecords)
		records.POST("", h.CreateTaxRecord)
		records.GET("/:recordId", h.GetTaxRecord)
		records.PUT("/:recordId", h.UpdateTaxRecord)
		records.DELETE("/:recordId", h.DeleteTaxRecord)
	}

	unprocessed := router.Group("/api/tax-records")
	unprocessed.Use(middleware.RequireRole(model.RoleAdmin, model.RoleUser))
	{
		unprocessed.GET("/unprocessed", h.ListUnprocessedTaxRecords)
	}
}

// ListTaxRecords returns all tax records of an enterprise, newest period first
// @Summary      List tax records
// @Tags         tax-records
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Enterprise ID"
// @Success      200  {object}  response.Response
// @Router       /api/enterprises/{id}/tax-records [get]
func (h *TaxRecordHandler) ListTaxRecords(c *gin.Context) {
	records, err := h.taxRecordService.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, records))
}

// GetTaxRecord returns a single tax record scoped to its enterprise
// @Summary      Get tax record
// @Tags         tax-records
// @Security     BearerAuth
// @Produce      json
// @Param        id        path      string  true  "Enterprise ID"
// @Param        recordId  path      string  true  "Tax record ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/enterprises/{id}/tax-records/{recordId} [get]
func (h *TaxRecordHandler) GetTaxRecord(c *gin.Context) {
	record, err := h.taxRecordService.Get(c.Request.Context(), c.Param("id"), c.Param("recordId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, record))
}

// CreateTaxRecord creates a tax record under an enterprise
// @Summary      Create tax record
// @Tags         tax-records
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                    true  "Enterprise ID"
// @Param        payload  body  service.TaxRecordRequest  true  "Tax record payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/enterprises/{id}/tax-records [post]
func (h *TaxRecordHandler) CreateTaxRecord(c *gin.Context) {
	var req service.TaxRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	record, err := h.taxRecordService.Create(c.Request.Context(), c.Param("id"), req, middleware.UserIDFromContext(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, record))
}

// UpdateTaxRecord updates a tax record scoped to its enterprise
// @Summary      Update tax record
// @Tags         tax-records
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id        path  string                    true  "Enterprise ID"
// @Param        recordId  path  string                    true  "Tax record ID"
// @Param        payload   body  service.TaxRecordRequest  true  "Tax record payload"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/enterprises/{id}/tax-records/{recordId} [put]
func (h *TaxRecordHandler) UpdateTaxRecord(c *gin.Context) {
	var req service.TaxRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	record, err := h.taxRecordService.Update(c.Request.Context(), c.Param("id"), c.Param("recordId"), req, middleware.UserIDFromContext(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, record))
}

// DeleteTaxRecord soft-deletes a tax record and returns the deleted row
// @Summary      Delete tax record
// @Tags         tax-records
// @Security     BearerAuth
// @Produce      json
// @Param        id        path      string  true  "Enterprise ID"
// @Param        recordId  path      string  true  "Tax record ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/enterprises/{id}/tax-records/{recordId} [delete]
func (h *TaxRecordHandler) DeleteTaxRecord(c *gin.Context) {
	record, err := h.taxRecordService.Delete(c.Request.Context(), c.Param("id"), c.Param("recordId"), middleware.UserIDFromContext(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, record))
}

// ListUnprocessedTaxRecords returns paid tax records not yet linked to a refund
// @Summary      List unprocessed tax records
// @Tags         tax-records
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/tax-records/unprocessed [get]
func (h *TaxRecordHandler) ListUnprocessedTaxRecords(c *gin.Context) {
	records, err := h.taxRecordService.ListUnprocessed(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, records))
}
