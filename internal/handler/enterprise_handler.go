package handler

import (
	"net/http"
	"time"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type EnterpriseHandler struct {
	enterpriseService service.EnterpriseService
}

func NewEnterpriseHandler(enterpriseService service.EnterpriseService) *EnterpriseHandler {
	return &EnterpriseHandler{enterpriseService: enterpriseService}
}

func (h *EnterpriseHandler) RegisterRoutes(router *gin.RouterGroup) {
	enterprises := router.Group("/api/enterprises")
	enterprises.Use(middleware.RequireRole(model.RoleAdmin, model.RoleUser))
	{
		enterprises.GET("", h.ListEnterprises)
		enterprises.POST("", h.CreateEnterprise)
		enterprises.GET("/:id", h.GetEnterprise)
		enterprises.PUT("/:id", h.UpdateEnterprise)
		enterprises.DELETE("/:id", h.DeleteEnterprise)
	}
}

// ListEnterprises returns paginated enterprises with optional filters
// @Summary      List enterprises
// @Tags         enterprises
// @Security     BearerAuth
// @Produce      json
// @Param        page       query     int     false  "Page number (default: 1)"
// @Param        limit      query     int     false  "Items per page (default: 20)"
// @Param        keyword    query     string  false  "Search by name, unified social code, legal person"
// @Param        status     query     string  false  "Filter by status"
// @Param        industry   query     string  false  "Filter by industry"
// @Param        district   query     string  false  "Filter by district"
// @Param        start_date query     string  false  "Registered on or after (YYYY-MM-DD)"
// @Param        end_date   query     string  false  "Registered on or before (YYYY-MM-DD)"
// @Success      200        {object}  response.Response
// @Router       /api/enterprises [get]
func (h *EnterpriseHandler) ListEnterprises(c *gin.Context) {
	params := pagination.Parse(c)

	query := repository.EnterpriseListQuery{
		Page:     params.Page,
		PageSize: params.Limit,
		Keyword:  c.Query("keyword"),
		Status:   c.Query("status"),
		Industry: c.Query("industry"),
		District: c.Query("district"),
	}
	if s := c.Query("start_date"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			query.StartDate = &t
		}
	}
	if e := c.Query("end_date"); e != "" {
		if t, err := time.Parse("2006-01-02", e); err == nil {
			query.EndDate = &t
		}
	}

	list, err := h.enterpriseService.List(c.Request.Context(), query)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, list.Items, params.Page, params.Limit, list.Total))
}

// GetEnterprise returns a single enterprise by id
// @Summary      Get enterprise
// @Tags         enterprises
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Enterprise ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/enterprises/{id} [get]
func (h *EnterpriseHandler) GetEnterprise(c *gin.Context) {
	enterprise, err := h.enterpriseService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, enterprise))
}

// CreateEnterprise creates a new enterprise
// @Summary      Create enterprise
// @Tags         enterprises
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.EnterpriseRequest  true  "Enterprise payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/enterprises [post]
func (h *EnterpriseHandler) CreateEnterprise(c *gin.Context) {
	var req service.EnterpriseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	enterprise, err := h.enterpriseService.Create(c.Request.Context(), req, middleware.UserIDFromContext(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, enterprise))
}

// UpdateEnterprise updates an existing enterprise
// @Summary      Update enterprise
// @Tags         enterprises
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                     true  "Enterprise ID"
// @Param        payload  body  service.EnterpriseRequest  true  "Enterprise payload"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/enterprises/{id} [put]
func (h *EnterpriseHandler) UpdateEnterprise(c *gin.Context) {
	var req service.EnterpriseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	enterprise, err := h.enterpriseService.Update(c.Request.Context(), c.Param("id"), req, middleware.UserIDFromContext(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, enterprise))
}

// DeleteEnterprise soft-deletes an enterprise
// @Summary      Delete enterprise
// @Tags         enterprises
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Enterprise ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/enterprises/{id} [delete]
func (h *EnterpriseHandler) DeleteEnterprise(c *gin.Context) {
	if err := h.enterpriseService.Delete(c.Request.Context(), c.Param("id"), middleware.UserIDFromContext(c)); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Enterprise deleted successfully"}))
}
