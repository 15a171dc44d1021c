package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type VersionRecordHandler struct {
	versionService service.VersionRecordService
}

func NewVersionRecordHandler(versionService service.VersionRecordService) *VersionRecordHandler {
	return &VersionRecordHandler{versionService: versionService}
}

func (h *VersionRecordHandler) RegisterRoutes(router *gin.RouterGroup) {
	versions := router.Group("/api/version-records")
	{
		versions.GET("", middleware.RequireRole(model.RoleAdmin, model.RoleUser), h.ListVersionRecords)
		versions.POST("", middleware.RequireRole(model.RoleAdmin, model.RoleUser), h.CreateVersionRecord)
		versions.POST("/:id/review", middleware.RequireRole(model.RoleAdmin), h.ReviewVersionRecord)
	}
}

// ListVersionRecords returns paginated data version submissions
// @Summary      List version records
// @Tags         version-records
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default: 1)"
// @Param        limit  query     int  false  "Items per page (default: 20)"
// @Success      200    {object}  response.Response
// @Router       /api/version-records [get]
func (h *VersionRecordHandler) ListVersionRecords(c *gin.Context) {
	params := pagination.Parse(c)

	records, total, err := h.versionService.List(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, records, params.Page, params.Limit, total))
}

// CreateVersionRecord submits a new data version for review
// @Summary      Create version record
// @Tags         version-records
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.VersionRecordRequest  true  "Version record payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/version-records [post]
func (h *VersionRecordHandler) CreateVersionRecord(c *gin.Context) {
	var req service.VersionRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	record, err := h.versionService.Create(c.Request.Context(), req, middleware.UserIDFromContext(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, record))
}

// ReviewVersionRecord approves or rejects a pending version record
// @Summary      Review version record
// @Tags         version-records
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                        true  "Version record ID"
// @Param        payload  body  service.ReviewVersionRequest  true  "Review decision payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/version-records/{id}/review [post]
func (h *VersionRecordHandler) ReviewVersionRecord(c *gin.Context) {
	var req service.ReviewVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	record, err := h.versionService.Review(c.Request.Context(), c.Param("id"), req, middleware.UserIDFromContext(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, record))
}
