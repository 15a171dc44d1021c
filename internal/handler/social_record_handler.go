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

type SocialRecordHandler struct {
	socialRecordService service.SocialRecordService
}

func NewSocialRecordHandler(socialRecordService service.SocialRecordService) *SocialRecordHandler {
	return &SocialRecordHandler{socialRecordService: socialRecordService}
}

func (h *SocialRecordHandler) RegisterRoutes(router *gin.RouterGroup) {
	records := router.Group("/api/social-records")
	records.Use(middleware.RequireRole(model.RoleAdmin, model.RoleUser))
	{
		records.GET("", h.ListSocialRecords)
		records.POST("", h.CreateSocialRecord)
		records.PUT("/:id", h.UpdateSocialRecord)
		records.DELETE("/:id", h.DeleteSocialRecord)
	}
}

// ListSocialRecords returns paginated social insurance records plus aggregates
// @Summary      List social insurance records
// @Tags         social-records
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default: 1)"
// @Param        limit  query     int  false  "Items per page (default: 20)"
// @Success      200    {object}  response.Response
// @Router       /api/social-records [get]
func (h *SocialRecordHandler) ListSocialRecords(c *gin.Context) {
	params := pagination.Parse(c)

	list, err := h.socialRecordService.List(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, list))
}

// CreateSocialRecord creates a social insurance record
// @Summary      Create social insurance record
// @Tags         social-records
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.SocialRecordRequest  true  "Social record payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/social-records [post]
func (h *SocialRecordHandler) CreateSocialRecord(c *gin.Context) {
	var req service.SocialRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	record, err := h.socialRecordService.Create(c.Request.Context(), req, middleware.UserIDFromContext(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, record))
}

// UpdateSocialRecord updates a social insurance record
// @Summary      Update social insurance record
// @Tags         social-records
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                       true  "Social record ID"
// @Param        payload  body  service.SocialRecordRequest  true  "Social record payload"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/social-records/{id} [put]
func (h *SocialRecordHandler) UpdateSocialRecord(c *gin.Context) {
	var req service.SocialRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	record, err := h.socialRecordService.Update(c.Request.Context(), c.Param("id"), req, middleware.UserIDFromContext(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, record))
}

// DeleteSocialRecord soft-deletes a social insurance record
// @Summary      Delete social insurance record
// @Tags         social-records
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Social record ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/social-records/{id} [delete]
func (h *SocialRecordHandler) DeleteSocialRecord(c *gin.Context) {
	if err := h.socialRecordService.Delete(c.Request.Context(), c.Param("id"), middleware.UserIDFromContext(c)); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Social record deleted successfully"}))
}
