package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crm_backend/internal/services"
	"crm_backend/internal/services/dto"
)

type ProfileHandler struct {
	*BaseHandler
	profileService    services.ProfileService
	connectionService services.ConnectionService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService, connectionService services.ConnectionService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:       base,
		profileService:    profileService,
		connectionService: connectionService,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profiles := rg.Group("/profiles")
	{
		profiles.POST("", h.Create)
		profiles.GET("", h.List)
		profiles.GET("/:id", h.Get)
		profiles.PATCH("/:id", h.Update)
		profiles.DELETE("/:id", h.Delete)
		profiles.GET("/:id/billing", h.GetBilling)
	}
}

func (h *ProfileHandler) Create(c *gin.Context) {
	userID, role, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.CreateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.Create(userID, role, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

func (h *ProfileHandler) List(c *gin.Context) {
	userID, role, ok := h.Caller(c)
	if !ok {
		return
	}

	var query dto.ListProfilesQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.PageSize <= 0 {
		query.PageSize = 20
	}

	result, err := h.profileService.List(userID, role, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	userID, role, ok := h.Caller(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetByID(userID, role, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	userID, role, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.Update(userID, role, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	userID, role, ok := h.Caller(c)
	if !ok {
		return
	}

	if err := h.profileService.Delete(userID, role, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Profile deleted"})
}

func (h *ProfileHandler) GetBilling(c *gin.Context) {
	userID, role, ok := h.Caller(c)
	if !ok {
		return
	}

	billing, err := h.connectionService.GetProfileBilling(userID, role, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, billing)
}
