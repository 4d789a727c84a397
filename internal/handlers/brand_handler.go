package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crm_backend/internal/services"
	"crm_backend/internal/services/dto"
)

type BrandHandler struct {
	*BaseHandler
	brandService      services.BrandService
	connectionService services.ConnectionService
}

func NewBrandHandler(base *BaseHandler, brandService services.BrandService, connectionService services.ConnectionService) *BrandHandler {
	return &BrandHandler{
		BaseHandler:       base,
		brandService:      brandService,
		connectionService: connectionService,
	}
}

func (h *BrandHandler) RegisterRoutes(rg *gin.RouterGroup) {
	brands := rg.Group("/brands")
	{
		brands.POST("", h.Create)
		brands.GET("", h.List)
		brands.GET("/:id", h.Get)
		brands.PATCH("/:id", h.Update)
		brands.DELETE("/:id", h.Delete)
		brands.GET("/:id/billing", h.GetBilling)

		brands.POST("/:id/pocs", h.AddPOC)
		brands.PATCH("/:id/pocs/:pocID", h.UpdatePOC)
		brands.DELETE("/:id/pocs/:pocID", h.DeletePOC)
	}
}

func (h *BrandHandler) Create(c *gin.Context) {
	userID, role, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.CreateBrandRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	brand, err := h.brandService.Create(userID, role, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, brand)
}

func (h *BrandHandler) List(c *gin.Context) {
	userID, role, ok := h.Caller(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)
	result, err := h.brandService.List(userID, role, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *BrandHandler) Get(c *gin.Context) {
	userID, role, ok := h.Caller(c)
	if !ok {
		return
	}

	brand, err := h.brandService.GetByID(userID, role, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, brand)
}

func (h *BrandHandler) Update(c *gin.Context) {
	userID, role, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.UpdateBrandRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	brand, err := h.brandService.Update(userID, role, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, brand)
}

func (h *BrandHandler) Delete(c *gin.Context) {
	userID, role, ok := h.Caller(c)
	if !ok {
		return
	}

	if err := h.brandService.Delete(userID, role, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Brand deleted"})
}

func (h *BrandHandler) GetBilling(c *gin.Context) {
	userID, role, ok := h.Caller(c)
	if !ok {
		return
	}

	billing, err := h.connectionService.GetBrandBilling(userID, role, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, billing)
}

func (h *BrandHandler) AddPOC(c *gin.Context) {
	userID, role, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.CreatePOCRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	poc, err := h.brandService.AddPOC(userID, role, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, poc)
}

func (h *BrandHandler) UpdatePOC(c *gin.Context) {
	userID, role, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.UpdatePOCRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	poc, err := h.brandService.UpdatePOC(userID, role, c.Param("id"), c.Param("pocID"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, poc)
}

func (h *BrandHandler) DeletePOC(c *gin.Context) {
	userID, role, ok := h.Caller(c)
	if !ok {
		return
	}

	if err := h.brandService.DeletePOC(userID, role, c.Param("id"), c.Param("pocID")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "POC deleted"})
}
