package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crm_backend/internal/services"
	"crm_backend/internal/services/dto"
)

type BillingHandler struct {
	*BaseHandler
	billingService services.BillingService
}

func NewBillingHandler(base *BaseHandler, billingService services.BillingService) *BillingHandler {
	return &BillingHandler{
		BaseHandler:    base,
		billingService: billingService,
	}
}

func (h *BillingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	billing := rg.Group("/billing")
	{
		billing.POST("", h.Create)
		billing.GET("", h.List)
		billing.GET("/:id", h.Get)
		billing.PATCH("/:id", h.Update)
		billing.DELETE("/:id", h.Delete)

		billing.POST("/:id/bank-accounts", h.AddBankAccount)
		billing.PATCH("/:id/bank-accounts/:accountID", h.UpdateBankAccount)
		billing.DELETE("/:id/bank-accounts/:accountID", h.DeleteBankAccount)
		billing.PUT("/:id/bank-accounts/:accountID/set-default", h.SetDefaultBankAccount)
		billing.PUT("/:id/bank-accounts/:accountID/verify", h.VerifyBankAccount)

		billing.PUT("/:id/verify-gst", h.VerifyGST)
		billing.PUT("/:id/verify-pan", h.VerifyPAN)
		billing.PUT("/:id/set-msme", h.SetMSME)
	}
}

func (h *BillingHandler) Create(c *gin.Context) {
	userID, role, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.CreateBillingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	billing, err := h.billingService.Create(userID, role, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, billing)
}

func (h *BillingHandler) List(c *gin.Context) {
	_, role, ok := h.Caller(c)
	if !ok {
		return
	}

	page, pageSize := ParsePagination(c)
	result, err := h.billingService.List(role, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *BillingHandler) Get(c *gin.Context) {
	_, role, ok := h.Caller(c)
	if !ok {
		return
	}

	billing, err := h.billingService.GetByID(role, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, billing)
}

func (h *BillingHandler) Update(c *gin.Context) {
	_, role, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.UpdateBillingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	billing, err := h.billingService.Update(role, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, billing)
}

func (h *BillingHandler) Delete(c *gin.Context) {
	_, role, ok := h.Caller(c)
	if !ok {
		return
	}

	if err := h.billingService.Delete(role, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Billing details deleted"})
}

func (h *BillingHandler) AddBankAccount(c *gin.Context) {
	_, role, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.CreateBankAccountRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	account, err := h.billingService.AddBankAccount(role, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, account)
}

func (h *BillingHandler) UpdateBankAccount(c *gin.Context) {
	_, role, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.UpdateBankAccountRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	account, err := h.billingService.UpdateBankAccount(role, c.Param("id"), c.Param("accountID"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *BillingHandler) DeleteBankAccount(c *gin.Context) {
	_, role, ok := h.Caller(c)
	if !ok {
		return
	}

	if err := h.billingService.DeleteBankAccount(role, c.Param("id"), c.Param("accountID")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Bank account deleted"})
}

func (h *BillingHandler) SetDefaultBankAccount(c *gin.Context) {
	_, role, ok := h.Caller(c)
	if !ok {
		return
	}

	billing, err := h.billingService.SetDefaultBankAccount(role, c.Param("id"), c.Param("accountID"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, billing)
}

func (h *BillingHandler) VerifyBankAccount(c *gin.Context) {
	_, role, ok := h.Caller(c)
	if !ok {
		return
	}

	account, err := h.billingService.VerifyBankAccount(role, c.Param("id"), c.Param("accountID"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *BillingHandler) VerifyGST(c *gin.Context) {
	_, role, ok := h.Caller(c)
	if !ok {
		return
	}

	billing, err := h.billingService.VerifyGST(role, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, billing)
}

func (h *BillingHandler) VerifyPAN(c *gin.Context) {
	_, role, ok := h.Caller(c)
	if !ok {
		return
	}

	billing, err := h.billingService.VerifyPAN(role, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, billing)
}

func (h *BillingHandler) SetMSME(c *gin.Context) {
	_, role, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.SetMSMERequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	billing, err := h.billingService.SetMSME(role, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, billing)
}
