package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crm_backend/internal/services"
	"crm_backend/internal/services/dto"
)

type ConnectionHandler struct {
	*BaseHandler
	connectionService services.ConnectionService
}

func NewConnectionHandler(base *BaseHandler, connectionService services.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{
		BaseHandler:       base,
		connectionService: connectionService,
	}
}

func (h *ConnectionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	connections := rg.Group("/billing-connections")
	{
		connections.POST("/connect", h.Connect)
		connections.POST("/disconnect", h.Disconnect)
		connections.GET("/:billingID/billing-users", h.BillingUsers)
	}
}

func (h *ConnectionHandler) Connect(c *gin.Context) {
	_, role, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.ConnectBillingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.connectionService.Connect(role, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ConnectionHandler) Disconnect(c *gin.Context) {
	_, role, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.DisconnectBillingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.connectionService.Disconnect(role, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ConnectionHandler) BillingUsers(c *gin.Context) {
	_, role, ok := h.Caller(c)
	if !ok {
		return
	}

	result, err := h.connectionService.BillingUsers(role, c.Param("billingID"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
