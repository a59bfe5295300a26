package handler

import (
	"github.com/fundlink/backoffice/services/linkages/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the linkage service HTTP handlers
type Handler struct {
	linkageHandler *http.LinkageHandler
}

// NewHandler creates and initializes the linkage handlers
func NewHandler(linkageHandler *http.LinkageHandler) *Handler {
	return &Handler{linkageHandler: linkageHandler}
}

// RegisterRoutes registers the linkage endpoints
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/api/linkages")
	group.POST("", h.linkageHandler.CreateLinkage)
	group.GET("/:customerId", h.linkageHandler.GetLinkagesByCustomer)
	group.GET("/:customerId/category/:category", h.linkageHandler.GetLinkagesByCategory)
	group.GET("/:customerId/:fundId", h.linkageHandler.GetLinkageByKey)
	group.DELETE("/:customerId/:fundId", h.linkageHandler.DeleteLinkage)
}
