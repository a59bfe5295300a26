package handler

import (
	"github.com/fundlink/backoffice/services/funds/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the fund service HTTP handlers
type Handler struct {
	fundHandler *http.FundHandler
}

// NewHandler creates and initializes the fund handlers
func NewHandler(fundHandler *http.FundHandler) *Handler {
	return &Handler{fundHandler: fundHandler}
}

// RegisterRoutes registers the fund endpoints
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/api/funds")
	group.POST("", h.fundHandler.CreateFund)
	group.GET("", h.fundHandler.GetAllFunds)
	group.GET("/:fundId", h.fundHandler.GetFundByID)
	group.PUT("/:fundId", h.fundHandler.UpdateFund)
	group.DELETE("/:fundId", h.fundHandler.DeleteFund)
}
