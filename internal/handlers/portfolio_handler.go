package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/zhiyizhu805/FinShark/internal/errors"
	"github.com/zhiyizhu805/FinShark/internal/services"
)

// PortfolioHandler handles portfolio-related requests. All routes require
// authentication; the acting user always comes from the token, never from
// the request body.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
	auditService     services.AuditServicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService services.PortfolioServicer, auditService services.AuditServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService, auditService: auditService}
}

// symbolQuery extracts and trims the required symbol query parameter.
func symbolQuery(c *gin.Context) (string, error) {
	symbol := strings.TrimSpace(c.Query("symbol"))
	if symbol == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "symbol is required")
	}
	return symbol, nil
}

// GetPortfolio handles the retrieval of the authenticated user's holdings.
// @Summary     Get portfolio
// @Description Get the stocks held by the authenticated user
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Stock "Held stocks"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stocks, err := h.portfolioService.GetUserPortfolio(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stocks": stocks})
}

// AddStock handles adding a stock to the authenticated user's portfolio.
// @Summary     Add a holding
// @Description Add the stock with the given symbol to the authenticated user's portfolio
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Param       symbol query string true "Stock symbol (case-insensitive)"
// @Success     201 {object} models.Portfolio "Holding created"
// @Failure     400 {object} ErrorResponse "Missing symbol"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Stock not found"
// @Failure     409 {object} ErrorResponse "Stock already in portfolio"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio [post]
func (h *PortfolioHandler) AddStock(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	symbol, err := symbolQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	holding, err := h.portfolioService.AddStock(userID, symbol)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "ADD_HOLDING", "portfolio", holding.StockID, c.ClientIP(),
		map[string]interface{}{"symbol": symbol})

	c.JSON(http.StatusCreated, gin.H{"holding": holding})
}

// RemoveStock handles removing a stock from the authenticated user's portfolio.
// @Summary     Remove a holding
// @Description Remove the stock with the given symbol from the authenticated user's portfolio
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Param       symbol query string true "Stock symbol (case-insensitive)"
// @Success     204 "Holding removed"
// @Failure     400 {object} ErrorResponse "Missing symbol"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Stock not in portfolio"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio [delete]
func (h *PortfolioHandler) RemoveStock(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	symbol, err := symbolQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.portfolioService.RemoveStock(userID, symbol); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "REMOVE_HOLDING", "portfolio", 0, c.ClientIP(),
		map[string]interface{}{"symbol": symbol})

	c.Status(http.StatusNoContent)
}
