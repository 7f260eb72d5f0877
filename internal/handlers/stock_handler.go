package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/zhiyizhu805/FinShark/internal/errors"
	"github.com/zhiyizhu805/FinShark/internal/pagination"
	"github.com/zhiyizhu805/FinShark/internal/services"
)

// StockHandler handles stock-related requests.
type StockHandler struct {
	stockService services.StockServicer
	auditService services.AuditServicer
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockService services.StockServicer, auditService services.AuditServicer) *StockHandler {
	return &StockHandler{stockService: stockService, auditService: auditService}
}

// ListStocksRequest represents the query parameters for listing stocks.
// Filters, sorting and paging are all optional; blank filters match
// everything and unknown sort keys leave the natural order untouched.
type ListStocksRequest struct {
	CompanyName  string `form:"companyName"`
	Symbol       string `form:"symbol"`
	SortBy       string `form:"sortBy"`
	IsDescending bool   `form:"isDescending"`
	pagination.PageRequest
}

// CreateStockRequest represents the request payload for creating a stock.
type CreateStockRequest struct {
	Symbol      string  `json:"symbol" binding:"required,stock_symbol"`
	CompanyName string  `json:"company_name" binding:"required,min=1,max=255"`
	Purchase    float64 `json:"purchase" binding:"gte=0"`
	LastDiv     float64 `json:"last_div" binding:"gte=0"`
	Industry    string  `json:"industry" binding:"max=100"`
	MarketCap   int64   `json:"market_cap" binding:"gte=0"`
}

// UpdateStockRequest represents the request payload for updating a stock.
// All writable fields are replaced; the ID never changes.
type UpdateStockRequest struct {
	Symbol      string  `json:"symbol" binding:"required,stock_symbol"`
	CompanyName string  `json:"company_name" binding:"required,min=1,max=255"`
	Purchase    float64 `json:"purchase" binding:"gte=0"`
	LastDiv     float64 `json:"last_div" binding:"gte=0"`
	Industry    string  `json:"industry" binding:"max=100"`
	MarketCap   int64   `json:"market_cap" binding:"gte=0"`
}

// ListStocks handles the paginated, filtered listing of stocks.
// @Summary     List stocks
// @Description Get a filtered, sorted and paginated list of stocks
// @Tags        stocks
// @Produce     json
// @Param       companyName  query string false "Case-insensitive company name substring"
// @Param       symbol       query string false "Case-insensitive symbol substring"
// @Param       sortBy       query string false "Sort key (only \"symbol\" is recognized)"
// @Param       isDescending query bool   false "Sort direction when sortBy is set"
// @Param       pageNumber   query int    false "Page number, 1-based (default 1)"
// @Param       pageSize     query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Stock] "Paginated stocks"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stocks [get]
func (h *StockHandler) ListStocks(c *gin.Context) {
	var req ListStocksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter := services.StockFilter{
		CompanyName:  req.CompanyName,
		Symbol:       req.Symbol,
		SortBy:       req.SortBy,
		IsDescending: req.IsDescending,
	}

	result, err := h.stockService.ListStocks(filter, req.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetStock handles the retrieval of a single stock by ID.
// @Summary     Get a stock
// @Description Get a single stock with its comments by ID
// @Tags        stocks
// @Produce     json
// @Param       id path int true "Stock ID"
// @Success     200 {object} models.Stock "Stock"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Stock not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stocks/{id} [get]
func (h *StockHandler) GetStock(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	stock, err := h.stockService.GetStockByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stock": stock})
}

// CreateStock handles the creation of a new stock.
// @Summary     Create a stock
// @Description Create a new stock listing
// @Tags        stocks
// @Accept      json
// @Produce     json
// @Param       request body CreateStockRequest true "Stock details"
// @Success     201 {object} models.Stock "Stock created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stocks [post]
func (h *StockHandler) CreateStock(c *gin.Context) {
	var req CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	stock, err := h.stockService.CreateStock(services.StockInput{
		Symbol:      req.Symbol,
		CompanyName: req.CompanyName,
		Purchase:    req.Purchase,
		LastDiv:     req.LastDiv,
		Industry:    req.Industry,
		MarketCap:   req.MarketCap,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	userID, _ := getUserID(c)
	h.auditService.Log(userID, "CREATE_STOCK", "stock", stock.ID, c.ClientIP(),
		map[string]interface{}{"symbol": stock.Symbol, "company_name": stock.CompanyName})

	c.JSON(http.StatusCreated, gin.H{"stock": stock})
}

// UpdateStock handles the full replacement of a stock's writable fields.
// @Summary     Update a stock
// @Description Replace the writable fields of an existing stock
// @Tags        stocks
// @Accept      json
// @Produce     json
// @Param       id      path int                true "Stock ID"
// @Param       request body UpdateStockRequest true "New stock details"
// @Success     200 {object} models.Stock "Stock updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Stock not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stocks/{id} [put]
func (h *StockHandler) UpdateStock(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	stock, err := h.stockService.UpdateStock(id, services.StockInput{
		Symbol:      req.Symbol,
		CompanyName: req.CompanyName,
		Purchase:    req.Purchase,
		LastDiv:     req.LastDiv,
		Industry:    req.Industry,
		MarketCap:   req.MarketCap,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	userID, _ := getUserID(c)
	h.auditService.Log(userID, "UPDATE_STOCK", "stock", stock.ID, c.ClientIP(),
		map[string]interface{}{"symbol": stock.Symbol})

	c.JSON(http.StatusOK, gin.H{"stock": stock})
}

// DeleteStock handles the deletion of a stock.
// @Summary     Delete a stock
// @Description Delete a stock by ID
// @Tags        stocks
// @Produce     json
// @Param       id path int true "Stock ID"
// @Success     204 "Stock deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Stock not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stocks/{id} [delete]
func (h *StockHandler) DeleteStock(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.stockService.DeleteStock(id); err != nil {
		respondWithError(c, err)
		return
	}

	userID, _ := getUserID(c)
	h.auditService.Log(userID, "DELETE_STOCK", "stock", id, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
