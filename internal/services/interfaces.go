// Package services owns all database access and business rules. Handlers
// talk to services through the interfaces below and never touch GORM
// directly.
package services

import (
	"github.com/zhiyizhu805/FinShark/internal/models"
	"github.com/zhiyizhu805/FinShark/internal/pagination"
)

// StockFilter is the declarative list specification for stocks: free-text
// substring filters plus a sort key and direction. Blank filters are
// skipped; substring matching is case-insensitive. A SortBy value other
// than "symbol" (compared case-insensitively) is ignored and the result
// keeps the storage's natural (primary key) order.
type StockFilter struct {
	CompanyName  string
	Symbol       string
	SortBy       string
	IsDescending bool
}

// StockInput carries the writable fields of a stock for create and update.
type StockInput struct {
	Symbol      string
	CompanyName string
	Purchase    float64
	LastDiv     float64
	Industry    string
	MarketCap   int64
}

// StockServicer defines the contract for stock-related business logic.
type StockServicer interface {
	ListStocks(filter StockFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Stock], error)
	GetStockByID(id uint) (*models.Stock, error)
	GetStockBySymbol(symbol string) (*models.Stock, error)
	StockExists(id uint) (bool, error)
	CreateStock(input StockInput) (*models.Stock, error)
	UpdateStock(id uint, input StockInput) (*models.Stock, error)
	DeleteStock(id uint) error
}

// CommentServicer defines the contract for comment-related business logic.
// CreateComment does not verify the referenced stock exists; callers must
// check via StockServicer.StockExists before creating.
type CommentServicer interface {
	GetComments() ([]models.Comment, error)
	GetCommentByID(id uint) (*models.Comment, error)
	CreateComment(stockID, userID uint, title, content string) (*models.Comment, error)
	UpdateComment(id uint, title, content string) (*models.Comment, error)
	DeleteComment(id uint) error
}

// PortfolioServicer defines the contract for portfolio holdings. All
// operations take the already-resolved user ID of the authenticated user.
type PortfolioServicer interface {
	GetUserPortfolio(userID uint) ([]models.Stock, error)
	AddStock(userID uint, symbol string) (*models.Portfolio, error)
	RemoveStock(userID uint, symbol string) error
}

// UserServicer defines the contract for user accounts.
type UserServicer interface {
	CreateUser(username, email, password string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
