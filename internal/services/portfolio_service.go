package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/zhiyizhu805/FinShark/internal/errors"
	"github.com/zhiyizhu805/FinShark/internal/models"
)

// portfolioService handles portfolio holdings. It consults the stock
// service for symbol resolution but owns the holdings table itself.
type portfolioService struct {
	db     *gorm.DB
	stocks StockServicer
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(db *gorm.DB, stocks StockServicer) PortfolioServicer {
	return &portfolioService{db: db, stocks: stocks}
}

// GetUserPortfolio returns the stocks held by a user, projected straight
// from the join. Portfolio rows themselves never leave this package.
func (s *portfolioService) GetUserPortfolio(userID uint) ([]models.Stock, error) {
	var stocks []models.Stock
	err := s.db.Model(&models.Portfolio{}).
		Select("stocks.id, stocks.created_at, stocks.updated_at, stocks.symbol, stocks.company_name, stocks.purchase, stocks.last_div, stocks.industry, stocks.market_cap").
		Joins("JOIN stocks ON stocks.id = portfolios.stock_id").
		Where("portfolios.user_id = ?", userID).
		Scan(&stocks).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return stocks, nil
}

// AddStock adds the stock with the given symbol to the user's portfolio.
// The upfront duplicate check only exists for a friendly error message;
// the composite primary key on (user_id, stock_id) is the guard that
// holds under concurrency, and its rejection maps to the same conflict.
func (s *portfolioService) AddStock(userID uint, symbol string) (*models.Portfolio, error) {
	stock, err := s.stocks.GetStockBySymbol(symbol)
	if err != nil {
		return nil, err
	}

	var count int64
	err = s.db.Model(&models.Portfolio{}).
		Where("user_id = ? AND stock_id = ?", userID, stock.ID).
		Count(&count).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateHolding
	}

	holding := &models.Portfolio{UserID: userID, StockID: stock.ID}
	if err := s.db.Create(holding).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateHolding
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return holding, nil
}

// RemoveStock deletes the user's holding located through the stock's
// symbol, case-insensitively. Anything other than exactly one match is
// reported as not found.
func (s *portfolioService) RemoveStock(userID uint, symbol string) error {
	var holdings []models.Portfolio
	err := s.db.
		Joins("JOIN stocks ON stocks.id = portfolios.stock_id").
		Where("portfolios.user_id = ? AND LOWER(stocks.symbol) = ?", userID, strings.ToLower(symbol)).
		Find(&holdings).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(holdings) != 1 {
		return apperrors.ErrHoldingNotFound
	}

	err = s.db.
		Where("user_id = ? AND stock_id = ?", holdings[0].UserID, holdings[0].StockID).
		Delete(&models.Portfolio{}).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// isUniqueConstraintError checks if a GORM error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // SQLite
		strings.Contains(msg, "duplicate key value violates unique constraint") // PostgreSQL
}
