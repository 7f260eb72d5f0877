package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/zhiyizhu805/FinShark/internal/errors"
	"github.com/zhiyizhu805/FinShark/internal/models"
	"github.com/zhiyizhu805/FinShark/internal/pagination"
)

// stockService handles stock-related business logic.
type stockService struct {
	db *gorm.DB
}

// NewStockService creates a new StockServicer.
func NewStockService(db *gorm.DB) StockServicer {
	return &stockService{db: db}
}

// stockFilterScope compiles a StockFilter into GORM conditions. Substring
// filters compare lowercased on both sides so behavior does not depend on
// the storage collation.
func stockFilterScope(filter StockFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if name := strings.TrimSpace(filter.CompanyName); name != "" {
			db = db.Where("LOWER(company_name) LIKE ?", "%"+strings.ToLower(name)+"%")
		}
		if symbol := strings.TrimSpace(filter.Symbol); symbol != "" {
			db = db.Where("LOWER(symbol) LIKE ?", "%"+strings.ToLower(symbol)+"%")
		}
		return db
	}
}

// stockSortScope applies the requested ordering. Only "symbol" is a
// recognized sort key; anything else leaves the natural order.
func stockSortScope(filter StockFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !strings.EqualFold(filter.SortBy, "symbol") {
			return db
		}
		if filter.IsDescending {
			return db.Order("symbol DESC")
		}
		return db.Order("symbol ASC")
	}
}

// ListStocks returns one page of stocks matching the filter, hydrated with
// their comments and each comment's author. Filtering, sorting, and paging
// compose in that order.
func (s *stockService) ListStocks(filter StockFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Stock], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Stock{}).Scopes(stockFilterScope(filter))
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var stocks []models.Stock
	err := base.
		Preload("Comments").
		Preload("Comments.User").
		Scopes(stockSortScope(filter), pagination.Paginate(page)).
		Find(&stocks).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(stocks, page.PageNumber, page.PageSize, totalItems)
	return &result, nil
}

// GetStockByID returns a stock with its comments and comment authors.
func (s *stockService) GetStockByID(id uint) (*models.Stock, error) {
	var stock models.Stock
	err := s.db.Preload("Comments").Preload("Comments.User").First(&stock, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStockNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &stock, nil
}

// GetStockBySymbol returns the stock whose symbol matches case-insensitively.
func (s *stockService) GetStockBySymbol(symbol string) (*models.Stock, error) {
	var stock models.Stock
	err := s.db.Where("LOWER(symbol) = ?", strings.ToLower(symbol)).First(&stock).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStockNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &stock, nil
}

// StockExists reports whether a stock with the given ID exists.
func (s *stockService) StockExists(id uint) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Stock{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count > 0, nil
}

// CreateStock creates a new stock record.
func (s *stockService) CreateStock(input StockInput) (*models.Stock, error) {
	if strings.TrimSpace(input.Symbol) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Symbol is required")
	}
	if strings.TrimSpace(input.CompanyName) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Company name is required")
	}

	stock := &models.Stock{
		Symbol:      input.Symbol,
		CompanyName: input.CompanyName,
		Purchase:    input.Purchase,
		LastDiv:     input.LastDiv,
		Industry:    input.Industry,
		MarketCap:   input.MarketCap,
	}

	if err := s.db.Create(stock).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return stock, nil
}

// UpdateStock replaces the writable fields of an existing stock. Absence is
// reported as ErrStockNotFound, not a failure.
func (s *stockService) UpdateStock(id uint, input StockInput) (*models.Stock, error) {
	var stock models.Stock
	if err := s.db.First(&stock, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStockNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	stock.Symbol = input.Symbol
	stock.CompanyName = input.CompanyName
	stock.Purchase = input.Purchase
	stock.LastDiv = input.LastDiv
	stock.Industry = input.Industry
	stock.MarketCap = input.MarketCap

	if err := s.db.Save(&stock).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &stock, nil
}

// DeleteStock removes a stock by ID.
func (s *stockService) DeleteStock(id uint) error {
	var stock models.Stock
	if err := s.db.First(&stock, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrStockNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&stock).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
