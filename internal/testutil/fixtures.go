package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/zhiyizhu805/FinShark/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	n := nextID()
	return CreateTestUserWithName(t, db, fmt.Sprintf("user%d", n))
}

// CreateTestUserWithName creates a user with the given username.
func CreateTestUserWithName(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: username,
		Email:    username + "@test.com",
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestStock creates a stock with a unique symbol.
func CreateTestStock(t *testing.T, db *gorm.DB) *models.Stock {
	t.Helper()
	n := nextID()
	return CreateTestStockWithSymbol(t, db, fmt.Sprintf("TST%d", n), fmt.Sprintf("Test Company %d", n))
}

// CreateTestStockWithSymbol creates a stock with the given symbol and company name.
func CreateTestStockWithSymbol(t *testing.T, db *gorm.DB, symbol, companyName string) *models.Stock {
	t.Helper()

	stock := &models.Stock{
		Symbol:      symbol,
		CompanyName: companyName,
		Purchase:    100.0,
		LastDiv:     1.5,
		Industry:    "Technology",
		MarketCap:   1_000_000_000,
	}
	if err := db.Create(stock).Error; err != nil {
		t.Fatalf("failed to create test stock: %v", err)
	}
	return stock
}

// CreateTestComment creates a comment on the given stock by the given user.
func CreateTestComment(t *testing.T, db *gorm.DB, stockID, userID uint) *models.Comment {
	t.Helper()

	comment := &models.Comment{
		Title:   fmt.Sprintf("Test Comment %d", nextID()),
		Content: "Some thoughts on this stock.",
		StockID: &stockID,
		UserID:  userID,
	}
	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("failed to create test comment: %v", err)
	}
	return comment
}

// CreateTestHolding adds a stock to a user's portfolio.
func CreateTestHolding(t *testing.T, db *gorm.DB, userID, stockID uint) *models.Portfolio {
	t.Helper()

	holding := &models.Portfolio{UserID: userID, StockID: stockID}
	if err := db.Create(holding).Error; err != nil {
		t.Fatalf("failed to create test holding: %v", err)
	}
	return holding
}
