package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/zhiyizhu805/FinShark/internal/handlers"
	"github.com/zhiyizhu805/FinShark/internal/logger"
	"github.com/zhiyizhu805/FinShark/internal/middleware"
	"github.com/zhiyizhu805/FinShark/internal/models"
	"github.com/zhiyizhu805/FinShark/internal/services"
	"github.com/zhiyizhu805/FinShark/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Stock{},
		&models.Comment{},
		&models.Portfolio{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	stockService := services.NewStockService(db)
	commentService := services.NewCommentService(db)
	portfolioService := services.NewPortfolioService(db, stockService)
	auditService := services.NewAuditService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	stockHandler := handlers.NewStockHandler(stockService, auditService)
	commentHandler := handlers.NewCommentHandler(commentService, stockService, auditService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService, auditService)

	// Router (mirrors the production route table)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	account := v1.Group("/account")
	account.POST("/register", authHandler.Register)
	account.POST("/login", authHandler.Login)

	stocks := v1.Group("/stocks")
	stocks.GET("", stockHandler.ListStocks)
	stocks.GET("/:id", stockHandler.GetStock)
	stocks.POST("", stockHandler.CreateStock)
	stocks.PUT("/:id", stockHandler.UpdateStock)
	stocks.DELETE("/:id", stockHandler.DeleteStock)
	stocks.POST("/:id/comments", middleware.AuthMiddleware(), commentHandler.CreateComment)

	comments := v1.Group("/comments")
	comments.GET("", commentHandler.GetComments)
	comments.GET("/:id", commentHandler.GetComment)
	comments.PUT("/:id", middleware.AuthMiddleware(), commentHandler.UpdateComment)
	comments.DELETE("/:id", middleware.AuthMiddleware(), commentHandler.DeleteComment)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())
	protected.GET("/account/profile", authHandler.Profile)

	portfolio := protected.Group("/portfolio")
	portfolio.GET("", portfolioHandler.GetPortfolio)
	portfolio.POST("", portfolioHandler.AddStock)
	portfolio.DELETE("", portfolioHandler.RemoveStock)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the token and user ID.
func (app *testApp) registerUser(t *testing.T, username, email, password string) (token string, userID float64) {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"email":%q,"password":%q}`, username, email, password)
	rec := app.request("POST", "/api/v1/account/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(float64)
}

// loginUser logs in and returns the token.
func (app *testApp) loginUser(t *testing.T, username, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	rec := app.request("POST", "/api/v1/account/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["token"].(string)
}

// createStock creates a stock through the API and returns its ID.
func (app *testApp) createStock(t *testing.T, symbol, companyName string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"symbol":%q,"company_name":%q,"purchase":100,"last_div":1.5,"industry":"Technology","market_cap":1000000000}`,
		symbol, companyName)
	rec := app.request("POST", "/api/v1/stocks", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create stock failed: %d %s", rec.Code, rec.Body.String())
	}
	stock := parseJSON(t, rec)["stock"].(map[string]interface{})
	return stock["id"].(float64)
}
