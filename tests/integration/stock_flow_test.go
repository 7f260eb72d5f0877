package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestStockFlow_CreateGetUpdateDelete(t *testing.T) {
	app := setupApp(t)

	// Create
	id := app.createStock(t, "AAPL", "Apple Inc.")

	// Get
	rec := app.request("GET", fmt.Sprintf("/api/v1/stocks/%.0f", id), "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	stock := parseJSON(t, rec)["stock"].(map[string]interface{})
	if stock["symbol"] != "AAPL" {
		t.Errorf("expected symbol AAPL, got %v", stock["symbol"])
	}

	// Update
	rec = app.request("PUT", fmt.Sprintf("/api/v1/stocks/%.0f", id),
		`{"symbol":"AAPL","company_name":"Apple Incorporated","purchase":190,"last_div":1.0,"industry":"Technology","market_cap":3000000000000}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("update failed: %d %s", rec.Code, rec.Body.String())
	}
	stock = parseJSON(t, rec)["stock"].(map[string]interface{})
	if stock["company_name"] != "Apple Incorporated" {
		t.Errorf("expected updated company name, got %v", stock["company_name"])
	}

	// Delete
	rec = app.request("DELETE", fmt.Sprintf("/api/v1/stocks/%.0f", id), "", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}

	// Gone
	rec = app.request("GET", fmt.Sprintf("/api/v1/stocks/%.0f", id), "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestStockFlow_ListFilterSortPage(t *testing.T) {
	app := setupApp(t)

	app.createStock(t, "AAPL", "Apple Inc.")
	app.createStock(t, "MSFT", "Microsoft Corporation")
	app.createStock(t, "GOOG", "Alphabet Inc.")

	// Case-insensitive company name substring
	rec := app.request("GET", "/api/v1/stocks?companyName=apple", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	data := result["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("expected 1 match for apple, got %d", len(data))
	}
	if data[0].(map[string]interface{})["symbol"] != "AAPL" {
		t.Errorf("expected AAPL, got %v", data[0])
	}

	// Sort by symbol descending
	rec = app.request("GET", "/api/v1/stocks?sortBy=symbol&isDescending=true", "", "")
	result = parseJSON(t, rec)
	data = result["data"].([]interface{})
	if len(data) != 3 {
		t.Fatalf("expected 3 stocks, got %d", len(data))
	}
	first := data[0].(map[string]interface{})["symbol"]
	if first != "MSFT" {
		t.Errorf("expected MSFT first in descending order, got %v", first)
	}

	// Paging metadata
	rec = app.request("GET", "/api/v1/stocks?pageNumber=2&pageSize=2", "", "")
	result = parseJSON(t, rec)
	if result["totalItems"] != float64(3) {
		t.Errorf("expected totalItems 3, got %v", result["totalItems"])
	}
	if result["totalPages"] != float64(2) {
		t.Errorf("expected totalPages 2, got %v", result["totalPages"])
	}
	data = result["data"].([]interface{})
	if len(data) != 1 {
		t.Errorf("expected 1 item on the last page, got %d", len(data))
	}
}

func TestStockFlow_ListEmpty(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/v1/stocks?companyName=nothing", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	data, ok := result["data"].([]interface{})
	if !ok {
		t.Fatalf("expected data array, got %v", result["data"])
	}
	if len(data) != 0 {
		t.Errorf("expected empty page, got %d items", len(data))
	}
}
