package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/gorm"

	"github.com/Emberalive/laptop-chatbot/models"
)

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	rows := []interface{}{
		&models.LaptopModel{ModelID: "dell-g15", ModelName: "G15 5530", Brand: "Dell"},
		&models.LaptopModel{ModelID: "hp-omen", ModelName: "Omen 16", Brand: "HP"},
		&models.LaptopModel{ModelID: "asus-zen", ModelName: "Zenbook 14", Brand: "Asus"},
		&models.LaptopConfiguration{
			ConfigID: 1, ModelID: "dell-g15", Processor: "Intel Core i7-13650HX",
			MemoryInstalled: "16GB", GraphicsCard: "RTX 4060", Weight: "2.8kg",
			BatteryLife: "6 hours", Price: 1299.99,
		},
		&models.ConfigStorage{ConfigID: 1, StorageType: "SSD", Capacity: "1TB"},
		&models.Screen{ConfigID: 1, Size: "15.6\"", Resolution: "2560x1440"},
		&models.GraphicsCard{Model: "RTX 4060", Brand: "NVIDIA"},
	}
	for _, row := range rows {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestSearchLaptopsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	rr := postJSON(t, SearchLaptopsHandler, "/api/search-laptops", map[string]interface{}{"searchTerm": "DELL"})
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: %s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	results, _ := body["results"].([]interface{})
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %v", body)
	}
	first, _ := results[0].(map[string]interface{})
	if first["model_id"] != "dell-g15" {
		t.Fatalf("unexpected result: %v", first)
	}
}

func TestSearchLaptopsMatchesModelName(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	rr := postJSON(t, SearchLaptopsHandler, "/api/search-laptops", map[string]interface{}{"searchTerm": "zenbook"})
	body := decodeBody(t, rr)
	results, _ := body["results"].([]interface{})
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %v", body)
	}
}

func TestSearchLaptopsNoMatchReturnsEmptyList(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	rr := postJSON(t, SearchLaptopsHandler, "/api/search-laptops", map[string]interface{}{"searchTerm": "toaster"})
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rr.Code)
	}
	body := decodeBody(t, rr)
	results, ok := body["results"].([]interface{})
	if !ok || len(results) != 0 {
		t.Fatalf("expected empty results array, got %v", body)
	}
}

func TestSearchLaptopsRequiresTerm(t *testing.T) {
	setupTestDB(t)
	rr := postJSON(t, SearchLaptopsHandler, "/api/search-laptops", map[string]interface{}{})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rr.Code)
	}
}

func TestLaptopDetailsAssemblesSpecSheet(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	rr := postJSON(t, LaptopDetailsHandler, "/api/laptop-details", map[string]interface{}{"modelId": "dell-g15"})
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: %s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	details, _ := body["details"].(map[string]interface{})
	if details == nil {
		t.Fatalf("no details in response: %v", body)
	}
	if details["model_name"] != "G15 5530" || details["brand"] != "Dell" {
		t.Fatalf("unexpected model row: %v", details)
	}
	if details["ram"] != "16GB" {
		t.Fatalf("ram = %v, want 16GB", details["ram"])
	}
	if details["storage"] != "1TB SSD" {
		t.Fatalf("storage = %v, want 1TB SSD", details["storage"])
	}
	if details["graphics"] != "NVIDIA RTX 4060" {
		t.Fatalf("graphics = %v, want NVIDIA RTX 4060", details["graphics"])
	}
	if details["display_size"] != "15.6\"" || details["display_resolution"] != "2560x1440" {
		t.Fatalf("unexpected display fields: %v", details)
	}
}

func TestLaptopDetailsUnknownModel(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	rr := postJSON(t, LaptopDetailsHandler, "/api/laptop-details", map[string]interface{}{"modelId": "nope"})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rr.Code)
	}
	if body := decodeBody(t, rr); body["message"] != "Laptop not found" {
		t.Fatalf("unexpected body: %v", body)
	}
}
