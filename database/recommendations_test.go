package database

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Emberalive/laptop-chatbot/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.PastRecommendation{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.PastRecommendation{})
	})
	return db
}

func TestSaveRecommendationIsIdempotent(t *testing.T) {
	db := testDB(t)

	for i := 0; i < 3; i++ {
		if err := SaveRecommendation(db, "alice", "dell-g15", "G15", "Dell"); err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
	}

	var count int64
	db.Model(&models.PastRecommendation{}).Where("username = ?", "alice").Count(&count)
	if count != 1 {
		t.Fatalf("expected a single row after repeated saves, got %d", count)
	}
}

func TestSaveRecommendationScopedPerUser(t *testing.T) {
	db := testDB(t)

	if err := SaveRecommendation(db, "alice", "dell-g15", "G15", "Dell"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := SaveRecommendation(db, "bob", "dell-g15", "G15", "Dell"); err != nil {
		t.Fatalf("second user's save failed: %v", err)
	}

	var count int64
	db.Model(&models.PastRecommendation{}).Where("model_id = ?", "dell-g15").Count(&count)
	if count != 2 {
		t.Fatalf("expected one row per user, got %d", count)
	}
}

func TestPastRecommendationsMostRecentFirst(t *testing.T) {
	db := testDB(t)

	base := time.Now().Add(-time.Hour)
	rows := []models.PastRecommendation{
		{Username: "alice", ModelID: "old", ModelName: "Old", ModelBrand: "Acer", RecDate: base},
		{Username: "alice", ModelID: "new", ModelName: "New", ModelBrand: "Asus", RecDate: base.Add(30 * time.Minute)},
		{Username: "alice", ModelID: "mid", ModelName: "Mid", ModelBrand: "HP", RecDate: base.Add(10 * time.Minute)},
		{Username: "bob", ModelID: "other", ModelName: "Other", ModelBrand: "MSI", RecDate: base.Add(time.Hour)},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	recs, err := PastRecommendations(db, "alice")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 rows for alice, got %d", len(recs))
	}
	want := []string{"new", "mid", "old"}
	for i, w := range want {
		if recs[i].ModelID != w {
			t.Fatalf("position %d: got %q, want %q", i, recs[i].ModelID, w)
		}
	}
}

func TestDeleteRecommendation(t *testing.T) {
	db := testDB(t)

	rec := models.PastRecommendation{
		Username: "alice", ModelID: "dell-g15", ModelName: "G15", ModelBrand: "Dell", RecDate: time.Now(),
	}
	if err := db.Create(&rec).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if err := DeleteRecommendation(db, "alice", rec.RecID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	var count int64
	db.Model(&models.PastRecommendation{}).Count(&count)
	if count != 0 {
		t.Fatalf("row survived delete, count=%d", count)
	}

	// repeating the delete is a no-op, not an error
	if err := DeleteRecommendation(db, "alice", rec.RecID); err != nil {
		t.Fatalf("second delete errored: %v", err)
	}
}

func TestDeleteRecommendationOnlyForOwner(t *testing.T) {
	db := testDB(t)

	rec := models.PastRecommendation{
		Username: "alice", ModelID: "dell-g15", ModelName: "G15", ModelBrand: "Dell", RecDate: time.Now(),
	}
	if err := db.Create(&rec).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if err := DeleteRecommendation(db, "bob", rec.RecID); err != nil {
		t.Fatalf("delete errored: %v", err)
	}
	var count int64
	db.Model(&models.PastRecommendation{}).Count(&count)
	if count != 1 {
		t.Fatalf("another user's delete removed the row")
	}
}
