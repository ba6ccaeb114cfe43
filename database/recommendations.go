package database

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Emberalive/laptop-chatbot/models"
)

// SaveRecommendation records a (username, modelID) pair. When the pair already
// exists the call succeeds without writing, so repeated saves of the same
// recommendation never duplicate rows.
func SaveRecommendation(db *gorm.DB, username, modelID, modelName, modelBrand string) error {
	var existing models.PastRecommendation
	err := db.Where("username = ? AND model_id = ?", username, modelID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	rec := models.PastRecommendation{
		Username:   username,
		ModelID:    modelID,
		ModelName:  modelName,
		ModelBrand: modelBrand,
		RecDate:    time.Now(),
	}
	return db.Create(&rec).Error
}

// PastRecommendations returns the user's saved recommendations, most recent
// first.
func PastRecommendations(db *gorm.DB, username string) ([]models.PastRecommendation, error) {
	var recs []models.PastRecommendation
	err := db.Where("username = ?", username).Order("rec_date DESC").Find(&recs).Error
	return recs, err
}

// DeleteRecommendation removes a saved recommendation by its record id.
// Deleting a record that does not exist is not an error.
func DeleteRecommendation(db *gorm.DB, username string, recID uint) error {
	return db.Where("username = ? AND rec_id = ?", username, recID).
		Delete(&models.PastRecommendation{}).Error
}
