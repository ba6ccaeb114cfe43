package database

import (
	"gorm.io/gorm"

	"github.com/Emberalive/laptop-chatbot/chat"
)

// RecommendationSaver adapts the recommendation gateway to the chat package's
// persistence interface.
type RecommendationSaver struct {
	DB *gorm.DB
}

func (s RecommendationSaver) SaveRecommendation(username string, rec chat.Recommendation) error {
	return SaveRecommendation(s.DB, username, rec.Key(), rec.Name, rec.Brand)
}
