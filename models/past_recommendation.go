package models

import "time"

// PastRecommendation is one saved (user, laptop) pair. The composite unique
// index makes repeated saves of the same pair collapse to a single row.
type PastRecommendation struct {
	RecID      uint      `gorm:"primaryKey;column:rec_id" json:"rec_id"`
	Username   string    `gorm:"size:50;not null;uniqueIndex:idx_user_model" json:"username"`
	ModelID    string    `gorm:"column:model_id;size:100;not null;uniqueIndex:idx_user_model" json:"model_id"`
	ModelName  string    `gorm:"column:model_name;size:150;not null" json:"model_name"`
	ModelBrand string    `gorm:"column:model_brand;size:100;not null" json:"model_brand"`
	RecDate    time.Time `gorm:"column:rec_date" json:"rec_date"`
}

func (PastRecommendation) TableName() string {
	return "past_recommendations"
}
