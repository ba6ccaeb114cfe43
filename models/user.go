package models

import "time"

type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password   string    `gorm:"size:255;not null" json:"-"`
	Email      *string   `gorm:"size:255" json:"email,omitempty"`
	PrimaryUse *string   `gorm:"column:pref_laptop;size:100" json:"primary_use,omitempty"`
	Budget     *string   `gorm:"size:50" json:"budget,omitempty"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}
