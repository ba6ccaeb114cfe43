package models

// LaptopModel is one catalog entry the search endpoint matches against.
type LaptopModel struct {
	ModelID   string  `gorm:"primaryKey;column:model_id;size:100" json:"model_id"`
	ModelName string  `gorm:"column:model_name;size:150;not null;index" json:"model_name"`
	Brand     string  `gorm:"size:100;not null;index" json:"brand"`
	ImageURL  *string `gorm:"column:image_url;size:255" json:"image_url,omitempty"`
}

func (LaptopModel) TableName() string {
	return "laptop_models"
}

// LaptopConfiguration holds the hardware details of a model.
type LaptopConfiguration struct {
	ConfigID        uint    `gorm:"primaryKey;column:config_id" json:"config_id"`
	ModelID         string  `gorm:"column:model_id;size:100;not null;index" json:"model_id"`
	Processor       string  `gorm:"size:150" json:"processor"`
	MemoryInstalled string  `gorm:"column:memory_installed;size:50" json:"memory_installed"`
	GraphicsCard    string  `gorm:"column:graphics_card;size:150" json:"graphics_card"`
	Weight          string  `gorm:"size:50" json:"weight"`
	BatteryLife     string  `gorm:"column:battery_life;size:50" json:"battery_life"`
	Price           float64 `gorm:"type:decimal(10,2)" json:"price"`
}

func (LaptopConfiguration) TableName() string {
	return "laptop_configurations"
}

// ConfigStorage is a storage device attached to a configuration.
type ConfigStorage struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ConfigID    uint   `gorm:"column:config_id;not null;index" json:"config_id"`
	StorageType string `gorm:"column:storage_type;size:20" json:"storage_type"`
	Capacity    string `gorm:"size:20" json:"capacity"`
}

func (ConfigStorage) TableName() string {
	return "configuration_storage"
}

// Screen describes the display fitted to a configuration.
type Screen struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ConfigID   uint   `gorm:"column:config_id;not null;index" json:"config_id"`
	Size       string `gorm:"size:20" json:"size"`
	Resolution string `gorm:"size:30" json:"resolution"`
}

func (Screen) TableName() string {
	return "screens"
}

// GraphicsCard maps a GPU model string to its vendor brand.
type GraphicsCard struct {
	Model string `gorm:"primaryKey;size:150" json:"model"`
	Brand string `gorm:"size:100" json:"brand"`
}

func (GraphicsCard) TableName() string {
	return "graphics_cards"
}
