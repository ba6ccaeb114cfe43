package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"strings"

	"gorm.io/gorm"

	"github.com/Emberalive/laptop-chatbot/database"
	"github.com/Emberalive/laptop-chatbot/middleware"
	"github.com/Emberalive/laptop-chatbot/models"
	"github.com/Emberalive/laptop-chatbot/utils"
)

type searchRequest struct {
	SearchTerm string `json:"searchTerm" validate:"required"`
}

type searchResult struct {
	ModelID   string `json:"model_id"`
	ModelName string `json:"model_name"`
	Brand     string `json:"brand"`
}

// SearchLaptopsHandler matches the search term case-insensitively against
// model names and brands.
func SearchLaptopsHandler(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	pattern := "%" + strings.ToLower(req.SearchTerm) + "%"
	var results []searchResult
	err := database.DB.Model(&models.LaptopModel{}).
		Select("model_id, model_name, brand").
		Where("LOWER(model_name) LIKE ? OR LOWER(brand) LIKE ?", pattern, pattern).
		Order("brand, model_name").
		Scan(&results).Error
	if err != nil {
		log.Printf("[laptops] search failed: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Error searching laptops"})
		return
	}
	if results == nil {
		results = []searchResult{}
	}

	utils.WriteRawJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}

type detailsRequest struct {
	ModelID string `json:"modelId" validate:"required"`
}

// laptopDetailsRow is the raw joined row; the response assembles the derived
// storage and graphics strings from it.
type laptopDetailsRow struct {
	ModelID     string  `json:"model_id"`
	ModelName   string  `json:"model_name"`
	Brand       string  `json:"brand"`
	ImageURL    *string `json:"image_url"`
	Processor   string  `json:"processor"`
	RAM         string  `json:"ram"`
	StorageType string  `json:"-"`
	Capacity    string  `json:"-"`
	Storage     string  `json:"storage"`
	DisplaySize string  `json:"display_size"`
	DisplayRes  string  `json:"display_resolution"`
	GPUBrand    string  `json:"-"`
	GPUModel    string  `json:"-"`
	Graphics    string  `json:"graphics"`
	Weight      string  `json:"weight"`
	BatteryLife string  `json:"battery_life"`
	Price       float64 `json:"price"`
}

// LaptopDetailsHandler returns the fully joined spec sheet of one model, or a
// 404 when the id does not resolve.
func LaptopDetailsHandler(w http.ResponseWriter, r *http.Request) {
	var req detailsRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	var row laptopDetailsRow
	err := database.DB.
		Table("laptop_models lm").
		Select(`lm.model_id, lm.model_name, lm.brand, lm.image_url,
			lc.processor, lc.memory_installed AS ram,
			cs.storage_type, cs.capacity,
			s.size AS display_size, s.resolution AS display_res,
			gc.brand AS gpu_brand, lc.graphics_card AS gpu_model,
			lc.weight, lc.battery_life, lc.price`).
		Joins("JOIN laptop_configurations lc ON lm.model_id = lc.model_id").
		Joins("LEFT JOIN configuration_storage cs ON lc.config_id = cs.config_id").
		Joins("LEFT JOIN screens s ON lc.config_id = s.config_id").
		Joins("LEFT JOIN graphics_cards gc ON lc.graphics_card = gc.model").
		Where("lm.model_id = ?", req.ModelID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Laptop not found"})
			return
		}
		log.Printf("[laptops] details query failed: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Error retrieving laptop details"})
		return
	}

	row.Storage = strings.TrimSpace(row.Capacity + " " + row.StorageType)
	row.Graphics = strings.TrimSpace(row.GPUBrand + " " + row.GPUModel)

	utils.WriteRawJSON(w, http.StatusOK, map[string]interface{}{"details": row})
}

// UploadLaptopImageHandler stores a catalog image for a model in object
// storage and records its URL. Protected by the admin key middleware.
func UploadLaptopImageHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid multipart form"})
		return
	}
	modelID := strings.TrimSpace(r.FormValue("model_id"))
	if modelID == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Model ID is required"})
		return
	}

	var model models.LaptopModel
	if err := database.DB.Where("model_id = ?", modelID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Laptop not found"})
			return
		}
		log.Printf("[laptops] image lookup failed: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Image file is required"})
		return
	}
	defer file.Close()

	objectKey := fmt.Sprintf("laptops/%s%s", modelID, path.Ext(header.Filename))
	if err := utils.UploadImage(r.Context(), objectKey, file); err != nil {
		log.Printf("[laptops] image upload failed: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Image upload failed"})
		return
	}

	imageURL := objectKey
	if base := os.Getenv("S3_PUBLIC_BASE_URL"); base != "" {
		imageURL = strings.TrimRight(base, "/") + "/" + objectKey
	}
	if err := database.DB.Model(&model).Update("image_url", imageURL).Error; err != nil {
		log.Printf("[laptops] image url update failed: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Image uploaded",
		Data:    map[string]interface{}{"model_id": modelID, "image_url": imageURL},
	})
}
