package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/Emberalive/laptop-chatbot/database"
	"github.com/Emberalive/laptop-chatbot/models"
	"github.com/Emberalive/laptop-chatbot/utils"
)

// UpdateProfile overwrites the mutable profile fields (email, preferred use,
// budget) of an existing account. The password is never touched here.
func UpdateProfile(w http.ResponseWriter, req ActionRequest) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Username is required"})
		return
	}

	db := database.DB

	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteRawJSON(w, http.StatusOK, Result{Success: false, Message: "User not found"})
			return
		}
		log.Printf("[profile] DB error: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	updates := map[string]interface{}{
		"email":       utils.StringPtr(strings.TrimSpace(req.Email)),
		"pref_laptop": utils.StringPtr(strings.TrimSpace(req.PrimaryUse)),
		"budget":      utils.StringPtr(strings.TrimSpace(req.Budget)),
	}
	if err := db.Model(&user).Updates(updates).Error; err != nil {
		log.Printf("[profile] DB error updating user: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	var updated models.User
	if err := db.Where("username = ?", username).First(&updated).Error; err != nil {
		log.Printf("[profile] DB error reloading user: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteRawJSON(w, http.StatusOK, Result{
		Success: true,
		User: &Profile{
			Username:   updated.Username,
			Email:      utils.GetStringValue(updated.Email),
			PrimaryUse: utils.GetStringValue(updated.PrimaryUse),
			Budget:     utils.GetStringValue(updated.Budget),
		},
	})
}
