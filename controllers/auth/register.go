package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Emberalive/laptop-chatbot/database"
	"github.com/Emberalive/laptop-chatbot/models"
	"github.com/Emberalive/laptop-chatbot/utils"
)

// Register creates an account, issues the session cookie and returns the
// non-secret profile. A taken username is a structured failure, not an error.
func Register(w http.ResponseWriter, req ActionRequest) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Username and password are required"})
		return
	}

	db := database.DB

	var existing models.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		utils.WriteRawJSON(w, http.StatusOK, Result{Success: false, Message: "Username already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[register] DB error checking username: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[register] hashing failed: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	user := models.User{
		Username: username,
		Password: string(hashed),
		Email:    utils.StringPtr(strings.TrimSpace(req.Email)),
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("[register] DB error creating user: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	token, err := utils.GenerateAuthToken(user.Username)
	if err != nil {
		log.Printf("[register] token issue failed: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}
	utils.SetAuthCookie(w, token)

	utils.WriteRawJSON(w, http.StatusOK, Result{
		Success: true,
		User: &Profile{
			Username: user.Username,
			Email:    utils.GetStringValue(user.Email),
		},
	})
}
