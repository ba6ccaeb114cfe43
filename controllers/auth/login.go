package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Emberalive/laptop-chatbot/database"
	"github.com/Emberalive/laptop-chatbot/middleware"
	"github.com/Emberalive/laptop-chatbot/models"
	"github.com/Emberalive/laptop-chatbot/utils"
)

// invalidCredentials is returned for unknown usernames and wrong passwords
// alike so callers cannot enumerate accounts.
const invalidCredentials = "Invalid username or password"

// Login checks credentials and issues a fresh session cookie on match.
func Login(w http.ResponseWriter, req ActionRequest) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Username and password are required"})
		return
	}

	if locked, retry := middleware.IsAccountLocked(username); locked {
		utils.WriteJSON(w, http.StatusTooManyRequests, utils.APIResponse{
			Success: false,
			Message: "Too many login attempts. Please try again later.",
			Data:    map[string]interface{}{"retry_after_seconds": int(retry.Seconds())},
		})
		return
	}

	db := database.DB

	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.RecordFailedLogin(username)
			utils.WriteRawJSON(w, http.StatusOK, Result{Success: false, Message: invalidCredentials})
			return
		}
		log.Printf("[login] DB error: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		middleware.RecordFailedLogin(username)
		utils.WriteRawJSON(w, http.StatusOK, Result{Success: false, Message: invalidCredentials})
		return
	}

	middleware.ResetFailedLogin(username)

	token, err := utils.GenerateAuthToken(user.Username)
	if err != nil {
		log.Printf("[login] token issue failed: %v", err)
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
