package auth

import (
	"errors"
	"log"
	"net/http"

	"gorm.io/gorm"

	"github.com/Emberalive/laptop-chatbot/database"
	"github.com/Emberalive/laptop-chatbot/models"
	"github.com/Emberalive/laptop-chatbot/utils"
)

// Logout deletes the session cookie. Always succeeds.
func Logout(w http.ResponseWriter) {
	utils.ClearAuthCookie(w)
	utils.WriteRawJSON(w, http.StatusOK, Result{Success: true})
}

// Verify resolves the auth cookie and returns the current persisted profile.
// The profile is re-read from the database so edits made after the token was
// issued are reflected; a token whose account no longer exists fails closed.
func Verify(w http.ResponseWriter, r *http.Request) {
	username, err := utils.CurrentUsername(r)
	if err != nil {
		utils.WriteRawJSON(w, http.StatusOK, Result{Success: false})
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[verify] DB error: %v", err)
		}
		utils.WriteRawJSON(w, http.StatusOK, Result{Success: false})
		return
	}

	utils.WriteRawJSON(w, http.StatusOK, Result{
		Success: true,
		User: &Profile{
			Username:   user.Username,
			Email:      utils.GetStringValue(user.Email),
			PrimaryUse: utils.GetStringValue(user.PrimaryUse),
			Budget:     utils.GetStringValue(user.Budget),
		},
	})
}
