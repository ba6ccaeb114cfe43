package controllers

import (
	"net/http"

	"github.com/Emberalive/laptop-chatbot/controllers/auth"
	"github.com/Emberalive/laptop-chatbot/middleware"
	"github.com/Emberalive/laptop-chatbot/utils"
)

// DBHandler is the action dispatcher behind POST /api/db: one endpoint, one
// `action` discriminator, per the widget's data contract. Unknown or missing
// actions are a 400.
func DBHandler(w http.ResponseWriter, r *http.Request) {
	var req auth.ActionRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	if req.Action == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Action is required"})
		return
	}

	switch req.Action {
	case "register":
		auth.Register(w, req)
	case "login":
		auth.Login(w, req)
	case "updateProfile":
		auth.UpdateProfile(w, req)
	case "logout":
		auth.Logout(w)
	case "verify":
		auth.Verify(w, r)
	case "saveRecommendation":
		saveRecommendation(w, req)
	case "getPastRecommendations":
		getPastRecommendations(w, req)
	case "deleteRecommendation":
		deleteRecommendation(w, req)
	default:
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid action: " + req.Action})
	}
}
