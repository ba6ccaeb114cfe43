package controllers

import (
	"log"
	"net/http"

	"github.com/Emberalive/laptop-chatbot/controllers/auth"
	"github.com/Emberalive/laptop-chatbot/database"
	"github.com/Emberalive/laptop-chatbot/models"
	"github.com/Emberalive/laptop-chatbot/utils"
)

type recommendationList struct {
	Success         bool                        `json:"success"`
	Recommendations []models.PastRecommendation `json:"recommendations"`
}

// saveRecommendation persists a (user, laptop) pair. A repeat save of the
// same pair succeeds without writing a second row.
func saveRecommendation(w http.ResponseWriter, req auth.ActionRequest) {
	if req.Username == "" || req.ModelID == "" || req.ModelName == "" || req.ModelBrand == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Missing required recommendation data"})
		return
	}
	if err := database.SaveRecommendation(database.DB, req.Username, req.ModelID, req.ModelName, req.ModelBrand); err != nil {
		log.Printf("[recommendations] save failed: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}
	utils.WriteRawJSON(w, http.StatusOK, auth.Result{Success: true})
}

// getPastRecommendations lists a user's saved recommendations, newest first.
func getPastRecommendations(w http.ResponseWriter, req auth.ActionRequest) {
	if req.Username == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Username is required"})
		return
	}
	recs, err := database.PastRecommendations(database.DB, req.Username)
	if err != nil {
		log.Printf("[recommendations] list failed: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}
	utils.WriteRawJSON(w, http.StatusOK, recommendationList{Success: true, Recommendations: recs})
}

// deleteRecommendation removes one saved recommendation. Deleting a record
// that is already gone is still a success.
func deleteRecommendation(w http.ResponseWriter, req auth.ActionRequest) {
	if req.Username == "" || req.RecID == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Missing required data for deletion"})
		return
	}
	if err := database.DeleteRecommendation(database.DB, req.Username, req.RecID); err != nil {
		log.Printf("[recommendations] delete failed: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}
	utils.WriteRawJSON(w, http.StatusOK, auth.Result{Success: true})
}
