package controllers

import (
	"net/http"

	"github.com/Emberalive/laptop-chatbot/chat"
	"github.com/Emberalive/laptop-chatbot/middleware"
	"github.com/Emberalive/laptop-chatbot/utils"
)

// ChatController proxies widget messages to the recommendation engine.
type ChatController struct {
	engine chat.Engine
}

func NewChatController(engine chat.Engine) *ChatController {
	return &ChatController{engine: engine}
}

type chatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionID string `json:"session_id,omitempty"`
}

// SendMessage forwards the utterance and answers with the normalized reply.
// Upstream failures were already collapsed to the fallback line by the engine
// client, so this endpoint always returns 200 with the canonical shape.
func (c *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	reply := c.engine.Forward(r.Context(), req.Message, req.SessionID)
	utils.WriteRawJSON(w, http.StatusOK, reply)
}
