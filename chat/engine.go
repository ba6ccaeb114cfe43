package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// FallbackReply is the single bot line shown when the engine cannot be reached.
const FallbackReply = "I'm having trouble connecting to my knowledge base. Please try again later."

// noContentReply is used when the engine answered but carried no reply field at all.
const noContentReply = "No response content"

// Reply is the normalized engine response: one or more bot lines, an optional
// recommendation list and the session id the engine wants the conversation to
// continue under.
type Reply struct {
	Messages        []string         `json:"messages"`
	Recommendations []Recommendation `json:"recommendations"`
	SessionID       string           `json:"session_id,omitempty"`
}

// Engine forwards a user utterance to the recommendation engine. Implementations
// must not return transport errors for the chat path; they map failures to the
// canonical fallback Reply instead.
type Engine interface {
	Forward(ctx context.Context, message, sessionID string) Reply
}

type engineRequest struct {
	Message   string  `json:"message"`
	SessionID *string `json:"session_id"`
}

// engineResponse tolerates all reply shapes the engine has been observed to
// produce: an array of lines, a single string under one of two field names,
// and two alternate recommendation field names.
type engineResponse struct {
	Messages           []string         `json:"messages"`
	Message            string           `json:"message"`
	Response           string           `json:"response"`
	Recommendations    []Recommendation `json:"recommendations"`
	GetRecommendations []Recommendation `json:"_get_recommendations"`
	SessionID          string           `json:"session_id"`
}

// EngineClient reaches the external recommendation engine over HTTP.
type EngineClient struct {
	baseURL string
	client  *http.Client
}

// NewEngineClient builds a client for the engine chat endpoint. The base URL
// comes from CHAT_ENGINE_URL when url is empty.
func NewEngineClient(url string) *EngineClient {
	if url == "" {
		url = os.Getenv("CHAT_ENGINE_URL")
	}
	if url == "" {
		url = "http://localhost:8000/api/chat"
	}
	return &EngineClient{
		baseURL: url,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Forward posts the message and session id to the engine and normalizes its
// reply. Upstream failures never surface to the caller: they collapse into the
// canonical fallback line with an empty recommendation list.
func (c *EngineClient) Forward(ctx context.Context, message, sessionID string) Reply {
	reply, err := c.call(ctx, message, sessionID)
	if err != nil {
		log.Printf("[chat] engine call failed: %v", err)
		return Reply{Messages: []string{FallbackReply}, Recommendations: []Recommendation{}}
	}
	return reply
}

func (c *EngineClient) call(ctx context.Context, message, sessionID string) (Reply, error) {
	var sid *string
	if sessionID != "" {
		sid = &sessionID
	}
	body, err := json.Marshal(engineRequest{Message: message, SessionID: sid})
	if err != nil {
		return Reply{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return Reply{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Reply{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Reply{}, fmt.Errorf("engine error: status %d, body: %s", resp.StatusCode, string(b))
	}

	var raw engineResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Reply{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return normalize(raw, sessionID), nil
}

// normalize maps the heterogeneous engine response onto the canonical Reply.
// A session id supplied by the engine takes precedence over the client one.
func normalize(raw engineResponse, sessionID string) Reply {
	out := Reply{SessionID: raw.SessionID}
	if out.SessionID == "" {
		out.SessionID = sessionID
	}

	switch {
	case len(raw.Messages) > 0:
		out.Messages = raw.Messages
	case raw.Message != "":
		out.Messages = []string{raw.Message}
	case raw.Response != "":
		out.Messages = []string{raw.Response}
	default:
		out.Messages = []string{noContentReply}
	}

	out.Recommendations = raw.Recommendations
	if len(out.Recommendations) == 0 {
		out.Recommendations = raw.GetRecommendations
	}
	if out.Recommendations == nil {
		out.Recommendations = []Recommendation{}
	}
	return out
}
