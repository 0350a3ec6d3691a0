// Package api implements [foodlink.Backend] for the FoodLink HTTP backend.
//
// Every request and response is logged through zerolog with the method,
// path, status, and a per-request X-Request-ID. Failed calls are logged
// before the error is returned. The client never retries.
package api

import (
	"encoding/json"
	"strings"

	"github.com/foodlink-la/foodlink"
)

const (
	// DefaultBaseURL is the local development backend.
	DefaultBaseURL = "http://localhost:8000"

	chatPath      = "/api/chat"
	resourcesPath = "/api/resources"
	healthPath    = "/health"

	requestIDHeader = "X-Request-ID"
	maxErrorBody    = 64 << 10
)

// chatRequest is the JSON body sent to POST /api/chat.
type chatRequest struct {
	SessionID string  `json:"session_id"`
	Message   string  `json:"message"`
	AgentType string  `json:"agent_type"`
	Location  *string `json:"location"` // always present; null when no hint
}

// chatResponse is the JSON body returned by POST /api/chat.
type chatResponse struct {
	Response      string                  `json:"response"`
	Resources     []foodlink.Resource     `json:"resources,omitempty"`
	Organizations []foodlink.Organization `json:"organizations,omitempty"`
}

// errorResponse covers the error shapes the backend returns on non-2xx
// responses: {"detail": "..."} and {"error": "..."}.
type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
	Error  string          `json:"error"`
}

func (e errorResponse) message() string {
	if e.Error != "" {
		return e.Error
	}
	var s string
	if err := json.Unmarshal(e.Detail, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(e.Detail))
}
