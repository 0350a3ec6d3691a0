package foodlink

import "context"

// ChatRequest is one user turn sent to the backend agent.
type ChatRequest struct {
	SessionID string
	Message   string
	Agent     AgentType
	Location  string // empty = no hint
}

// ChatReply is the backend's answer to a ChatRequest. Resources are returned
// to recipients and Organizations to donors; either may be empty.
type ChatReply struct {
	Response      string
	Resources     []Resource
	Organizations []Organization
}

// HealthStatus is the backend's opaque diagnostic payload.
type HealthStatus map[string]any

// Chatter sends chat turns to the backend agent.
type Chatter interface {
	SendChat(ctx context.Context, req ChatRequest) (ChatReply, error)
}

// Backend is the full resource-lookup and chat service.
type Backend interface {
	Chatter
	Resources(ctx context.Context, filter ResourceFilter) ([]Resource, error)
	Resource(ctx context.Context, id string) (Resource, error)
	Health(ctx context.Context) (HealthStatus, error)
}

// Locator reports the user's current position.
type Locator interface {
	Locate(ctx context.Context) (Coordinates, error)
}
