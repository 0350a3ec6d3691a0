// Package mock provides test doubles for foodlink interfaces using function
// fields.
package mock

import (
	"context"

	"github.com/foodlink-la/foodlink"
)

// Interface compliance checks.
var (
	_ foodlink.Backend = (*Backend)(nil)
	_ foodlink.Locator = (*Locator)(nil)
)

// Backend is a test double for foodlink.Backend.
// Set the function fields for the methods you need.
type Backend struct {
	SendChatFn  func(ctx context.Context, req foodlink.ChatRequest) (foodlink.ChatReply, error)
	ResourcesFn func(ctx context.Context, filter foodlink.ResourceFilter) ([]foodlink.Resource, error)
	ResourceFn  func(ctx context.Context, id string) (foodlink.Resource, error)
	HealthFn    func(ctx context.Context) (foodlink.HealthStatus, error)
}

// SendChat delegates to SendChatFn.
func (b *Backend) SendChat(ctx context.Context, req foodlink.ChatRequest) (foodlink.ChatReply, error) {
	return b.SendChatFn(ctx, req)
}

// Resources delegates to ResourcesFn.
func (b *Backend) Resources(ctx context.Context, filter foodlink.ResourceFilter) ([]foodlink.Resource, error) {
	return b.ResourcesFn(ctx, filter)
}

// Resource delegates to ResourceFn.
func (b *Backend) Resource(ctx context.Context, id string) (foodlink.Resource, error) {
	return b.ResourceFn(ctx, id)
}

// Health delegates to HealthFn.
func (b *Backend) Health(ctx context.Context) (foodlink.HealthStatus, error) {
	return b.HealthFn(ctx)
}

// Locator is a test double for foodlink.Locator.
type Locator struct {
	LocateFn func(ctx context.Context) (foodlink.Coordinates, error)
}

// Locate delegates to LocateFn.
func (l *Locator) Locate(ctx context.Context) (foodlink.Coordinates, error) {
	return l.LocateFn(ctx)
}
