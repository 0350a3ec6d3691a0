package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/foodlink-la/foodlink"
	"github.com/foodlink-la/foodlink/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend_SendChat(t *testing.T) {
	t.Parallel()
	t.Run("delegates to SendChatFn", func(t *testing.T) {
		t.Parallel()
		var got foodlink.ChatRequest
		b := mock.Backend{
			SendChatFn: func(ctx context.Context, req foodlink.ChatRequest) (foodlink.ChatReply, error) {
				got = req
				return foodlink.ChatReply{Response: "hi"}, nil
			},
		}
		reply, err := b.SendChat(context.Background(), foodlink.ChatRequest{Message: "hello"})
		require.NoError(t, err)
		assert.Equal(t, "hi", reply.Response)
		assert.Equal(t, "hello", got.Message)
	})

	t.Run("returns error", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("backend down")
		b := mock.Backend{
			SendChatFn: func(ctx context.Context, req foodlink.ChatRequest) (foodlink.ChatReply, error) {
				return foodlink.ChatReply{}, wantErr
			},
		}
		_, err := b.SendChat(context.Background(), foodlink.ChatRequest{})
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("panics when SendChatFn not set", func(t *testing.T) {
		t.Parallel()
		b := mock.Backend{}
		assert.Panics(t, func() {
			_, _ = b.SendChat(context.Background(), foodlink.ChatRequest{})
		})
	})
}

func TestBackend_Resources(t *testing.T) {
	t.Parallel()
	b := mock.Backend{
		ResourcesFn: func(ctx context.Context, f foodlink.ResourceFilter) ([]foodlink.Resource, error) {
			return []foodlink.Resource{{ID: "r1", Name: f.LocationText}}, nil
		},
	}
	got, err := b.Resources(context.Background(), foodlink.ResourceFilter{LocationText: "Venice"})
	require.NoError(t, err)
	assert.Equal(t, []foodlink.Resource{{ID: "r1", Name: "Venice"}}, got)
}

func TestBackend_Resource(t *testing.T) {
	t.Parallel()
	b := mock.Backend{
		ResourceFn: func(ctx context.Context, id string) (foodlink.Resource, error) {
			return foodlink.Resource{}, foodlink.ErrNotFound
		},
	}
	_, err := b.Resource(context.Background(), "missing")
	assert.ErrorIs(t, err, foodlink.ErrNotFound)
}

func TestBackend_Health(t *testing.T) {
	t.Parallel()
	b := mock.Backend{
		HealthFn: func(ctx context.Context) (foodlink.HealthStatus, error) {
			return foodlink.HealthStatus{"status": "healthy"}, nil
		},
	}
	got, err := b.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", got["status"])
}

func TestLocator_Locate(t *testing.T) {
	t.Parallel()
	l := mock.Locator{
		LocateFn: func(ctx context.Context) (foodlink.Coordinates, error) {
			return foodlink.Coordinates{Lat: 34.07, Lon: -118.44}, nil
		},
	}
	got, err := l.Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, foodlink.Coordinates{Lat: 34.07, Lon: -118.44}, got)
}
