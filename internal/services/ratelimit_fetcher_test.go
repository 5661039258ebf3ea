package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	domainErrors "github.com/thomas-vilte/stale-discussions/internal/errors"
	"github.com/thomas-vilte/stale-discussions/internal/graphql"
	"github.com/thomas-vilte/stale-discussions/internal/models"
)

func TestRateLimitFetcher_Process(t *testing.T) {
	t.Run("returns the current quota", func(t *testing.T) {
		// Arrange
		transport := new(MockTransport)
		transport.On("Execute", mock.Anything, graphql.BuildFetchRateLimitQuery()).
			Return(rateLimitEnvelope(t, 5000, 4990)).Once()
		fetcher := NewRateLimitFetcher(newTestConfig(), transport)

		// Act
		res := fetcher.Process(context.Background(), struct{}{})

		// Assert
		require.True(t, res.Success())
		rl := res.Value()
		assert.Equal(t, 5000, rl.Limit)
		assert.Equal(t, 4990, rl.Remaining)
		require.NotNil(t, rl.ResetAt)
		assert.Equal(t, time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC), rl.ResetAt.UTC())
		assert.Equal(t, 10, rl.Used())
	})

	t.Run("dry run returns the unknown quota without a call", func(t *testing.T) {
		transport := new(MockTransport)
		cfg := newTestConfig()
		cfg.DryRun = true

		res := NewRateLimitFetcher(cfg, transport).Process(context.Background(), struct{}{})

		assert.True(t, res.Success())
		assert.True(t, res.Debug())
		assert.Equal(t, models.UnknownRateLimit, res.Value())
		transport.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})

	t.Run("transport error keeps the unknown quota", func(t *testing.T) {
		transport := new(MockTransport)
		transport.On("Execute", mock.Anything, mock.Anything).Return(graphQLFailure()).Once()

		res := NewRateLimitFetcher(newTestConfig(), transport).Process(context.Background(), struct{}{})

		assert.False(t, res.Success())
		assert.Equal(t, &graphql.Error{Type: "ErrorType", Message: "ErrorMessage"}, res.Err())
		assert.Equal(t, models.UnknownRateLimit, res.Value())
	})

	t.Run("missing payload is a missing data error", func(t *testing.T) {
		transport := new(MockTransport)
		transport.On("Execute", mock.Anything, mock.Anything).
			Return(dataEnvelope(t, map[string]any{"rateLimit": nil})).Once()

		res := NewRateLimitFetcher(newTestConfig(), transport).Process(context.Background(), struct{}{})

		assert.ErrorIs(t, res.Err(), domainErrors.ErrMissingData)
		assert.Equal(t, models.UnknownRateLimit, res.Value())
	})
}
