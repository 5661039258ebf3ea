package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	domainErrors "github.com/thomas-vilte/stale-discussions/internal/errors"
	"github.com/thomas-vilte/stale-discussions/internal/graphql"
	"github.com/thomas-vilte/stale-discussions/internal/models"
)

func TestDiscussionFetcher_Process(t *testing.T) {
	repo := models.Repository{Owner: "owner", Name: "repo"}
	old := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("single page", func(t *testing.T) {
		// Arrange
		transport := new(MockTransport)
		nodes := []models.DiscussionNode{discussion(1, old), discussion(2, old)}
		transport.On("Execute", mock.Anything, graphql.BuildFetchAllDiscussionsQuery("owner", "repo", nil)).
			Return(pageEnvelope(t, false, "", nodes...)).Once()
		fetcher := NewDiscussionFetcher(newTestConfig(), transport)

		// Act
		res := fetcher.Process(context.Background(), repo)

		// Assert
		assert.True(t, res.Success())
		assert.False(t, res.Debug())
		assert.Equal(t, nodes, res.Value())
		transport.AssertExpectations(t)
	})

	t.Run("walks every page in order", func(t *testing.T) {
		// Arrange
		transport := new(MockTransport)
		first, second := "cursor-1", "cursor-2"
		transport.On("Execute", mock.Anything, graphql.BuildFetchAllDiscussionsQuery("owner", "repo", nil)).
			Return(pageEnvelope(t, true, first, discussion(1, old), discussion(2, old))).Once()
		transport.On("Execute", mock.Anything, graphql.BuildFetchAllDiscussionsQuery("owner", "repo", &first)).
			Return(pageEnvelope(t, true, second, discussion(3, old))).Once()
		transport.On("Execute", mock.Anything, graphql.BuildFetchAllDiscussionsQuery("owner", "repo", &second)).
			Return(pageEnvelope(t, false, "", discussion(4, old))).Once()
		fetcher := NewDiscussionFetcher(newTestConfig(), transport)

		// Act
		res := fetcher.Process(context.Background(), repo)

		// Assert
		assert.True(t, res.Success())
		numbers := make([]int, 0)
		for _, d := range res.Value() {
			numbers = append(numbers, d.Number)
		}
		assert.Equal(t, []int{1, 2, 3, 4}, numbers)
		transport.AssertNumberOfCalls(t, "Execute", 3)
	})

	t.Run("a failing page fails the whole fetch", func(t *testing.T) {
		// Arrange
		transport := new(MockTransport)
		first := "cursor-1"
		transport.On("Execute", mock.Anything, graphql.BuildFetchAllDiscussionsQuery("owner", "repo", nil)).
			Return(pageEnvelope(t, true, first, discussion(1, old))).Once()
		transport.On("Execute", mock.Anything, graphql.BuildFetchAllDiscussionsQuery("owner", "repo", &first)).
			Return(graphQLFailure()).Once()
		fetcher := NewDiscussionFetcher(newTestConfig(), transport)

		// Act
		res := fetcher.Process(context.Background(), repo)

		// Assert
		assert.False(t, res.Success())
		assert.Equal(t, &graphql.Error{Type: "ErrorType", Message: "ErrorMessage"}, res.Err())
		assert.Empty(t, res.Value())
		transport.AssertNumberOfCalls(t, "Execute", 2)
	})

	t.Run("missing repository is a missing data error", func(t *testing.T) {
		// Arrange
		transport := new(MockTransport)
		transport.On("Execute", mock.Anything, mock.Anything).
			Return(dataEnvelope(t, map[string]any{"repository": nil})).Once()
		fetcher := NewDiscussionFetcher(newTestConfig(), transport)

		// Act
		res := fetcher.Process(context.Background(), repo)

		// Assert
		assert.ErrorIs(t, res.Err(), domainErrors.ErrMissingData)
		assert.Contains(t, res.Err().Error(), "list discussions")
		assert.Empty(t, res.Value())
	})

	t.Run("missing data is a missing data error", func(t *testing.T) {
		transport := new(MockTransport)
		transport.On("Execute", mock.Anything, mock.Anything).Return(graphql.Envelope{}).Once()
		fetcher := NewDiscussionFetcher(newTestConfig(), transport)

		res := fetcher.Process(context.Background(), repo)

		assert.ErrorIs(t, res.Err(), domainErrors.ErrMissingData)
	})

	t.Run("next page without a cursor stalls", func(t *testing.T) {
		transport := new(MockTransport)
		transport.On("Execute", mock.Anything, mock.Anything).
			Return(pageEnvelope(t, true, "", discussion(1, old))).Once()
		fetcher := NewDiscussionFetcher(newTestConfig(), transport)

		res := fetcher.Process(context.Background(), repo)

		assert.ErrorIs(t, res.Err(), domainErrors.ErrPaginationStalled)
		assert.Empty(t, res.Value())
		transport.AssertNumberOfCalls(t, "Execute", 1)
	})

	t.Run("repeated cursor stalls", func(t *testing.T) {
		transport := new(MockTransport)
		transport.On("Execute", mock.Anything, mock.Anything).
			Return(pageEnvelope(t, true, "same", discussion(1, old))).Twice()
		fetcher := NewDiscussionFetcher(newTestConfig(), transport)

		res := fetcher.Process(context.Background(), repo)

		assert.ErrorIs(t, res.Err(), domainErrors.ErrPaginationStalled)
		transport.AssertNumberOfCalls(t, "Execute", 2)
	})

	t.Run("dry run makes no call", func(t *testing.T) {
		// Arrange
		transport := new(MockTransport)
		cfg := newTestConfig()
		cfg.DryRun = true
		fetcher := NewDiscussionFetcher(cfg, transport)

		// Act
		res := fetcher.Process(context.Background(), repo)

		// Assert
		assert.True(t, res.Success())
		assert.True(t, res.Debug())
		assert.Empty(t, res.Value())
		transport.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})

	t.Run("verbose logs each requested page", func(t *testing.T) {
		// Arrange
		ctx, buf := captureLogs(t)
		transport := new(MockTransport)
		first := "cursor-1"
		transport.On("Execute", mock.Anything, graphql.BuildFetchAllDiscussionsQuery("owner", "repo", nil)).
			Return(pageEnvelope(t, true, first, discussion(1, old))).Once()
		transport.On("Execute", mock.Anything, graphql.BuildFetchAllDiscussionsQuery("owner", "repo", &first)).
			Return(pageEnvelope(t, false, "", discussion(2, old))).Once()
		cfg := newTestConfig()
		cfg.Verbose = true
		fetcher := NewDiscussionFetcher(cfg, transport)

		// Act
		res := fetcher.Process(ctx, repo)

		// Assert
		assert.True(t, res.Success())
		assert.Equal(t, []string{
			"Fetching discussions page for owner/repo, with cursor null",
			"Fetching discussions page for owner/repo, with cursor cursor-1",
		}, infoLines(buf))
	})
}
