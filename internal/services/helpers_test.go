package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/shurcooL/githubv4"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/stale-discussions/internal/config"
	"github.com/thomas-vilte/stale-discussions/internal/graphql"
	"github.com/thomas-vilte/stale-discussions/internal/logger"
	"github.com/thomas-vilte/stale-discussions/internal/models"
)

var testThreshold = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestConfig() *config.Config {
	return &config.Config{
		RepoToken:       "token",
		DaysBeforeClose: 30,
		Threshold:       testThreshold,
		CloseReason:     githubv4.DiscussionCloseReasonOutdated,
		Language:        config.LangEN,
		Repository:      models.Repository{Owner: "owner", Name: "repo"},
	}
}

func discussion(number int, updatedAt time.Time) models.DiscussionNode {
	return models.DiscussionNode{
		ID:        fmt.Sprintf("D_kwDOdisc%d", number),
		Number:    number,
		UpdatedAt: updatedAt,
		Category:  models.DiscussionCategory{Name: "General"},
	}
}

func dataEnvelope(t *testing.T, v any) graphql.Envelope {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return graphql.Envelope{Data: raw}
}

func pageEnvelope(t *testing.T, hasNext bool, cursor string, nodes ...models.DiscussionNode) graphql.Envelope {
	t.Helper()
	return dataEnvelope(t, map[string]any{
		"repository": map[string]any{
			"discussions": models.DiscussionConnection{
				Nodes:    nodes,
				PageInfo: models.PageInfo{HasNextPage: hasNext, EndCursor: cursor},
			},
		},
	})
}

func rateLimitEnvelope(t *testing.T, limit, remaining int) graphql.Envelope {
	t.Helper()
	return dataEnvelope(t, map[string]any{
		"rateLimit": map[string]any{
			"limit":     limit,
			"remaining": remaining,
			"resetAt":   "2024-01-01T01:00:00Z",
		},
	})
}

func graphQLFailure() graphql.Envelope {
	return graphql.Envelope{Err: &graphql.Error{Type: "ErrorType", Message: "ErrorMessage"}}
}

// captureLogs returns a context whose logger writes uncoloured info records into the buffer.
func captureLogs(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	buf := &bytes.Buffer{}
	l := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}, false))
	return logger.WithLogger(context.Background(), l), buf
}

func infoLines(buf *bytes.Buffer) []string {
	var lines []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "[INFO]") {
			lines = append(lines, strings.TrimPrefix(line, "[INFO]  "))
		}
	}
	return lines
}
