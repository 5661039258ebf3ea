package graphql

import (
	"encoding/json"
	"testing"

	"github.com/shurcooL/githubv4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFetchRateLimitQuery(t *testing.T) {
	doc := BuildFetchRateLimitQuery()

	assert.Equal(t, `
query {
  rateLimit {
    limit
    remaining
    resetAt
  }
}`, doc.Query)
	assert.Empty(t, doc.Variables)
}

func TestBuildFetchAllDiscussionsQuery(t *testing.T) {
	t.Run("first page sends a null cursor", func(t *testing.T) {
		// Act
		doc := BuildFetchAllDiscussionsQuery("octo", "hello", nil)
		payload, err := json.Marshal(doc)
		require.NoError(t, err)

		// Assert
		assert.Contains(t, doc.Query, "repository(owner: $login, name: $repo)")
		assert.Contains(t, doc.Query, "after: $after")
		for _, field := range []string{"id", "number", "updatedAt", "isAnswered", "isAnswerable", "hasNextPage", "endCursor"} {
			assert.Contains(t, doc.Query, field)
		}
		assert.JSONEq(t, `{"login":"octo","repo":"hello","after":null}`, string(mustVariables(t, payload)))
	})

	t.Run("next page sends the cursor", func(t *testing.T) {
		cursor := "Y3Vyc29yOjEwMA=="

		doc := BuildFetchAllDiscussionsQuery("octo", "hello", &cursor)
		payload, err := json.Marshal(doc)
		require.NoError(t, err)

		assert.JSONEq(t, `{"login":"octo","repo":"hello","after":"Y3Vyc29yOjEwMA=="}`, string(mustVariables(t, payload)))
	})
}

func TestBuildDiscussionAddCommentQuery(t *testing.T) {
	doc := BuildDiscussionAddCommentQuery("D_kwDOA", "Closing due to inactivity")
	payload, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.Contains(t, doc.Query, "addDiscussionComment(input: $input)")
	assert.JSONEq(t, `{"input":{"discussionId":"D_kwDOA","body":"Closing due to inactivity"}}`, string(mustVariables(t, payload)))
}

func TestBuildCloseDiscussionQuery(t *testing.T) {
	doc := BuildCloseDiscussionQuery("D_kwDOA", githubv4.DiscussionCloseReasonOutdated)
	payload, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.Contains(t, doc.Query, "closeDiscussion(input: $input)")
	assert.JSONEq(t, `{"input":{"discussionId":"D_kwDOA","reason":"OUTDATED"}}`, string(mustVariables(t, payload)))
}

func mustVariables(t *testing.T, payload []byte) json.RawMessage {
	t.Helper()
	var body struct {
		Variables json.RawMessage `json:"variables"`
	}
	require.NoError(t, json.Unmarshal(payload, &body))
	return body.Variables
}
