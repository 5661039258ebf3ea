package graphql

import (
	"github.com/shurcooL/githubv4"
)

// DiscussionsPageSize is the number of discussions requested per page (the API maximum).
const DiscussionsPageSize = 100

// Document is a GraphQL operation with its variables.
type Document struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

const fetchAllDiscussionsQuery = `
query($login: String!, $repo: String!, $after: String) {
  repository(owner: $login, name: $repo) {
    discussions(first: 100, after: $after, states: [OPEN]) {
      nodes {
        id
        number
        updatedAt
        isAnswered
        category {
          name
          isAnswerable
        }
      }
      pageInfo {
        hasNextPage
        endCursor
      }
    }
  }
}`

const fetchRateLimitQuery = `
query {
  rateLimit {
    limit
    remaining
    resetAt
  }
}`

const addDiscussionCommentMutation = `
mutation($input: AddDiscussionCommentInput!) {
  addDiscussionComment(input: $input) {
    comment {
      id
    }
  }
}`

const closeDiscussionMutation = `
mutation($input: CloseDiscussionInput!) {
  closeDiscussion(input: $input) {
    discussion {
      id
    }
  }
}`

// BuildFetchAllDiscussionsQuery lists one page of open discussions. A nil cursor requests the first page.
func BuildFetchAllDiscussionsQuery(owner, repo string, cursor *string) Document {
	return Document{
		Query: fetchAllDiscussionsQuery,
		Variables: map[string]any{
			"login": owner,
			"repo":  repo,
			"after": cursor,
		},
	}
}

func BuildFetchRateLimitQuery() Document {
	return Document{Query: fetchRateLimitQuery}
}

func BuildDiscussionAddCommentQuery(discussionID, body string) Document {
	return Document{
		Query: addDiscussionCommentMutation,
		Variables: map[string]any{
			"input": githubv4.AddDiscussionCommentInput{
				DiscussionID: githubv4.ID(discussionID),
				Body:         githubv4.String(body),
			},
		},
	}
}

func BuildCloseDiscussionQuery(discussionID string, reason githubv4.DiscussionCloseReason) Document {
	return Document{
		Query: closeDiscussionMutation,
		Variables: map[string]any{
			"input": githubv4.CloseDiscussionInput{
				DiscussionID: githubv4.ID(discussionID),
				Reason:       &reason,
			},
		},
	}
}
