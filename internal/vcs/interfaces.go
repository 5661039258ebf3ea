package vcs

import (
	"context"

	"github.com/thomas-vilte/stale-discussions/internal/graphql"
)

// VCSClient is what the stale-discussion pipeline needs from a hosting provider.
type VCSClient interface {
	graphql.Transport
	// CheckDiscussionsEnabled fails when the repository cannot be reached or has discussions turned off.
	CheckDiscussionsEnabled(ctx context.Context) error
}
