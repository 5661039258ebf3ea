package services

import (
	"context"
	"fmt"

	"github.com/thomas-vilte/stale-discussions/internal/config"
	domainErrors "github.com/thomas-vilte/stale-discussions/internal/errors"
	"github.com/thomas-vilte/stale-discussions/internal/graphql"
	"github.com/thomas-vilte/stale-discussions/internal/logger"
	"github.com/thomas-vilte/stale-discussions/internal/models"
)

var _ Processor[models.Repository, []models.DiscussionNode] = (*DiscussionFetcher)(nil)

// DiscussionFetcher walks every page of the repository's open discussions.
type DiscussionFetcher struct {
	cfg       *config.Config
	transport graphql.Transport
}

func NewDiscussionFetcher(cfg *config.Config, transport graphql.Transport) *DiscussionFetcher {
	return &DiscussionFetcher{cfg: cfg, transport: transport}
}

// Process returns all discussions in page order. Any failed page fails the
// whole fetch; partial results are never returned. In dry-run mode nothing is
// fetched and the result is empty.
func (f *DiscussionFetcher) Process(ctx context.Context, repo models.Repository) models.Result[[]models.DiscussionNode] {
	discussions := []models.DiscussionNode{}
	seen := map[string]bool{}
	var cursor *string

	for page := 1; ; page++ {
		if f.cfg.Verbose {
			logger.Info(ctx, fmt.Sprintf("Fetching discussions page for %s, with cursor %s", repo, cursorLabel(cursor)))
		}

		if f.cfg.DryRun {
			break
		}

		res := graphql.Execute[models.DiscussionsResponse](ctx, f.transport,
			graphql.BuildFetchAllDiscussionsQuery(repo.Owner, repo.Name, cursor))
		if res.Err != nil {
			logger.Debug(ctx, "discussions page failed", "page", page, "error", res.Err)
			return models.Fail([]models.DiscussionNode{}, res.Err, f.cfg.DryRun)
		}

		if res.Data == nil || res.Data.Repository == nil {
			return models.Fail([]models.DiscussionNode{}, domainErrors.ErrMissingData.
				WithContext("operation", "list discussions").
				WithContext("repository", repo.String()).
				WithContext("page", page), f.cfg.DryRun)
		}

		conn := res.Data.Repository.Discussions
		discussions = append(discussions, conn.Nodes...)
		logger.Debug(ctx, "discussions page fetched", "page", page, "count", len(conn.Nodes))

		if !conn.PageInfo.HasNextPage {
			break
		}

		next := conn.PageInfo.EndCursor
		if next == "" || seen[next] {
			return models.Fail([]models.DiscussionNode{}, domainErrors.ErrPaginationStalled.
				WithContext("repository", repo.String()).
				WithContext("page", page).
				WithContext("cursor", next), f.cfg.DryRun)
		}
		seen[next] = true
		cursor = &next
	}

	return models.Ok(discussions, f.cfg.DryRun)
}

func cursorLabel(cursor *string) string {
	if cursor == nil {
		return "null"
	}
	return *cursor
}
