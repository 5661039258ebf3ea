package discussions

import (
	"context"

	"github.com/thomas-vilte/stale-discussions/internal/config"
	"github.com/thomas-vilte/stale-discussions/internal/models"
	"github.com/thomas-vilte/stale-discussions/internal/services"
	"github.com/thomas-vilte/stale-discussions/internal/vcs/github"
)

// Pipeline is a minimal interface for testing purposes
type Pipeline interface {
	Run(ctx context.Context) (*models.RunReport, error)
	RateLimit(ctx context.Context) (models.RateLimit, error)
}

// PipelineProvider builds a Pipeline once the configuration is known
type PipelineProvider func(ctx context.Context, cfg *config.Config) (Pipeline, error)

// NewGitHubPipelineProvider wires the pipeline to the GitHub API. Verbose
// stage and discussion groups are rendered through groups.
func NewGitHubPipelineProvider(groups services.Grouper) PipelineProvider {
	return func(_ context.Context, cfg *config.Config) (Pipeline, error) {
		client, err := github.NewGitHubClient(cfg.Repository.Owner, cfg.Repository.Name, cfg.RepoToken,
			github.WithAPIURL(cfg.APIURL),
			github.WithGraphQLURL(cfg.GraphQLURL))
		if err != nil {
			return nil, err
		}
		return services.NewPipeline(cfg, client, client, groups), nil
	}
}
