package services

import (
	"context"

	"github.com/thomas-vilte/stale-discussions/internal/config"
	domainErrors "github.com/thomas-vilte/stale-discussions/internal/errors"
	"github.com/thomas-vilte/stale-discussions/internal/graphql"
	"github.com/thomas-vilte/stale-discussions/internal/logger"
	"github.com/thomas-vilte/stale-discussions/internal/models"
)

var _ Processor[struct{}, models.RateLimit] = (*RateLimitFetcher)(nil)

// RateLimitFetcher reads the API quota for the current token.
type RateLimitFetcher struct {
	cfg       *config.Config
	transport graphql.Transport
}

func NewRateLimitFetcher(cfg *config.Config, transport graphql.Transport) *RateLimitFetcher {
	return &RateLimitFetcher{cfg: cfg, transport: transport}
}

func (f *RateLimitFetcher) Process(ctx context.Context, _ struct{}) models.Result[models.RateLimit] {
	if f.cfg.DryRun {
		return models.Ok(models.UnknownRateLimit, true)
	}

	res := graphql.Execute[models.RateLimitResponse](ctx, f.transport, graphql.BuildFetchRateLimitQuery())
	if res.Err != nil {
		return models.Fail(models.UnknownRateLimit, res.Err, f.cfg.DryRun)
	}

	if res.Data == nil || res.Data.RateLimit == nil {
		return models.Fail(models.UnknownRateLimit, domainErrors.ErrMissingData.
			WithContext("operation", "rate limit"), f.cfg.DryRun)
	}

	rl := *res.Data.RateLimit
	logger.Debug(ctx, "rate limit fetched", "limit", rl.Limit, "remaining", rl.Remaining)

	return models.Ok(rl, f.cfg.DryRun)
}
