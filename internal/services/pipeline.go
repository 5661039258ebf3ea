package services

import (
	"context"

	"github.com/thomas-vilte/stale-discussions/internal/config"
	"github.com/thomas-vilte/stale-discussions/internal/graphql"
	"github.com/thomas-vilte/stale-discussions/internal/logger"
	"github.com/thomas-vilte/stale-discussions/internal/models"
)

// RepositoryChecker verifies the target repository can be processed at all.
type RepositoryChecker interface {
	CheckDiscussionsEnabled(ctx context.Context) error
}

// Pipeline runs the stages of one stale-discussion pass in order.
type Pipeline struct {
	cfg        *config.Config
	checker    RepositoryChecker
	groups     Grouper
	rateLimit  Processor[struct{}, models.RateLimit]
	fetcher    Processor[models.Repository, []models.DiscussionNode]
	classifier Processor[[]models.DiscussionNode, []models.DiscussionNode]
	handler    Processor[HandleInput, []models.DiscussionNode]
}

// NewPipeline wires the default stages over transport. checker and groups may be nil.
func NewPipeline(cfg *config.Config, transport graphql.Transport, checker RepositoryChecker, groups Grouper) *Pipeline {
	groups = groupsOrDefault(groups)
	return &Pipeline{
		cfg:        cfg,
		checker:    checker,
		groups:     groups,
		rateLimit:  NewRateLimitFetcher(cfg, transport),
		fetcher:    NewDiscussionFetcher(cfg, transport),
		classifier: NewStaleClassifier(cfg),
		handler:    NewStaleHandler(cfg, transport, groups),
	}
}

// RateLimit runs only the quota probe.
func (p *Pipeline) RateLimit(ctx context.Context) (models.RateLimit, error) {
	res := p.rateLimit.Process(ctx, struct{}{})
	return res.Value(), res.Err()
}

// Run executes rate limit, preflight, fetch, classify, handle and rate limit
// again. The first failing stage stops the run and its error is returned as is.
func (p *Pipeline) Run(ctx context.Context) (*models.RunReport, error) {
	ctx = logger.With(ctx, "repository", p.cfg.Repository.String())

	before := p.rateLimit.Process(ctx, struct{}{})
	if !before.Success() {
		return nil, before.Err()
	}

	if !p.cfg.DryRun && p.checker != nil {
		if err := p.checker.CheckDiscussionsEnabled(ctx); err != nil {
			return nil, err
		}
	}

	var fetched models.Result[[]models.DiscussionNode]
	if err := p.stage("Fetching discussions", func() error {
		fetched = p.fetcher.Process(ctx, p.cfg.Repository)
		return fetched.Err()
	}); err != nil {
		return nil, err
	}

	var stale models.Result[[]models.DiscussionNode]
	if err := p.stage("Determining stale discussions", func() error {
		stale = p.classifier.Process(ctx, fetched.Value())
		return stale.Err()
	}); err != nil {
		return nil, err
	}

	var handled models.Result[[]models.DiscussionNode]
	if err := p.stage("Handling stale discussions", func() error {
		handled = p.handler.Process(ctx, HandleInput{
			Discussions: stale.Value(),
			Repository:  p.cfg.Repository,
		})
		return handled.Err()
	}); err != nil {
		return nil, err
	}

	after := p.rateLimit.Process(ctx, struct{}{})
	if !after.Success() {
		return nil, after.Err()
	}

	report := &models.RunReport{
		Fetched:   len(fetched.Value()),
		Processed: len(handled.Value()),
		DryRun:    p.cfg.DryRun,
		Before:    before.Value(),
		After:     after.Value(),
		Handled:   handled.Value(),
	}
	if !p.cfg.DryRun {
		report.Operations = report.Processed
	}

	logger.Debug(ctx, "run finished",
		"fetched", report.Fetched,
		"processed", report.Processed,
		"operations", report.Operations)

	return report, nil
}

func (p *Pipeline) stage(title string, fn func() error) error {
	if !p.cfg.Verbose {
		return fn()
	}
	return p.groups.Group(title, fn)
}
