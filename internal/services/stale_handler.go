package services

import (
	"context"
	"fmt"

	"github.com/thomas-vilte/stale-discussions/internal/config"
	"github.com/thomas-vilte/stale-discussions/internal/graphql"
	"github.com/thomas-vilte/stale-discussions/internal/logger"
	"github.com/thomas-vilte/stale-discussions/internal/models"
)

var _ Processor[HandleInput, []models.DiscussionNode] = (*StaleHandler)(nil)

// HandleInput is the batch of stale discussions to act on.
type HandleInput struct {
	Discussions []models.DiscussionNode
	Repository  models.Repository
}

// StaleHandler comments on and closes stale discussions, one at a time.
type StaleHandler struct {
	cfg       *config.Config
	transport graphql.Transport
	groups    Grouper
}

func NewStaleHandler(cfg *config.Config, transport graphql.Transport, groups Grouper) *StaleHandler {
	return &StaleHandler{cfg: cfg, transport: transport, groups: groupsOrDefault(groups)}
}

// Process handles the discussions in order and stops at the first failing
// mutation. Discussions handled before the failure stay closed; the result is
// then empty and carries the transport error unchanged.
func (h *StaleHandler) Process(ctx context.Context, input HandleInput) models.Result[[]models.DiscussionNode] {
	for _, d := range input.Discussions {
		act := func() error {
			return h.handle(ctx, d)
		}

		var err error
		if h.cfg.Verbose {
			err = h.groups.Group(fmt.Sprintf("[#%d] Discussion #%d", d.Number, d.Number), act)
		} else {
			err = act()
		}

		if err != nil {
			logger.Debug(ctx, "stale discussion handling failed",
				"repository", input.Repository.String(),
				"number", d.Number,
				"error", err)
			return models.Fail([]models.DiscussionNode{}, err, h.cfg.DryRun)
		}
	}

	return models.Ok(input.Discussions, h.cfg.DryRun)
}

func (h *StaleHandler) handle(ctx context.Context, d models.DiscussionNode) error {
	if h.cfg.Verbose {
		logger.Info(ctx, fmt.Sprintf("  [#%d] Adding comment and closing discussion #%d", d.Number, d.Number))
	}

	if h.cfg.DryRun {
		if h.cfg.Verbose {
			logger.Info(ctx, fmt.Sprintf("  [#%d] └── [dry-run] Would comment and close this discussion", d.Number))
		}
		return nil
	}

	if h.cfg.Message != "" {
		env := h.transport.Execute(ctx, graphql.BuildDiscussionAddCommentQuery(d.ID, h.cfg.Message))
		if env.Err != nil {
			return env.Err
		}
		logger.Debug(ctx, "comment added", "number", d.Number)
	} else if h.cfg.Verbose {
		logger.Info(ctx, fmt.Sprintf("  [#%d] └── Skipping comment (no message)", d.Number))
	}

	env := h.transport.Execute(ctx, graphql.BuildCloseDiscussionQuery(d.ID, h.cfg.CloseReason))
	if env.Err != nil {
		return env.Err
	}
	logger.Debug(ctx, "discussion closed", "number", d.Number, "reason", string(h.cfg.CloseReason))

	return nil
}
