package services

import (
	"context"
	"fmt"
	"time"

	"github.com/thomas-vilte/stale-discussions/internal/config"
	"github.com/thomas-vilte/stale-discussions/internal/logger"
	"github.com/thomas-vilte/stale-discussions/internal/models"
)

var _ Processor[[]models.DiscussionNode, []models.DiscussionNode] = (*StaleClassifier)(nil)

// Decision is the outcome of classifying one discussion.
type Decision string

const (
	DecisionStale            Decision = "stale"
	DecisionUnanswered       Decision = "unanswered"
	DecisionCategoryMismatch Decision = "category_mismatch"
	DecisionRecent           Decision = "recent"
)

// StaleClassifier selects the discussions that should be closed.
type StaleClassifier struct {
	cfg *config.Config
}

func NewStaleClassifier(cfg *config.Config) *StaleClassifier {
	return &StaleClassifier{cfg: cfg}
}

// Classify applies the exclusion rules in order; the first one that matches decides.
func (c *StaleClassifier) Classify(d models.DiscussionNode) Decision {
	if d.Category.IsAnswerable && !c.cfg.CloseUnanswered && !d.IsAnswered {
		return DecisionUnanswered
	}

	if c.cfg.Category != "" && d.Category.Name != c.cfg.Category {
		return DecisionCategoryMismatch
	}

	if !d.UpdatedAt.Before(c.cfg.Threshold) {
		return DecisionRecent
	}

	return DecisionStale
}

// Process keeps the stale discussions in their original order. It never fails.
func (c *StaleClassifier) Process(ctx context.Context, discussions []models.DiscussionNode) models.Result[[]models.DiscussionNode] {
	if c.cfg.Verbose {
		logger.Info(ctx, fmt.Sprintf("Comparing discussion dates with %s, to determine stale state",
			c.cfg.Threshold.UTC().Format(time.RFC1123)))
	}

	stale := []models.DiscussionNode{}
	for _, d := range discussions {
		decision := c.Classify(d)
		if c.cfg.Verbose {
			logger.Info(ctx, c.describe(d, decision))
		}
		if decision == DecisionStale {
			stale = append(stale, d)
		}
	}

	return models.Ok(stale, c.cfg.DryRun)
}

func (c *StaleClassifier) describe(d models.DiscussionNode, decision Decision) string {
	updated := d.UpdatedAt.UTC().Format(time.RFC3339)

	switch decision {
	case DecisionUnanswered:
		return fmt.Sprintf("  [#%d] Skipped: unanswered discussion in answerable category %q (close-unanswered is off)",
			d.Number, d.Category.Name)
	case DecisionCategoryMismatch:
		return fmt.Sprintf("  [#%d] Skipped: category %q does not match %q", d.Number, d.Category.Name, c.cfg.Category)
	case DecisionRecent:
		return fmt.Sprintf("  [#%d] Skipped: updated %s, not before threshold", d.Number, updated)
	default:
		return fmt.Sprintf("  [#%d] Marked stale: updated %s", d.Number, updated)
	}
}
