package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/thomas-vilte/stale-discussions/internal/config"
	"github.com/thomas-vilte/stale-discussions/internal/i18n"
	"github.com/thomas-vilte/stale-discussions/internal/models"
)

// TimeFormat renders thresholds and reset times.
const TimeFormat = time.RFC1123

// PrintInputs lists the effective run configuration.
func PrintInputs(w io.Writer, t *i18n.Translations, cfg *config.Config) {
	line := func(id string, value any) {
		_, _ = fmt.Fprintln(w, t.GetMessage(id, 0, map[string]interface{}{"Value": value}))
	}

	line("input_repository", cfg.Repository.String())
	line("input_dry_run", cfg.DryRun)
	line("input_threshold", cfg.Threshold.UTC().Format(TimeFormat))
	if cfg.Category != "" {
		line("input_category", cfg.Category)
	}
	line("input_close_unanswered", cfg.CloseUnanswered)
	line("input_close_reason", string(cfg.CloseReason))
}

// PrintReport writes the end-of-run statistics.
func PrintReport(w io.Writer, t *i18n.Translations, report *models.RunReport) {
	if report.Processed == 0 {
		PrintSuccess(w, t.GetMessage("no_more_discussions", 0, nil))
	} else if report.DryRun {
		_, _ = fmt.Fprintln(w, t.GetMessage("dry_run_notice", 0, nil))
	}

	_, _ = fmt.Fprintln(w, Warning.Sprint(t.GetMessage("statistics_header", 0, nil)))
	PrintKeyValue(w, t.GetMessage("stat_processed", 0, nil), report.Processed)
	PrintKeyValue(w, t.GetMessage("stat_fetched", 0, nil), report.Fetched)
	PrintKeyValue(w, t.GetMessage("stat_operations", 0, nil), report.Operations)

	if report.Before.Known() {
		_, _ = fmt.Fprintln(w, t.GetMessage("rate_used", 0, map[string]interface{}{"Used": report.Before.Used()}))
	}

	if report.After.Remaining >= 0 {
		msg := t.GetMessage("rate_remaining", 0, map[string]interface{}{"Remaining": report.After.Remaining})
		if report.After.ResetAt != nil {
			msg += t.GetMessage("rate_reset", 0, map[string]interface{}{
				"ResetAt": report.After.ResetAt.UTC().Format(TimeFormat),
			})
		}
		_, _ = fmt.Fprintln(w, msg)
	}
}

// PrintRateLimit writes the current quota of the token.
func PrintRateLimit(w io.Writer, t *i18n.Translations, rl models.RateLimit) {
	if !rl.Known() {
		PrintWarning(w, t.GetMessage("rate_limit_unknown", 0, nil))
		return
	}

	PrintKeyValue(w, t.GetMessage("rate_limit_limit", 0, nil), rl.Limit)
	PrintKeyValue(w, t.GetMessage("rate_limit_remaining", 0, nil), rl.Remaining)
	if rl.ResetAt != nil {
		PrintKeyValue(w, t.GetMessage("rate_limit_reset", 0, nil), rl.ResetAt.UTC().Format(TimeFormat))
	}
}
