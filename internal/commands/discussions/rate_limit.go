package discussions

import (
	"context"
	"io"
	"time"

	"github.com/thomas-vilte/stale-discussions/internal/action"
	"github.com/thomas-vilte/stale-discussions/internal/i18n"
	"github.com/thomas-vilte/stale-discussions/internal/ui"
	"github.com/urfave/cli/v3"
)

type RateLimitCommand struct {
	provider PipelineProvider
	runtime  *action.Runtime
	out      io.Writer
	now      func() time.Time
}

func NewRateLimitCommand(provider PipelineProvider, runtime *action.Runtime, out io.Writer) *RateLimitCommand {
	return &RateLimitCommand{
		provider: provider,
		runtime:  runtime,
		out:      out,
		now:      time.Now,
	}
}

func (c *RateLimitCommand) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:    "rate-limit",
		Aliases: []string{"rl"},
		Usage:   t.GetMessage("rate_limit_command_usage", 0, nil),
		Flags:   Flags(t),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := LoadConfig(cmd, c.now())
			if err != nil {
				return err
			}

			_ = t.SetLanguage(cfg.Language)
			ctx = initLogger(ctx, c.out, c.runtime, cfg)

			pipeline, err := c.provider(ctx, cfg)
			if err != nil {
				return err
			}

			rl, err := pipeline.RateLimit(ctx)
			if err != nil {
				return err
			}

			ui.PrintRateLimit(c.out, t, rl)
			return nil
		},
	}
}
