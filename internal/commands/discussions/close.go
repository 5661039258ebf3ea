package discussions

import (
	"context"
	"io"
	"time"

	"github.com/thomas-vilte/stale-discussions/internal/action"
	"github.com/thomas-vilte/stale-discussions/internal/config"
	"github.com/thomas-vilte/stale-discussions/internal/i18n"
	"github.com/thomas-vilte/stale-discussions/internal/logger"
	"github.com/thomas-vilte/stale-discussions/internal/ui"
	"github.com/urfave/cli/v3"
)

// OutputName is the step output holding the handled discussions as JSON.
const OutputName = "stale-discussions"

type CloseCommand struct {
	provider PipelineProvider
	runtime  *action.Runtime
	out      io.Writer
	now      func() time.Time
}

func NewCloseCommand(provider PipelineProvider, runtime *action.Runtime, out io.Writer) *CloseCommand {
	return &CloseCommand{
		provider: provider,
		runtime:  runtime,
		out:      out,
		now:      time.Now,
	}
}

func (c *CloseCommand) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:   "close",
		Usage:  t.GetMessage("close_command_usage", 0, nil),
		Flags:  Flags(t),
		Action: c.Action(t),
	}
}

// Action runs one full pass. It is also the root command's default action.
func (c *CloseCommand) Action(t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := LoadConfig(cmd, c.now())
		if err != nil {
			return err
		}

		_ = t.SetLanguage(cfg.Language)
		ctx = initLogger(ctx, c.out, c.runtime, cfg)
		log := logger.FromContext(ctx)
		start := time.Now()

		if cfg.Verbose {
			_ = c.runtime.Group(t.GetMessage("inputs_group", 0, nil), func() error {
				ui.PrintInputs(c.out, t, cfg)
				return nil
			})
		}

		pipeline, err := c.provider(ctx, cfg)
		if err != nil {
			log.Debug("failed to create pipeline", "error", err)
			return err
		}

		report, err := pipeline.Run(ctx)
		if err != nil {
			log.Debug("stale discussion run failed",
				"error", err,
				"duration_ms", time.Since(start).Milliseconds())
			return err
		}

		ui.PrintReport(c.out, t, report)

		if err := c.runtime.SetOutput(OutputName, report.Handled); err != nil {
			return err
		}

		log.Debug("stale discussion run completed",
			"processed", report.Processed,
			"duration_ms", time.Since(start).Milliseconds())

		return nil
	}
}

func initLogger(ctx context.Context, w io.Writer, runtime *action.Runtime, cfg *config.Config) context.Context {
	l := logger.Initialize(w, logger.Options{
		Verbose: cfg.Verbose,
		Debug:   runtime.RunnerDebug(),
		Actions: runtime.InActions(),
	})
	return logger.WithLogger(ctx, l)
}
