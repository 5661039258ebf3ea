package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/thomas-vilte/stale-discussions/internal/action"
	"github.com/thomas-vilte/stale-discussions/internal/commands/discussions"
	"github.com/thomas-vilte/stale-discussions/internal/commands/registry"
	"github.com/thomas-vilte/stale-discussions/internal/config"
	"github.com/thomas-vilte/stale-discussions/internal/i18n"
	"github.com/thomas-vilte/stale-discussions/internal/ui"
	"github.com/thomas-vilte/stale-discussions/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	config.LoadDotEnv()

	runtime := action.NewRuntime(os.Stdout, os.Getenv)

	app, translations, err := initializeApp(runtime)
	if err != nil {
		log.Fatalf("Error initializing the CLI: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if !runtime.InActions() {
			ui.HandleAppError(os.Stderr, err, translations)
		}
		runtime.SetFailed(err)
	}

	os.Exit(runtime.ExitCode())
}

func initializeApp(runtime *action.Runtime) (*cli.Command, *i18n.Translations, error) {
	translations, err := i18n.NewTranslations(config.GetLocaleConfig(languageFromEnv()), "")
	if err != nil {
		return nil, nil, fmt.Errorf("error loading translations: %w", err)
	}

	provider := discussions.NewGitHubPipelineProvider(runtime)
	closeCommand := discussions.NewCloseCommand(provider, runtime, os.Stdout)

	registerCommand := registry.NewRegistry(translations)

	if err := registerCommand.Register("close", closeCommand); err != nil {
		return nil, nil, err
	}

	if err := registerCommand.Register("rate-limit", discussions.NewRateLimitCommand(provider, runtime, os.Stdout)); err != nil {
		return nil, nil, err
	}

	return &cli.Command{
		Name:        "stale-discussions",
		Usage:       translations.GetMessage("close_command_usage", 0, nil),
		Version:     version.FullVersion(),
		Description: translations.GetMessage("app_description", 0, nil),
		Flags:       discussions.Flags(translations),
		Action:      closeCommand.Action(translations),
		Commands:    registerCommand.CreateCommands(),
	}, translations, nil
}

func languageFromEnv() string {
	if lang := os.Getenv("INPUT_LANGUAGE"); lang != "" {
		return lang
	}
	return config.LangEN
}
