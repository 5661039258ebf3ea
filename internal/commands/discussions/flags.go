package discussions

import (
	"time"

	"github.com/thomas-vilte/stale-discussions/internal/config"
	"github.com/thomas-vilte/stale-discussions/internal/i18n"
	"github.com/urfave/cli/v3"
)

const flagConfig = "config"

// inputOptions are the flags forwarded to config.Load when set to a non-empty value.
var inputOptions = []string{
	config.OptRepoToken,
	config.OptMessage,
	config.OptDaysBeforeClose,
	config.OptCategory,
	config.OptCloseUnanswered,
	config.OptCloseReason,
	config.OptVerbose,
	config.OptDryRun,
	config.OptLanguage,
	config.OptRepository,
	config.OptAPIURL,
	config.OptGraphQLURL,
}

// Flags returns the run inputs. Every input is a string so that values coming
// from the Actions runner and from the shell are parsed the same way.
func Flags(t *i18n.Translations) []cli.Flag {
	input := func(name, usageID string, sources ...string) cli.Flag {
		return &cli.StringFlag{
			Name:    name,
			Usage:   t.GetMessage(usageID, 0, nil),
			Sources: cli.EnvVars(sources...),
		}
	}

	return []cli.Flag{
		input(config.OptRepoToken, "repo_token_flag_usage", "INPUT_REPO-TOKEN", "GITHUB_TOKEN"),
		input(config.OptMessage, "message_flag_usage", "INPUT_MESSAGE"),
		input(config.OptDaysBeforeClose, "days_before_close_flag_usage", "INPUT_DAYS-BEFORE-CLOSE"),
		input(config.OptCategory, "category_flag_usage", "INPUT_CATEGORY"),
		input(config.OptCloseUnanswered, "close_unanswered_flag_usage", "INPUT_CLOSE-UNANSWERED"),
		input(config.OptCloseReason, "close_reason_flag_usage", "INPUT_CLOSE-REASON"),
		input(config.OptVerbose, "verbose_flag_usage", "INPUT_VERBOSE"),
		input(config.OptDryRun, "dry_run_flag_usage", "INPUT_DRY-RUN"),
		input(config.OptLanguage, "language_flag_usage", "INPUT_LANGUAGE"),
		input(config.OptRepository, "repository_flag_usage", "GITHUB_REPOSITORY"),
		input(config.OptAPIURL, "api_url_flag_usage", "GITHUB_API_URL"),
		input(config.OptGraphQLURL, "graphql_url_flag_usage", "GITHUB_GRAPHQL_URL"),
		&cli.StringFlag{
			Name:    flagConfig,
			Usage:   t.GetMessage("config_flag_usage", 0, nil),
			Sources: cli.EnvVars("INPUT_CONFIG", "STALE_DISCUSSIONS_CONFIG"),
		},
	}
}

// LoadConfig builds the run configuration from the parsed flags.
func LoadConfig(cmd *cli.Command, now time.Time) (*config.Config, error) {
	inputs := make(map[string]string)
	for _, name := range inputOptions {
		if !cmd.IsSet(name) {
			continue
		}
		if v := cmd.String(name); v != "" {
			inputs[name] = v
		}
	}
	return config.Load(inputs, cmd.String(flagConfig), now)
}
