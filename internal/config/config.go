package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/shurcooL/githubv4"
	domainErrors "github.com/thomas-vilte/stale-discussions/internal/errors"
	"github.com/thomas-vilte/stale-discussions/internal/models"
	"gopkg.in/yaml.v3"
)

// Option names, shared by CLI flags, action inputs and the config file.
const (
	OptRepoToken       = "repo-token"
	OptMessage         = "message"
	OptDaysBeforeClose = "days-before-close"
	OptCategory        = "category"
	OptCloseUnanswered = "close-unanswered"
	OptCloseReason     = "close-reason"
	OptVerbose         = "verbose"
	OptDryRun          = "dry-run"
	OptLanguage        = "language"
	OptRepository      = "repository"
	OptAPIURL          = "api-url"
	OptGraphQLURL      = "graphql-url"
)

const (
	defaultDaysBeforeClose = "30"
	defaultCloseReason     = string(githubv4.DiscussionCloseReasonOutdated)
	defaultLanguage        = LangEN
	defaultGraphQLURL      = "graphql"
)

// Config is the validated configuration every pipeline stage is built with.
type Config struct {
	RepoToken       string
	Message         string
	DaysBeforeClose int
	// Threshold is the cutoff instant: a discussion is stale iff updatedAt is strictly before it.
	Threshold       time.Time
	Category        string
	CloseUnanswered bool
	CloseReason     githubv4.DiscussionCloseReason
	Verbose         bool
	// DryRun disables every network call that could mutate a discussion.
	DryRun     bool
	Language   string
	Repository models.Repository
	APIURL     string
	GraphQLURL string
}

var closeReasons = []githubv4.DiscussionCloseReason{
	githubv4.DiscussionCloseReasonDuplicate,
	githubv4.DiscussionCloseReasonOutdated,
	githubv4.DiscussionCloseReasonResolved,
}

// fileOptions lists the keys accepted in a TOML configuration file. The token is deliberately absent.
var fileOptions = map[string]bool{
	OptMessage:         true,
	OptDaysBeforeClose: true,
	OptCategory:        true,
	OptCloseUnanswered: true,
	OptCloseReason:     true,
	OptVerbose:         true,
	OptDryRun:          true,
	OptLanguage:        true,
	OptRepository:      true,
	OptAPIURL:          true,
	OptGraphQLURL:      true,
}

// Load builds a Config from explicitly set inputs, an optional TOML file and defaults, in that order of precedence.
// now is the instant the threshold is computed from.
func Load(inputs map[string]string, configPath string, now time.Time) (*Config, error) {
	values := map[string]string{
		OptDaysBeforeClose: defaultDaysBeforeClose,
		OptCloseReason:     defaultCloseReason,
		OptCloseUnanswered: "false",
		OptVerbose:         "false",
		OptDryRun:          "false",
		OptLanguage:        defaultLanguage,
		OptGraphQLURL:      defaultGraphQLURL,
	}

	if configPath != "" {
		fileValues, err := readFile(configPath)
		if err != nil {
			return nil, err
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}

	for k, v := range inputs {
		values[k] = v
	}

	return parse(values, now)
}

// readFile decodes a YAML file when the extension says so, TOML otherwise.
func readFile(path string) (map[string]string, error) {
	var raw map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, domainErrors.ErrConfigFile.WithError(err).WithContext("path", path)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, domainErrors.ErrConfigFile.WithError(err).WithContext("path", path)
		}
	default:
		if _, err := toml.DecodeFile(path, &raw); err != nil {
			return nil, domainErrors.ErrConfigFile.WithError(err).WithContext("path", path)
		}
	}

	values := make(map[string]string, len(raw))
	for k, v := range raw {
		if !fileOptions[k] {
			return nil, domainErrors.ErrConfigFile.
				WithContext("path", path).
				WithContext("key", k).
				WithSuggestion("Supported keys: " + strings.Join(sortedFileOptions(), ", "))
		}
		values[k] = fmt.Sprint(v)
	}
	return values, nil
}

func parse(values map[string]string, now time.Time) (*Config, error) {
	rawDays := strings.TrimSpace(values[OptDaysBeforeClose])
	days, err := strconv.Atoi(rawDays)
	if err != nil {
		return nil, domainErrors.ErrInvalidDays.WithContext("value", rawDays)
	}
	if days < 0 {
		return nil, domainErrors.ErrNegativeDays.WithContext("value", days)
	}

	reason, err := ParseCloseReason(values[OptCloseReason])
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		RepoToken:       values[OptRepoToken],
		Message:         values[OptMessage],
		DaysBeforeClose: days,
		Threshold:       now.AddDate(0, 0, -days),
		Category:        values[OptCategory],
		CloseUnanswered: values[OptCloseUnanswered] == "true",
		CloseReason:     reason,
		Verbose:         values[OptVerbose] == "true",
		DryRun:          values[OptDryRun] == "true",
		Language:        GetLocaleConfig(values[OptLanguage]),
		APIURL:          values[OptAPIURL],
		GraphQLURL:      values[OptGraphQLURL],
	}

	repo, err := models.ParseRepository(values[OptRepository])
	if err != nil {
		return nil, domainErrors.ErrInvalidRepository.WithError(err)
	}
	cfg.Repository = repo

	if cfg.RepoToken == "" && !cfg.DryRun {
		return nil, domainErrors.ErrTokenMissing
	}

	return cfg, nil
}

// ParseCloseReason normalises a case-insensitive close reason.
func ParseCloseReason(s string) (githubv4.DiscussionCloseReason, error) {
	upper := githubv4.DiscussionCloseReason(strings.ToUpper(strings.TrimSpace(s)))
	for _, r := range closeReasons {
		if upper == r {
			return r, nil
		}
	}
	return "", domainErrors.ErrInvalidCloseReason.WithContext("value", s)
}

// LoadDotEnv loads a local .env file when not running inside GitHub Actions.
// Variables that are already set are never overridden.
func LoadDotEnv(filenames ...string) {
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return
	}
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, f := range filenames {
		if _, err := os.Stat(f); err == nil {
			_ = godotenv.Load(f)
		}
	}
}

func sortedFileOptions() []string {
	keys := make([]string, 0, len(fileOptions))
	for k := range fileOptions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
