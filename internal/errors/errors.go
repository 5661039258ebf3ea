package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeVCS           ErrorType = "VCS"
	TypeGraphQL       ErrorType = "GRAPHQL"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, e.Context[k]))
		}
		msg += " [" + strings.Join(parts, " ") + "]"
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches two AppErrors by type and message, so sentinels survive WithContext copies.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Configuration errors
var (
	ErrInvalidDays = NewAppError(TypeConfiguration, "days-before-close did not parse to a valid number", nil).
			WithSuggestion("Use a whole number of days, for example: days-before-close: 30")

	ErrNegativeDays = NewAppError(TypeConfiguration, "days-before-close must not be negative", nil)

	ErrInvalidCloseReason = NewAppError(TypeConfiguration, "invalid DiscussionCloseReason", nil).
				WithSuggestion("Use one of: DUPLICATE, OUTDATED, RESOLVED")

	ErrInvalidRepository = NewAppError(TypeConfiguration, "repository must have the form owner/name", nil).
				WithSuggestion("Set GITHUB_REPOSITORY or pass --repository owner/name")

	ErrTokenMissing = NewAppError(TypeConfiguration, "repo-token is missing", nil).
			WithSuggestion("Pass repo-token: ${{ secrets.GITHUB_TOKEN }} or export GITHUB_TOKEN")

	ErrConfigFile = NewAppError(TypeConfiguration, "failed to read configuration file", nil)
)

// GitHub/VCS specific errors
var (
	ErrRepositoryNotFound = NewAppError(TypeVCS, "repository not found", nil).
				WithSuggestion("Check repository name and token access permissions")

	ErrGitHubTokenInvalid = NewAppError(TypeVCS, "GitHub token is invalid or expired", nil).
				WithSuggestion("Generate a new token at: https://github.com/settings/tokens")

	ErrGitHubInsufficientPerms = NewAppError(TypeVCS, "GitHub token has insufficient permissions", nil).
					WithSuggestion("The workflow needs 'discussions: write' permission")

	ErrGitHubRateLimit = NewAppError(TypeVCS, "GitHub API rate limit exceeded", nil).
				WithSuggestion("Wait for the rate limit to reset or schedule the job less often")

	ErrDiscussionsDisabled = NewAppError(TypeVCS, "discussions are disabled for this repository", nil).
				WithSuggestion("Enable Discussions in the repository settings")
)

// GraphQL response errors
var (
	ErrMissingData = NewAppError(TypeGraphQL, "missing data in response", nil)

	ErrPaginationStalled = NewAppError(TypeGraphQL, "pagination did not advance", nil).
				WithSuggestion("The API reported another page without a new cursor; re-run the job")
)

var (
	ErrWriteOutput = NewAppError(TypeInternal, "failed to write action output", nil)
)
