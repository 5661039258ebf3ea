package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v80/github"
	domainErrors "github.com/thomas-vilte/stale-discussions/internal/errors"
	"github.com/thomas-vilte/stale-discussions/internal/graphql"
	"github.com/thomas-vilte/stale-discussions/internal/logger"
	"github.com/thomas-vilte/stale-discussions/internal/vcs"
	"golang.org/x/oauth2"
)

var _ vcs.VCSClient = (*GitHubClient)(nil)

const (
	defaultAPIURL     = "https://api.github.com"
	defaultGraphQLURL = "graphql"
)

type RepositoriesService interface {
	Get(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error)
}

type GitHubClient struct {
	client      *github.Client
	repoService RepositoriesService
	owner       string
	repo        string
	graphqlURL  string
}

// Option configures a GitHubClient.
type Option func(*options)

type options struct {
	apiURL     string
	graphqlURL string
	httpClient *http.Client
}

// WithAPIURL points the client at a GitHub Enterprise Server REST endpoint.
func WithAPIURL(url string) Option {
	return func(o *options) {
		if url != "" {
			o.apiURL = url
		}
	}
}

// WithGraphQLURL sets the GraphQL endpoint, absolute or relative to the REST base URL.
func WithGraphQLURL(url string) Option {
	return func(o *options) {
		if url != "" {
			o.graphqlURL = url
		}
	}
}

// WithHTTPClient replaces the token-authenticated HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

func NewGitHubClient(owner, repo, token string, opts ...Option) (*GitHubClient, error) {
	o := &options{apiURL: defaultAPIURL, graphqlURL: defaultGraphQLURL}
	for _, opt := range opts {
		opt(o)
	}

	httpClient := o.httpClient
	if httpClient == nil && token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	if strings.TrimSuffix(o.apiURL, "/") != defaultAPIURL {
		var err error
		client, err = client.WithEnterpriseURLs(o.apiURL, o.apiURL)
		if err != nil {
			return nil, domainErrors.NewAppError(domainErrors.TypeConfiguration, "invalid GitHub API URL", err).
				WithContext("api_url", o.apiURL)
		}
	}

	return NewGitHubClientWithServices(client, client.Repositories, owner, repo, o.graphqlURL), nil
}

func NewGitHubClientWithServices(
	client *github.Client,
	repoService RepositoriesService,
	owner string,
	repo string,
	graphqlURL string,
) *GitHubClient {
	if graphqlURL == "" {
		graphqlURL = defaultGraphQLURL
	}
	return &GitHubClient{
		client:      client,
		repoService: repoService,
		owner:       owner,
		repo:        repo,
		graphqlURL:  graphqlURL,
	}
}

type graphqlResponse struct {
	Data   json.RawMessage  `json:"data"`
	Errors []*graphql.Error `json:"errors"`
}

// Execute posts the document to the GraphQL endpoint. GraphQL errors in a 200
// response are returned next to whatever data came back.
func (ghc *GitHubClient) Execute(ctx context.Context, doc graphql.Document) graphql.Envelope {
	log := logger.FromContext(ctx)

	req, err := ghc.client.NewRequest(http.MethodPost, ghc.graphqlURL, doc)
	if err != nil {
		return graphql.Envelope{Err: domainErrors.NewAppError(domainErrors.TypeInternal, "failed to build graphql request", err).
			WithContext("url", ghc.graphqlURL)}
	}

	var body graphqlResponse
	start := time.Now()
	resp, err := ghc.client.Do(ctx, req, &body)
	if err != nil {
		log.Debug("graphql request failed",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		return graphql.Envelope{Err: ghc.mapError(resp, err, "graphql")}
	}

	log.Debug("graphql request completed",
		"status", resp.StatusCode,
		"errors", len(body.Errors),
		"duration_ms", time.Since(start).Milliseconds())

	return graphql.Envelope{Data: body.Data, Err: graphql.AsError(body.Errors)}
}

// CheckDiscussionsEnabled reads the repository over REST and fails when
// discussions are turned off.
func (ghc *GitHubClient) CheckDiscussionsEnabled(ctx context.Context) error {
	repository, resp, err := ghc.repoService.Get(ctx, ghc.owner, ghc.repo)
	if err != nil {
		return ghc.mapError(resp, err, "get repository")
	}

	if !repository.GetHasDiscussions() {
		return domainErrors.ErrDiscussionsDisabled.
			WithContext("repo", fmt.Sprintf("%s/%s", ghc.owner, ghc.repo))
	}

	logger.Debug(ctx, "repository has discussions enabled",
		"repo", repository.GetFullName())
	return nil
}

func (ghc *GitHubClient) mapError(resp *github.Response, err error, operation string) error {
	repo := fmt.Sprintf("%s/%s", ghc.owner, ghc.repo)

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return domainErrors.ErrGitHubRateLimit.
			WithError(err).
			WithContext("operation", operation).
			WithContext("reset_at", rateErr.Rate.Reset.Format(time.RFC3339))
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		appErr := domainErrors.ErrGitHubRateLimit.
			WithError(err).
			WithContext("operation", operation)
		if retry := abuseErr.GetRetryAfter(); retry > 0 {
			appErr = appErr.WithContext("retry_after", retry.String())
		}
		return appErr
	}

	if resp != nil {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return domainErrors.ErrGitHubTokenInvalid.
				WithError(err).
				WithContext("operation", operation)
		case http.StatusForbidden:
			return domainErrors.ErrGitHubInsufficientPerms.
				WithError(err).
				WithContext("operation", operation).
				WithContext("repo", repo)
		case http.StatusNotFound:
			return domainErrors.ErrRepositoryNotFound.
				WithError(err).
				WithContext("operation", operation).
				WithContext("repo", repo)
		case http.StatusTooManyRequests:
			return domainErrors.ErrGitHubRateLimit.
				WithError(err).
				WithContext("operation", operation).
				WithContext("retry_after", resp.Header.Get("Retry-After"))
		}
	}

	return fmt.Errorf("github %s request failed: %w", operation, err)
}
