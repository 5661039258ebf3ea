package models

import "time"

// RateLimit is the GraphQL rate limit state of the token.
// Negative values mean the figures are unknown, never that the budget is exhausted.
type RateLimit struct {
	Limit     int        `json:"limit"`
	Remaining int        `json:"remaining"`
	ResetAt   *time.Time `json:"resetAt,omitempty"`
}

// UnknownRateLimit is reported in dry-run mode and when the probe fails.
var UnknownRateLimit = RateLimit{Limit: -1, Remaining: -1}

// Known reports whether both figures come from the API.
func (r RateLimit) Known() bool {
	return r.Limit >= 0 && r.Remaining >= 0
}

// Used returns how much of the budget has been spent, or -1 when unknown.
func (r RateLimit) Used() int {
	if !r.Known() {
		return -1
	}
	return r.Limit - r.Remaining
}

type RateLimitResponse struct {
	RateLimit *RateLimit `json:"rateLimit"`
}
