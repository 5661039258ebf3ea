package models

import "time"

// DiscussionCategory is the category a discussion belongs to.
// IsAnswerable is true for Q&A style categories where a thread is resolved by marking an answer.
type DiscussionCategory struct {
	Name         string `json:"name"`
	IsAnswerable bool   `json:"isAnswerable"`
}

// DiscussionNode is a single discussion as returned by the listing query.
type DiscussionNode struct {
	ID         string             `json:"id"`
	Number     int                `json:"number"`
	UpdatedAt  time.Time          `json:"updatedAt"`
	IsAnswered bool               `json:"isAnswered"`
	Category   DiscussionCategory `json:"category"`
}

type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

type DiscussionConnection struct {
	Nodes    []DiscussionNode `json:"nodes"`
	PageInfo PageInfo         `json:"pageInfo"`
}

// DiscussionsResponse is the data payload of one listing page.
// Repository is nil when the API could not resolve the repository.
type DiscussionsResponse struct {
	Repository *struct {
		Discussions DiscussionConnection `json:"discussions"`
	} `json:"repository"`
}
