package services

import (
	"context"

	"github.com/thomas-vilte/stale-discussions/internal/models"
)

// Processor is the contract shared by every pipeline stage: given a typed
// input, produce a typed result envelope. Stages receive their configuration
// at construction time.
type Processor[I, O any] interface {
	Process(ctx context.Context, input I) models.Result[O]
}

// Grouper wraps a unit of work in a collapsible log group.
type Grouper interface {
	Group(title string, fn func() error) error
}

type noGroups struct{}

func (noGroups) Group(_ string, fn func() error) error {
	return fn()
}

func groupsOrDefault(g Grouper) Grouper {
	if g == nil {
		return noGroups{}
	}
	return g
}
