package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/stale-discussions/internal/graphql"
)

type (
	MockTransport struct {
		mock.Mock
	}

	MockRepositoryChecker struct {
		mock.Mock
	}

	MockGrouper struct {
		mock.Mock
	}
)

func (m *MockTransport) Execute(ctx context.Context, doc graphql.Document) graphql.Envelope {
	args := m.Called(ctx, doc)
	return args.Get(0).(graphql.Envelope)
}

func (m *MockRepositoryChecker) CheckDiscussionsEnabled(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGrouper) Group(title string, fn func() error) error {
	m.Called(title)
	return fn()
}
