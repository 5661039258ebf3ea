package github

import (
	"context"

	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/mock"
)

type MockRepoService struct {
	mock.Mock
}

func (m *MockRepoService) Get(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error) {
	args := m.Called(ctx, owner, repo)
	var resp *github.Response
	if r := args.Get(1); r != nil {
		resp = r.(*github.Response)
	}
	if args.Get(0) == nil {
		return nil, resp, args.Error(2)
	}
	return args.Get(0).(*github.Repository), resp, args.Error(2)
}
