package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoscope/pkg/domain"
	"github.com/m-mizutani/octoscope/pkg/domain/interfaces"
	"github.com/m-mizutani/octoscope/pkg/domain/model"
)

const defaultBaseBranch = "main"

// PullRequestUseCase wraps the pull request API calls with input validation
// and the access check every operation performs first.
type PullRequestUseCase struct {
	github interfaces.PullRequestService
}

func NewPullRequestUseCase(github interfaces.PullRequestService) *PullRequestUseCase {
	return &PullRequestUseCase{github: github}
}

func (u *PullRequestUseCase) Fetch(ctx context.Context, repo model.Repository, number int) (*model.PullRequest, error) {
	if repo.Owner == "" || repo.Name == "" || number <= 0 {
		return nil, domain.ErrInvalidInput.Wrap(goerr.New("repo owner, name and PR number are required"))
	}

	if err := u.github.VerifyAccess(ctx, repo); err != nil {
		return nil, err
	}

	return u.github.FetchPullRequest(ctx, repo, number)
}

func (u *PullRequestUseCase) Create(ctx context.Context, repo model.Repository, input model.NewPullRequest) (*model.PullRequest, error) {
	if repo.Owner == "" || repo.Name == "" || input.Title == "" || input.Head == "" {
		return nil, domain.ErrInvalidInput.Wrap(goerr.New("repo owner, name, title and head branch are required"))
	}
	if input.Base == "" {
		input.Base = defaultBaseBranch
	}

	if err := u.github.VerifyAccess(ctx, repo); err != nil {
		return nil, err
	}

	return u.github.CreatePullRequest(ctx, repo, input)
}

func (u *PullRequestUseCase) Merge(ctx context.Context, repo model.Repository, input model.MergeRequest) (*model.MergeResult, error) {
	if repo.Owner == "" || repo.Name == "" || input.Number <= 0 {
		return nil, domain.ErrInvalidInput.Wrap(goerr.New("repo owner, name and PR number are required"))
	}
	if input.Method == "" {
		input.Method = model.MergeMethodMerge
	}
	if !input.Method.Valid() {
		return nil, domain.ErrInvalidInput.Wrap(goerr.New("merge method must be one of: merge, squash, rebase"))
	}

	if err := u.github.VerifyAccess(ctx, repo); err != nil {
		return nil, err
	}

	return u.github.MergePullRequest(ctx, repo, input)
}
