package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octoscope/pkg/domain"
	"github.com/m-mizutani/octoscope/pkg/domain/model"
	"github.com/m-mizutani/octoscope/pkg/usecase"
)

type fakePulls struct {
	verifyErr   error
	verifyCalls int

	fetched *model.PullRequest
	created *model.PullRequest
	merged  *model.MergeResult

	lastNew   model.NewPullRequest
	lastMerge model.MergeRequest
}

func (f *fakePulls) VerifyAccess(ctx context.Context, repo model.Repository) error {
	f.verifyCalls++
	return f.verifyErr
}

func (f *fakePulls) FetchPullRequest(ctx context.Context, repo model.Repository, number int) (*model.PullRequest, error) {
	return f.fetched, nil
}

func (f *fakePulls) CreatePullRequest(ctx context.Context, repo model.Repository, input model.NewPullRequest) (*model.PullRequest, error) {
	f.lastNew = input
	return f.created, nil
}

func (f *fakePulls) MergePullRequest(ctx context.Context, repo model.Repository, input model.MergeRequest) (*model.MergeResult, error) {
	f.lastMerge = input
	return f.merged, nil
}

func TestPullRequestFetchValidation(t *testing.T) {
	uc := usecase.NewPullRequestUseCase(&fakePulls{})

	_, err := uc.Fetch(t.Context(), model.Repository{Owner: "o"}, 1)
	gt.True(t, domain.ErrInvalidInput.Is(err))

	_, err = uc.Fetch(t.Context(), testRepo, 0)
	gt.True(t, domain.ErrInvalidInput.Is(err))
}

func TestPullRequestCreateDefaultsBase(t *testing.T) {
	fake := &fakePulls{created: &model.PullRequest{Number: 12}}
	uc := usecase.NewPullRequestUseCase(fake)

	pr, err := uc.Create(t.Context(), testRepo, model.NewPullRequest{
		Title: "Add feature",
		Head:  "feature-branch",
	})
	gt.NoError(t, err)
	gt.Equal(t, pr.Number, 12)
	gt.Equal(t, fake.lastNew.Base, "main")
	gt.Equal(t, fake.verifyCalls, 1)
}

func TestPullRequestCreateValidation(t *testing.T) {
	fake := &fakePulls{}
	uc := usecase.NewPullRequestUseCase(fake)

	_, err := uc.Create(t.Context(), testRepo, model.NewPullRequest{Head: "branch"})
	gt.True(t, domain.ErrInvalidInput.Is(err))

	_, err = uc.Create(t.Context(), testRepo, model.NewPullRequest{Title: "title"})
	gt.True(t, domain.ErrInvalidInput.Is(err))

	// Validation failures never reach the API.
	gt.Equal(t, fake.verifyCalls, 0)
}

func TestPullRequestMerge(t *testing.T) {
	testCases := []struct {
		name       string
		input      model.MergeRequest
		wantErr    bool
		wantMethod model.MergeMethod
	}{
		{
			name:       "default method",
			input:      model.MergeRequest{Number: 3},
			wantMethod: model.MergeMethodMerge,
		},
		{
			name:       "squash",
			input:      model.MergeRequest{Number: 3, Method: model.MergeMethodSquash},
			wantMethod: model.MergeMethodSquash,
		},
		{
			name:    "invalid method",
			input:   model.MergeRequest{Number: 3, Method: "fast-forward"},
			wantErr: true,
		},
		{
			name:    "missing number",
			input:   model.MergeRequest{Method: model.MergeMethodMerge},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakePulls{merged: &model.MergeResult{Merged: true}}
			uc := usecase.NewPullRequestUseCase(fake)

			result, err := uc.Merge(t.Context(), testRepo, tc.input)
			if tc.wantErr {
				gt.Error(t, err)
				gt.True(t, domain.ErrInvalidInput.Is(err))
				return
			}
			gt.NoError(t, err)
			gt.True(t, result.Merged)
			gt.Equal(t, fake.lastMerge.Method, tc.wantMethod)
		})
	}
}

func TestPullRequestAccessFailureWins(t *testing.T) {
	fake := &fakePulls{verifyErr: domain.ErrAccessVerification}
	uc := usecase.NewPullRequestUseCase(fake)

	_, err := uc.Fetch(t.Context(), testRepo, 5)
	gt.True(t, domain.ErrAccessVerification.Is(err))
}
