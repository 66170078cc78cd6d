package interfaces

import (
	"context"

	"github.com/m-mizutani/octoscope/pkg/domain/model"
)

type PullRequestService interface {
	AccessVerifier
	FetchPullRequest(ctx context.Context, repo model.Repository, number int) (*model.PullRequest, error)
	CreatePullRequest(ctx context.Context, repo model.Repository, input model.NewPullRequest) (*model.PullRequest, error)
	MergePullRequest(ctx context.Context, repo model.Repository, input model.MergeRequest) (*model.MergeResult, error)
}
