package interfaces

import (
	"context"

	"github.com/m-mizutani/octoscope/pkg/domain/model"
)

// ActionsService is the run repository client the analysis engine depends on.
type ActionsService interface {
	AccessVerifier
	ListRuns(ctx context.Context, repo model.Repository, query model.RunQuery) ([]*model.PipelineRun, error)
	ListJobs(ctx context.Context, repo model.Repository, runID int64) ([]*model.PipelineJob, error)
}
