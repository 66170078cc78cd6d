package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/octoscope/pkg/domain/model"
	"golang.org/x/sync/errgroup"
)

// inspectFailures fetches the jobs of every failed run and collects a record
// per failed job. Fetches run concurrently with a small worker limit; a fetch
// failure for one run is absorbed and only counted as skipped, so a single
// unavailable job list never aborts the analysis. Records of one run stay
// contiguous, ordering across runs follows fetch completion.
func (a *Analyzer) inspectFailures(ctx context.Context, repo model.Repository, runs []*model.PipelineRun) *model.Inspection {
	logger := ctxlog.From(ctx)

	var failed []*model.PipelineRun
	for _, run := range runs {
		if run.Conclusion == model.ConclusionFailure {
			failed = append(failed, run)
		}
	}
	if len(failed) == 0 {
		return &model.Inspection{}
	}

	var (
		mu         sync.Mutex
		inspection model.Inspection
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for _, run := range failed {
		g.Go(func() error {
			jobs, err := a.actions.ListJobs(ctx, repo, run.ID)
			if err != nil {
				logger.Warn("skipping run, failed to fetch jobs",
					slog.Int64("run_id", run.ID),
					slog.String("error", err.Error()),
				)
				mu.Lock()
				inspection.SkippedRuns++
				mu.Unlock()
				return nil
			}

			var records []model.FailureRecord
			for _, job := range jobs {
				if job.Conclusion == model.ConclusionFailure {
					records = append(records, model.FailureRecord{
						JobName:  job.Name,
						FailedAt: job.CompletedAt,
					})
				}
			}
			if len(records) > 0 {
				mu.Lock()
				inspection.Records = append(inspection.Records, records...)
				mu.Unlock()
			}
			return nil
		})
	}

	// Workers absorb their own errors, Wait only joins them.
	_ = g.Wait()

	return &inspection
}
