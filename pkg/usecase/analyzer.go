package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoscope/pkg/domain"
	"github.com/m-mizutani/octoscope/pkg/domain/interfaces"
	"github.com/m-mizutani/octoscope/pkg/domain/model"
)

const defaultInspectWorkers = 4

// Analyzer computes pipeline health statistics and rule-based recommendations
// for a window of workflow runs. One Execute call builds a fresh result graph
// and holds no state between calls.
type Analyzer struct {
	actions    interfaces.ActionsService
	thresholds model.Thresholds
	workers    int
	now        func() time.Time
}

type AnalyzerOptions struct {
	Actions    interfaces.ActionsService
	Thresholds *model.Thresholds
	// Workers bounds the concurrent job fetches during failure inspection.
	Workers int
}

func NewAnalyzer(opts AnalyzerOptions) *Analyzer {
	thresholds := model.DefaultThresholds()
	if opts.Thresholds != nil {
		thresholds = *opts.Thresholds
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultInspectWorkers
	}

	return &Analyzer{
		actions:    opts.Actions,
		thresholds: thresholds,
		workers:    workers,
		now:        time.Now,
	}
}

// Execute runs one analysis cycle: verify access, list runs, filter to the
// window, aggregate, inspect failed runs, classify. Errors up to aggregation
// are terminal; a failed job fetch during inspection only degrades the result.
func (a *Analyzer) Execute(ctx context.Context, req model.AnalysisRequest) (*model.AnalysisReport, error) {
	if req.Repo.Owner == "" || req.Repo.Name == "" {
		return nil, domain.ErrInvalidInput.Wrap(goerr.New("repo owner and name are required"))
	}

	if err := a.actions.VerifyAccess(ctx, req.Repo); err != nil {
		return nil, err
	}

	runs, err := a.actions.ListRuns(ctx, req.Repo, req.Query())
	if err != nil {
		return nil, err
	}

	if !req.SingleRun() {
		days := req.Days
		if days == 0 {
			days = model.DefaultWindowDays
		}
		runs, err = filterByWindow(runs, days, a.now().UTC())
		if err != nil {
			return nil, err
		}
	}

	if len(runs) == 0 {
		return nil, domain.ErrNoRuns
	}

	summary, err := aggregate(runs)
	if err != nil {
		return nil, err
	}

	inspection := &model.Inspection{}
	if summary.FailedRuns > 0 {
		inspection = a.inspectFailures(ctx, req.Repo, runs)
	}

	ctxlog.From(ctx).Debug("analysis completed",
		slog.String("repo", req.Repo.FullName()),
		slog.Int("total_runs", summary.TotalRuns),
		slog.Int("failure_records", len(inspection.Records)),
		slog.Int("skipped_runs", inspection.SkippedRuns),
	)

	return &model.AnalysisReport{
		Summary:         *summary,
		Recommendations: classify(a.thresholds, summary, inspection.Records),
		RecentFailures:  inspection.Records,
		SkippedRuns:     inspection.SkippedRuns,
	}, nil
}

// filterByWindow keeps runs created strictly later than (now - days). A
// non-positive day count disables filtering.
func filterByWindow(runs []*model.PipelineRun, days int, now time.Time) ([]*model.PipelineRun, error) {
	if days <= 0 {
		return runs, nil
	}

	cutoff := now.AddDate(0, 0, -days)
	filtered := make([]*model.PipelineRun, 0, len(runs))
	for _, run := range runs {
		created, err := run.CreatedTime()
		if err != nil {
			return nil, domain.ErrTimestampFormat.Wrap(err, goerr.V("run_id", run.ID))
		}
		if created.After(cutoff) {
			filtered = append(filtered, run)
		}
	}
	return filtered, nil
}

// aggregate computes the summary over a non-empty, already filtered run
// sequence. The success-rate denominator is the full total, so runs without a
// terminal conclusion lower the rate. Duration samples come only from
// succeeded and failed runs.
func aggregate(runs []*model.PipelineRun) (*model.Summary, error) {
	summary := &model.Summary{TotalRuns: len(runs)}

	var durationSum float64
	var durationCount int
	for _, run := range runs {
		switch run.Conclusion {
		case model.ConclusionSuccess:
			summary.SuccessfulRuns++
		case model.ConclusionFailure:
			summary.FailedRuns++
		case model.ConclusionCancelled:
			summary.CancelledRuns++
		}

		if run.Conclusion != model.ConclusionSuccess && run.Conclusion != model.ConclusionFailure {
			continue
		}
		created, err := run.CreatedTime()
		if err != nil {
			return nil, domain.ErrTimestampFormat.Wrap(err, goerr.V("run_id", run.ID))
		}
		updated, err := run.UpdatedTime()
		if err != nil {
			return nil, domain.ErrTimestampFormat.Wrap(err, goerr.V("run_id", run.ID))
		}
		durationSum += updated.Sub(created).Minutes()
		durationCount++
	}

	summary.SuccessRate = float64(summary.SuccessfulRuns) / float64(summary.TotalRuns) * 100
	if durationCount > 0 {
		summary.AverageDuration = durationSum / float64(durationCount)
	}

	return summary, nil
}
