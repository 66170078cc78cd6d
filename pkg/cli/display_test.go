package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octoscope/pkg/cli"
	"github.com/m-mizutani/octoscope/pkg/domain/model"
)

func TestConsoleDisplay(t *testing.T) {
	var buf bytes.Buffer
	display := cli.NewConsoleDisplay(&buf)

	repo := model.Repository{Owner: "octo", Name: "pipeline"}
	report := &model.AnalysisReport{
		Summary: model.Summary{
			TotalRuns:       10,
			SuccessfulRuns:  7,
			FailedRuns:      2,
			CancelledRuns:   1,
			SuccessRate:     70.0,
			AverageDuration: 12.5,
		},
		Recommendations: []model.Recommendation{
			{
				Type:     model.RecommendationSuccessRate,
				Priority: model.PriorityHigh,
				Message:  "Low success rate (70.0%). Review recent failures and consider improving test coverage.",
			},
		},
		RecentFailures: []model.FailureRecord{
			{JobName: "build", FailedAt: "2026-08-20T10:00:00Z"},
		},
		SkippedRuns: 1,
	}

	display.ShowReport(repo, report)

	out := buf.String()
	gt.True(t, strings.Contains(out, "octo/pipeline"))
	gt.True(t, strings.Contains(out, "Total runs:       10"))
	gt.True(t, strings.Contains(out, "Success rate:     70.0%"))
	gt.True(t, strings.Contains(out, "Average duration: 12.5 minutes"))
	gt.True(t, strings.Contains(out, "Low success rate (70.0%)"))
	gt.True(t, strings.Contains(out, "build"))
	gt.True(t, strings.Contains(out, "1 failed run(s) skipped"))
}

func TestConsoleDisplayNoFindings(t *testing.T) {
	var buf bytes.Buffer
	display := cli.NewConsoleDisplay(&buf)

	report := &model.AnalysisReport{
		Summary: model.Summary{TotalRuns: 3, SuccessfulRuns: 3, SuccessRate: 100.0},
	}
	display.ShowReport(model.Repository{Owner: "octo", Name: "green"}, report)

	out := buf.String()
	gt.True(t, strings.Contains(out, "Success rate:     100.0%"))
	gt.False(t, strings.Contains(out, "Recommendations"))
	gt.False(t, strings.Contains(out, "Recent failures"))
}
