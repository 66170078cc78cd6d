package model

import (
	"encoding/json"
	"fmt"
)

// DefaultWindowDays is the trailing window applied when a request leaves the
// day count unset.
const DefaultWindowDays = 7

// AnalysisRequest selects which runs of a repository to analyze. Days == 0
// means "use the default window"; a negative value disables the window
// entirely. A non-zero RunID names one run explicitly and bypasses both the
// window and the workflow selector.
type AnalysisRequest struct {
	Repo       Repository
	WorkflowID string
	RunID      int64
	Days       int
}

func (x AnalysisRequest) SingleRun() bool {
	return x.RunID != 0
}

func (x AnalysisRequest) Query() RunQuery {
	if x.SingleRun() {
		return RunQuery{RunID: x.RunID}
	}
	return RunQuery{WorkflowID: x.WorkflowID}
}

// RunQuery narrows a run listing: by explicit run ID, by workflow (numeric ID
// or workflow file name), or neither for all repository runs.
type RunQuery struct {
	WorkflowID string
	RunID      int64
}

// Summary holds the aggregate statistics over the analyzed window. Rates and
// durations stay numeric here; formatting happens only at the wire boundary.
type Summary struct {
	TotalRuns       int
	SuccessfulRuns  int
	FailedRuns      int
	CancelledRuns   int
	SuccessRate     float64
	AverageDuration float64 // minutes
}

type RecommendationType string

const (
	RecommendationSuccessRate    RecommendationType = "success_rate"
	RecommendationDuration       RecommendationType = "duration"
	RecommendationFailurePattern RecommendationType = "failure_pattern"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

type Recommendation struct {
	Type     RecommendationType `json:"type"`
	Priority Priority           `json:"priority"`
	Message  string             `json:"message"`
}

// FailureRecord marks one failed job within a failed run. FailedAt is the
// job's completion timestamp passed through in wire format.
type FailureRecord struct {
	JobName  string `json:"job_name"`
	FailedAt string `json:"failed_at"`
}

// Inspection is the failure inspector's output. SkippedRuns counts failed
// runs whose job listing could not be fetched; those runs contribute no
// records but do not fail the analysis.
type Inspection struct {
	Records     []FailureRecord
	SkippedRuns int
}

// Thresholds are the rule boundaries of the recommendation classifier.
type Thresholds struct {
	SuccessRate     float64 // recommend below this percentage
	AverageDuration float64 // recommend above this many minutes
	FailureCount    int     // recommend at this many failures of one job
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		SuccessRate:     80.0,
		AverageDuration: 30.0,
		FailureCount:    2,
	}
}

// AnalysisReport is the success payload of one analysis call.
type AnalysisReport struct {
	Summary         Summary
	Recommendations []Recommendation
	RecentFailures  []FailureRecord
	SkippedRuns     int
}

type summaryPayload struct {
	TotalRuns       int    `json:"total_runs"`
	SuccessfulRuns  int    `json:"successful_runs"`
	FailedRuns      int    `json:"failed_runs"`
	CancelledRuns   int    `json:"cancelled_runs"`
	SuccessRate     string `json:"success_rate"`
	AverageDuration string `json:"average_duration"`
}

type reportPayload struct {
	Summary         summaryPayload   `json:"summary"`
	Recommendations []Recommendation `json:"recommendations"`
	RecentFailures  []FailureRecord  `json:"recent_failures"`
}

// MarshalJSON renders the fixed wire shape: rate and duration are
// pre-formatted strings, list fields are present even when empty, and the
// skipped-run count stays out of the payload.
func (x AnalysisReport) MarshalJSON() ([]byte, error) {
	p := reportPayload{
		Summary: summaryPayload{
			TotalRuns:       x.Summary.TotalRuns,
			SuccessfulRuns:  x.Summary.SuccessfulRuns,
			FailedRuns:      x.Summary.FailedRuns,
			CancelledRuns:   x.Summary.CancelledRuns,
			SuccessRate:     fmt.Sprintf("%.1f%%", x.Summary.SuccessRate),
			AverageDuration: fmt.Sprintf("%.1f minutes", x.Summary.AverageDuration),
		},
		Recommendations: x.Recommendations,
		RecentFailures:  x.RecentFailures,
	}
	if p.Recommendations == nil {
		p.Recommendations = []Recommendation{}
	}
	if p.RecentFailures == nil {
		p.RecentFailures = []FailureRecord{}
	}
	return json.Marshal(p)
}
