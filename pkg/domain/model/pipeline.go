package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// TimeLayout is the UTC wire format GitHub uses for run and job timestamps.
const TimeLayout = "2006-01-02T15:04:05Z"

type RunConclusion string

const (
	ConclusionSuccess   RunConclusion = "success"
	ConclusionFailure   RunConclusion = "failure"
	ConclusionCancelled RunConclusion = "cancelled"
)

// PipelineRun is one execution of a workflow. Timestamps are kept in the wire
// format; a run with an unparsable timestamp means the provider broke its
// contract, which aborts the whole analysis.
type PipelineRun struct {
	ID         int64
	Name       string
	Conclusion RunConclusion
	CreatedAt  string
	UpdatedAt  string
}

func (r *PipelineRun) CreatedTime() (time.Time, error) {
	return ParseTimestamp(r.CreatedAt)
}

func (r *PipelineRun) UpdatedTime() (time.Time, error) {
	return ParseTimestamp(r.UpdatedAt)
}

// PipelineJob is one unit of work within a run.
type PipelineJob struct {
	Name        string
	Conclusion  RunConclusion
	CompletedAt string
}

func ParseTimestamp(s string) (time.Time, error) {
	ts, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, goerr.Wrap(err, "timestamp is not in wire format", goerr.V("value", s))
	}
	return ts, nil
}

// FormatTimestamp renders a time in the wire format. The zero time becomes an
// empty string, matching jobs that have not completed.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimeLayout)
}
