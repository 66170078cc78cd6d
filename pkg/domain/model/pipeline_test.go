package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octoscope/pkg/domain/model"
)

func TestParseTimestamp(t *testing.T) {
	ts, err := model.ParseTimestamp("2026-08-30T10:15:00Z")
	gt.NoError(t, err)
	gt.Equal(t, ts, time.Date(2026, 8, 30, 10, 15, 0, 0, time.UTC))

	_, err = model.ParseTimestamp("2026-08-30 10:15:00")
	gt.Error(t, err)

	_, err = model.ParseTimestamp("")
	gt.Error(t, err)
}

func TestFormatTimestamp(t *testing.T) {
	gt.Equal(t, model.FormatTimestamp(time.Date(2026, 8, 30, 10, 15, 0, 0, time.UTC)), "2026-08-30T10:15:00Z")

	// Zero time maps to an empty string, like a job that never completed.
	gt.Equal(t, model.FormatTimestamp(time.Time{}), "")
}
