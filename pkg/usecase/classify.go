package usecase

import (
	"fmt"

	"github.com/m-mizutani/octoscope/pkg/domain/model"
)

// classify applies the threshold rules in fixed order: success rate first,
// duration second, then one recommendation per recurring job failure in
// first-encounter order. Inputs are read-only.
func classify(thresholds model.Thresholds, summary *model.Summary, records []model.FailureRecord) []model.Recommendation {
	var recommendations []model.Recommendation

	if summary.SuccessRate < thresholds.SuccessRate {
		recommendations = append(recommendations, model.Recommendation{
			Type:     model.RecommendationSuccessRate,
			Priority: model.PriorityHigh,
			Message: fmt.Sprintf("Low success rate (%.1f%%). Review recent failures and consider improving test coverage.",
				summary.SuccessRate),
		})
	}

	if summary.AverageDuration > thresholds.AverageDuration {
		recommendations = append(recommendations, model.Recommendation{
			Type:     model.RecommendationDuration,
			Priority: model.PriorityMedium,
			Message: fmt.Sprintf("Long average pipeline duration (%.1f minutes). Consider optimizing pipeline steps or using caching.",
				summary.AverageDuration),
		})
	}

	counts := make(map[string]int, len(records))
	var order []string
	for _, record := range records {
		if counts[record.JobName] == 0 {
			order = append(order, record.JobName)
		}
		counts[record.JobName]++
	}
	for _, name := range order {
		// A single failure is incidental, not a pattern.
		if counts[name] < thresholds.FailureCount {
			continue
		}
		recommendations = append(recommendations, model.Recommendation{
			Type:     model.RecommendationFailurePattern,
			Priority: model.PriorityHigh,
			Message:  fmt.Sprintf("Job '%s' failed %d times. Review and fix recurring issues.", name, counts[name]),
		})
	}

	return recommendations
}
