package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/octoscope/pkg/domain/interfaces"
	"github.com/m-mizutani/octoscope/pkg/domain/model"
)

type ConsoleDisplay struct {
	out io.Writer
}

func NewConsoleDisplay(out io.Writer) interfaces.Display {
	return &ConsoleDisplay{out: out}
}

func (d *ConsoleDisplay) ShowReport(repo model.Repository, report *model.AnalysisReport) {
	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	summary := report.Summary

	fmt.Fprintf(d.out, "\n%s %s\n\n", bold("Pipeline analysis:"), repo.FullName())
	fmt.Fprintf(d.out, "  Total runs:       %d\n", summary.TotalRuns)
	fmt.Fprintf(d.out, "  Successful:       %s\n", green(fmt.Sprintf("%d", summary.SuccessfulRuns)))
	fmt.Fprintf(d.out, "  Failed:           %s\n", red(fmt.Sprintf("%d", summary.FailedRuns)))
	fmt.Fprintf(d.out, "  Cancelled:        %d\n", summary.CancelledRuns)
	fmt.Fprintf(d.out, "  Success rate:     %.1f%%\n", summary.SuccessRate)
	fmt.Fprintf(d.out, "  Average duration: %.1f minutes\n", summary.AverageDuration)

	if len(report.Recommendations) > 0 {
		fmt.Fprintf(d.out, "\n%s\n", bold("Recommendations"))
		for _, rec := range report.Recommendations {
			marker := yellow("●")
			if rec.Priority == model.PriorityHigh {
				marker = red("●")
			}
			fmt.Fprintf(d.out, "  %s [%s] %s\n", marker, rec.Priority, rec.Message)
		}
	}

	if len(report.RecentFailures) > 0 {
		fmt.Fprintf(d.out, "\n%s\n", bold("Recent failures"))
		for _, failure := range report.RecentFailures {
			fmt.Fprintf(d.out, "  %s %s (%s)\n", red("✗"), failure.JobName, failure.FailedAt)
		}
	}

	if report.SkippedRuns > 0 {
		fmt.Fprintf(d.out, "\n  %d failed run(s) skipped: job details unavailable\n", report.SkippedRuns)
	}

	fmt.Fprintln(d.out)
}
