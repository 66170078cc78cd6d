package cli

import (
	"github.com/m-mizutani/octoscope/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Config collects the analyze command inputs after flag parsing.
type Config struct {
	Repo       string
	WorkflowID string
	RunID      int64
	Days       int
	Token      string
	JSON       bool
}

func NewConfig(cmd *cli.Command) *Config {
	return &Config{
		Repo:       cmd.String("repo"),
		WorkflowID: cmd.String("workflow"),
		RunID:      cmd.Int64("run"),
		Days:       cmd.Int("days"),
		Token:      cmd.String("token"),
		JSON:       cmd.Bool("json"),
	}
}

func (c *Config) ToAnalysisRequest(repo model.Repository) model.AnalysisRequest {
	return model.AnalysisRequest{
		Repo:       repo,
		WorkflowID: c.WorkflowID,
		RunID:      c.RunID,
		Days:       c.Days,
	}
}

func tokenFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "token",
		Usage:   "GitHub token",
		Sources: cli.EnvVars("GITHUB_TOKEN"),
	}
}

func analyzeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "repo",
			Aliases:  []string{"r"},
			Usage:    "Repository in owner/name format",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "workflow",
			Aliases: []string{"w"},
			Usage:   "Workflow ID or file name to narrow the listing",
		},
		&cli.Int64Flag{
			Name:  "run",
			Usage: "Analyze a single run by ID, ignoring the day window",
		},
		&cli.IntFlag{
			Name:    "days",
			Aliases: []string{"d"},
			Usage:   "Trailing window in days (negative for unbounded)",
			Value:   model.DefaultWindowDays,
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Print the report as JSON",
			Value: false,
		},
		tokenFlag(),
	}
}
