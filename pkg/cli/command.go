package cli

import (
	"github.com/urfave/cli/v3"
)

const version = "0.1.0"

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:    "octoscope",
		Usage:   "GitHub Actions pipeline analyzer",
		Version: version,
		Description: `octoscope analyzes GitHub Actions pipeline health: success rate, run
durations and recurring job failures, with prioritized recommendations.

Run "octoscope analyze" for a one-shot report, or "octoscope serve" to expose
the analysis and repository tools as an MCP server on stdio.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
				Value: false,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose logging",
				Value: false,
			},
		},
		Commands: []*cli.Command{
			NewAnalyzeCommand(),
			NewServeCommand(),
		},
	}
}
