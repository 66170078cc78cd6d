package cli

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octoscope/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func parseConfig(t *testing.T, args ...string) *Config {
	t.Helper()

	var config *Config
	cmd := &cli.Command{
		Name:  "analyze",
		Flags: analyzeFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			config = NewConfig(c)
			return nil
		},
	}

	gt.NoError(t, cmd.Run(t.Context(), append([]string{"analyze"}, args...)))
	return config
}

func TestNewConfig(t *testing.T) {
	config := parseConfig(t,
		"--repo", "m-mizutani/octoscope",
		"--workflow", "ci.yml",
		"--run", "9876543210",
		"--days", "14",
		"--json",
	)

	gt.Equal(t, config.Repo, "m-mizutani/octoscope")
	gt.Equal(t, config.WorkflowID, "ci.yml")
	// Run IDs exceed int32; the flag must carry the full 64-bit value.
	gt.Equal(t, config.RunID, int64(9876543210))
	gt.Equal(t, config.Days, 14)
	gt.True(t, config.JSON)
}

func TestNewConfigDefaults(t *testing.T) {
	config := parseConfig(t, "--repo", "m-mizutani/octoscope")

	gt.Equal(t, config.RunID, int64(0))
	gt.Equal(t, config.Days, model.DefaultWindowDays)
	gt.False(t, config.JSON)

	req := config.ToAnalysisRequest(model.Repository{Owner: "m-mizutani", Name: "octoscope"})
	gt.Equal(t, req.Days, model.DefaultWindowDays)
	gt.False(t, req.SingleRun())
}
