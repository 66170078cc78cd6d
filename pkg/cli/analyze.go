package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/octoscope/pkg/domain"
	"github.com/m-mizutani/octoscope/pkg/domain/model"
	"github.com/m-mizutani/octoscope/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func NewAnalyzeCommand() *cli.Command {
	return &cli.Command{
		Name:   "analyze",
		Usage:  "Analyze recent workflow runs of a repository",
		Flags:  analyzeFlags(),
		Action: runAnalyze,
	}
}

func runAnalyze(ctx context.Context, cmd *cli.Command) error {
	logger := newLogger(cmd)
	ctx = ctxlog.With(ctx, logger)

	config := NewConfig(cmd)
	repo, err := model.ParseRepository(config.Repo)
	if err != nil {
		return domain.ErrConfiguration.Wrap(err)
	}

	authService := usecase.NewAuthService(config.Token)
	githubService := usecase.NewGitHubService(authService)
	analyzer := usecase.NewAnalyzer(usecase.AnalyzerOptions{
		Actions: githubService,
	})

	report, err := analyzer.Execute(ctx, config.ToAnalysisRequest(repo))
	if err != nil {
		return err
	}

	if config.JSON {
		raw, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(raw))
		return nil
	}

	NewConsoleDisplay(os.Stdout).ShowReport(repo, report)
	return nil
}
