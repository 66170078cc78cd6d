package cli

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/octoscope/pkg/server"
	"github.com/m-mizutani/octoscope/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func NewServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the MCP server on stdio",
		Flags: []cli.Flag{
			tokenFlag(),
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "Also write JSON logs to this file",
				Sources: cli.EnvVars("OCTOSCOPE_LOG_FILE"),
			},
		},
		Action: runServe,
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	logger, cleanup := newServeLogger(cmd.String("log-file"), logLevel(cmd))
	defer func() { _ = cleanup() }()
	ctx = ctxlog.With(ctx, logger)

	authService := usecase.NewAuthService(cmd.String("token"))
	githubService := usecase.NewGitHubService(authService)

	srv := server.New(version, logger)
	server.RegisterAll(srv.MCP(), &server.Dependencies{
		Analyzer: usecase.NewAnalyzer(usecase.AnalyzerOptions{Actions: githubService}),
		Pulls:    usecase.NewPullRequestUseCase(githubService),
		Scaffold: usecase.NewScaffoldUseCase(githubService),
	})

	return srv.Run(ctx)
}
