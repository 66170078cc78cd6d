package server

import (
	"github.com/m-mizutani/octoscope/pkg/usecase"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Dependencies holds the usecases shared by the tool handlers.
type Dependencies struct {
	Analyzer *usecase.Analyzer
	Pulls    *usecase.PullRequestUseCase
	Scaffold *usecase.ScaffoldUseCase
}

// RegisterAll registers every tool with the MCP server.
func RegisterAll(srv *mcp.Server, deps *Dependencies) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "analyze_pipeline_results",
		Description: "Analyze GitHub Actions pipeline results and provide recommendations",
	}, newAnalyzePipelineHandler(deps))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "fetch_pr",
		Description: "Fetch metadata and changed files of a GitHub pull request",
	}, newFetchPRHandler(deps))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "create_pull_request",
		Description: "Create a GitHub pull request",
	}, newCreatePullRequestHandler(deps))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "merge_pull_request",
		Description: "Merge a GitHub pull request (merge, squash or rebase)",
	}, newMergePullRequestHandler(deps))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "create_repository",
		Description: "Create a new GitHub repository",
	}, newCreateRepositoryHandler(deps))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "setup_repository_template",
		Description: "Set up a repository with a predefined starter template",
	}, newSetupTemplateHandler(deps))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "create_dockerfile",
		Description: "Create a Dockerfile for the project based on its language",
	}, newCreateDockerfileHandler(deps))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "generate_readme",
		Description: "Generate a README.md file for the project based on its language",
	}, newGenerateReadmeHandler(deps))
}
