package server

import (
	"context"

	"github.com/m-mizutani/octoscope/pkg/domain/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type AnalyzePipelineInput struct {
	RepoOwner  string `json:"repo_owner" jsonschema:"required,Repository owner"`
	RepoName   string `json:"repo_name" jsonschema:"required,Repository name"`
	WorkflowID string `json:"workflow_id,omitempty" jsonschema:"Workflow ID or file name to narrow the listing"`
	RunID      int64  `json:"run_id,omitempty" jsonschema:"Analyze a single run regardless of the day window"`
	Days       int    `json:"days,omitempty" jsonschema:"Trailing window in days (default 7, negative for unbounded)"`
}

func newAnalyzePipelineHandler(deps *Dependencies) mcp.ToolHandlerFor[AnalyzePipelineInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AnalyzePipelineInput) (*mcp.CallToolResult, any, error) {
		report, err := deps.Analyzer.Execute(ctx, model.AnalysisRequest{
			Repo:       model.Repository{Owner: input.RepoOwner, Name: input.RepoName},
			WorkflowID: input.WorkflowID,
			RunID:      input.RunID,
			Days:       input.Days,
		})
		if err != nil {
			return errorResult(err), nil, nil
		}

		result, err := jsonResult(report)
		return result, nil, err
	}
}
