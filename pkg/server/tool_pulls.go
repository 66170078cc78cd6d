package server

import (
	"context"

	"github.com/m-mizutani/octoscope/pkg/domain/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type FetchPRInput struct {
	RepoOwner string `json:"repo_owner" jsonschema:"required,Repository owner"`
	RepoName  string `json:"repo_name" jsonschema:"required,Repository name"`
	PRNumber  int    `json:"pr_number" jsonschema:"required,Pull request number"`
}

func newFetchPRHandler(deps *Dependencies) mcp.ToolHandlerFor[FetchPRInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input FetchPRInput) (*mcp.CallToolResult, any, error) {
		pr, err := deps.Pulls.Fetch(ctx, model.Repository{Owner: input.RepoOwner, Name: input.RepoName}, input.PRNumber)
		if err != nil {
			return errorResult(err), nil, nil
		}

		result, err := jsonResult(pr)
		return result, nil, err
	}
}

type CreatePullRequestInput struct {
	RepoOwner  string `json:"repo_owner" jsonschema:"required,Repository owner"`
	RepoName   string `json:"repo_name" jsonschema:"required,Repository name"`
	Title      string `json:"title" jsonschema:"required,Pull request title"`
	Body       string `json:"body,omitempty" jsonschema:"Pull request description"`
	HeadBranch string `json:"head_branch" jsonschema:"required,Branch with the changes"`
	BaseBranch string `json:"base_branch,omitempty" jsonschema:"Branch to merge into (default main)"`
}

func newCreatePullRequestHandler(deps *Dependencies) mcp.ToolHandlerFor[CreatePullRequestInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CreatePullRequestInput) (*mcp.CallToolResult, any, error) {
		pr, err := deps.Pulls.Create(ctx, model.Repository{Owner: input.RepoOwner, Name: input.RepoName}, model.NewPullRequest{
			Title: input.Title,
			Body:  input.Body,
			Head:  input.HeadBranch,
			Base:  input.BaseBranch,
		})
		if err != nil {
			return errorResult(err), nil, nil
		}

		result, err := jsonResult(pr)
		return result, nil, err
	}
}

type MergePullRequestInput struct {
	RepoOwner     string `json:"repo_owner" jsonschema:"required,Repository owner"`
	RepoName      string `json:"repo_name" jsonschema:"required,Repository name"`
	PRNumber      int    `json:"pr_number" jsonschema:"required,Pull request number"`
	MergeMethod   string `json:"merge_method,omitempty" jsonschema:"One of merge, squash, rebase (default merge)"`
	CommitTitle   string `json:"commit_title,omitempty" jsonschema:"Title of the merge commit"`
	CommitMessage string `json:"commit_message,omitempty" jsonschema:"Body of the merge commit"`
}

func newMergePullRequestHandler(deps *Dependencies) mcp.ToolHandlerFor[MergePullRequestInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input MergePullRequestInput) (*mcp.CallToolResult, any, error) {
		merged, err := deps.Pulls.Merge(ctx, model.Repository{Owner: input.RepoOwner, Name: input.RepoName}, model.MergeRequest{
			Number:        input.PRNumber,
			Method:        model.MergeMethod(input.MergeMethod),
			CommitTitle:   input.CommitTitle,
			CommitMessage: input.CommitMessage,
		})
		if err != nil {
			return errorResult(err), nil, nil
		}

		result, err := jsonResult(merged)
		return result, nil, err
	}
}
