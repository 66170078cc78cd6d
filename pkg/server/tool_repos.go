package server

import (
	"context"

	"github.com/m-mizutani/octoscope/pkg/domain/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type CreateRepositoryInput struct {
	Name        string `json:"name" jsonschema:"required,Repository name"`
	Description string `json:"description,omitempty" jsonschema:"Repository description"`
	Private     *bool  `json:"private,omitempty" jsonschema:"Create as private (default true)"`
}

func newCreateRepositoryHandler(deps *Dependencies) mcp.ToolHandlerFor[CreateRepositoryInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CreateRepositoryInput) (*mcp.CallToolResult, any, error) {
		private := true
		if input.Private != nil {
			private = *input.Private
		}

		repo, err := deps.Scaffold.CreateRepository(ctx, model.NewRepository{
			Name:        input.Name,
			Description: input.Description,
			Private:     private,
		})
		if err != nil {
			return errorResult(err), nil, nil
		}

		result, err := jsonResult(repo)
		return result, nil, err
	}
}

type SetupTemplateInput struct {
	RepoOwner    string `json:"repo_owner" jsonschema:"required,Repository owner"`
	RepoName     string `json:"repo_name" jsonschema:"required,Repository name"`
	TemplateName string `json:"template_name" jsonschema:"required,One of python, node, angular, java, golang, php"`
}

func newSetupTemplateHandler(deps *Dependencies) mcp.ToolHandlerFor[SetupTemplateInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SetupTemplateInput) (*mcp.CallToolResult, any, error) {
		files, err := deps.Scaffold.SetupTemplate(ctx, model.Repository{Owner: input.RepoOwner, Name: input.RepoName}, input.TemplateName)
		if err != nil {
			return errorResult(err), nil, nil
		}

		result, err := jsonResult(files)
		return result, nil, err
	}
}

type CreateDockerfileInput struct {
	RepoOwner string `json:"repo_owner" jsonschema:"required,Repository owner"`
	RepoName  string `json:"repo_name" jsonschema:"required,Repository name"`
	Language  string `json:"language" jsonschema:"required,Project language"`
	Port      int    `json:"port,omitempty" jsonschema:"Exposed port (language default when omitted)"`
}

func newCreateDockerfileHandler(deps *Dependencies) mcp.ToolHandlerFor[CreateDockerfileInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CreateDockerfileInput) (*mcp.CallToolResult, any, error) {
		file, err := deps.Scaffold.CreateDockerfile(ctx, model.Repository{Owner: input.RepoOwner, Name: input.RepoName}, input.Language, input.Port)
		if err != nil {
			return errorResult(err), nil, nil
		}

		result, err := jsonResult(file)
		return result, nil, err
	}
}

type GenerateReadmeInput struct {
	RepoOwner          string `json:"repo_owner" jsonschema:"required,Repository owner"`
	RepoName           string `json:"repo_name" jsonschema:"required,Repository name"`
	Language           string `json:"language" jsonschema:"required,Project language"`
	ProjectTitle       string `json:"project_title,omitempty" jsonschema:"Title for the README (repository name when omitted)"`
	ProjectDescription string `json:"project_description,omitempty" jsonschema:"Short project description"`
}

func newGenerateReadmeHandler(deps *Dependencies) mcp.ToolHandlerFor[GenerateReadmeInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GenerateReadmeInput) (*mcp.CallToolResult, any, error) {
		file, err := deps.Scaffold.GenerateReadme(
			ctx,
			model.Repository{Owner: input.RepoOwner, Name: input.RepoName},
			input.Language,
			input.ProjectTitle,
			input.ProjectDescription,
		)
		if err != nil {
			return errorResult(err), nil, nil
		}

		result, err := jsonResult(file)
		return result, nil, err
	}
}
