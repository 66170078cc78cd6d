package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoscope/pkg/domain"
	"github.com/m-mizutani/octoscope/pkg/domain/interfaces"
	"github.com/m-mizutani/octoscope/pkg/domain/model"
	"github.com/m-mizutani/octoscope/pkg/templates"
)

// ScaffoldUseCase creates repositories and commits generated files: starter
// template file sets, Dockerfiles and READMEs.
type ScaffoldUseCase struct {
	contents interfaces.ContentsService
}

func NewScaffoldUseCase(contents interfaces.ContentsService) *ScaffoldUseCase {
	return &ScaffoldUseCase{contents: contents}
}

func (u *ScaffoldUseCase) CreateRepository(ctx context.Context, input model.NewRepository) (*model.CreatedRepository, error) {
	if input.Name == "" {
		return nil, domain.ErrInvalidInput.Wrap(goerr.New("repository name is required"))
	}
	return u.contents.CreateRepository(ctx, input)
}

// SetupTemplate pushes the starter file set for a language to a repository.
func (u *ScaffoldUseCase) SetupTemplate(ctx context.Context, repo model.Repository, templateName string) ([]model.GeneratedFile, error) {
	if repo.Owner == "" || repo.Name == "" || templateName == "" {
		return nil, domain.ErrInvalidInput.Wrap(goerr.New("repo owner, name and template name are required"))
	}

	files, ok := templates.Scaffold(templateName)
	if !ok {
		return nil, domain.ErrInvalidInput.Wrap(goerr.New("unknown template: " + templateName))
	}

	if err := u.contents.VerifyAccess(ctx, repo); err != nil {
		return nil, err
	}

	logger := ctxlog.From(ctx)
	created := make([]model.GeneratedFile, 0, len(files))
	for _, file := range files {
		message := fmt.Sprintf("Add %s from template", file.Path)
		url, err := u.contents.PutFile(ctx, repo, file.Path, message, []byte(file.Content), "")
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create template file", goerr.V("path", file.Path))
		}
		logger.Debug("created template file", slog.String("path", file.Path))
		created = append(created, model.GeneratedFile{Path: file.Path, URL: url})
	}

	return created, nil
}

// CreateDockerfile commits a language-specific Dockerfile. It refuses when
// the repository already has one.
func (u *ScaffoldUseCase) CreateDockerfile(ctx context.Context, repo model.Repository, language string, port int) (*model.GeneratedFile, error) {
	if repo.Owner == "" || repo.Name == "" || language == "" {
		return nil, domain.ErrInvalidInput.Wrap(goerr.New("repo owner, name and language are required"))
	}

	if port == 0 {
		port = templates.DefaultPort(language)
	}
	content, err := templates.RenderDockerfile(language, port)
	if err != nil {
		return nil, domain.ErrInvalidInput.Wrap(err)
	}

	if err := u.contents.VerifyAccess(ctx, repo); err != nil {
		return nil, err
	}

	sha, err := u.contents.GetFileSHA(ctx, repo, "Dockerfile")
	if err != nil {
		return nil, err
	}
	if sha != "" {
		return nil, goerr.New("Dockerfile already exists in the repository")
	}

	message := fmt.Sprintf("Add Dockerfile for %s project", language)
	url, err := u.contents.PutFile(ctx, repo, "Dockerfile", message, []byte(content), "")
	if err != nil {
		return nil, err
	}

	return &model.GeneratedFile{Path: "Dockerfile", URL: url, Port: port}, nil
}

// GenerateReadme commits a language-specific README.md, updating it in place
// when one already exists.
func (u *ScaffoldUseCase) GenerateReadme(ctx context.Context, repo model.Repository, language, title, description string) (*model.GeneratedFile, error) {
	if repo.Owner == "" || repo.Name == "" || language == "" {
		return nil, domain.ErrInvalidInput.Wrap(goerr.New("repo owner, name and language are required"))
	}

	if title == "" {
		title = repo.Name
	}
	if description == "" {
		description = fmt.Sprintf("A %s project.", language)
	}
	content, err := templates.RenderReadme(language, title, description)
	if err != nil {
		return nil, domain.ErrInvalidInput.Wrap(err)
	}

	if err := u.contents.VerifyAccess(ctx, repo); err != nil {
		return nil, err
	}

	sha, err := u.contents.GetFileSHA(ctx, repo, "README.md")
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Generate README.md for %s project", language)
	url, err := u.contents.PutFile(ctx, repo, "README.md", message, []byte(content), sha)
	if err != nil {
		return nil, err
	}

	return &model.GeneratedFile{Path: "README.md", URL: url}, nil
}
