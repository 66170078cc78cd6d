package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octoscope/pkg/domain"
	"github.com/m-mizutani/octoscope/pkg/domain/model"
	"github.com/m-mizutani/octoscope/pkg/usecase"
)

type putCall struct {
	path    string
	message string
	content string
	sha     string
}

type fakeContents struct {
	verifyErr error
	shas      map[string]string
	puts      []putCall
}

func (f *fakeContents) VerifyAccess(ctx context.Context, repo model.Repository) error {
	return f.verifyErr
}

func (f *fakeContents) CreateRepository(ctx context.Context, input model.NewRepository) (*model.CreatedRepository, error) {
	return &model.CreatedRepository{
		Name:     input.Name,
		URL:      "https://github.com/octo/" + input.Name,
		CloneURL: "https://github.com/octo/" + input.Name + ".git",
	}, nil
}

func (f *fakeContents) GetFileSHA(ctx context.Context, repo model.Repository, path string) (string, error) {
	return f.shas[path], nil
}

func (f *fakeContents) PutFile(ctx context.Context, repo model.Repository, path, message string, content []byte, sha string) (string, error) {
	f.puts = append(f.puts, putCall{path: path, message: message, content: string(content), sha: sha})
	return "https://github.com/" + repo.FullName() + "/blob/main/" + path, nil
}

func TestCreateRepository(t *testing.T) {
	uc := usecase.NewScaffoldUseCase(&fakeContents{})

	created, err := uc.CreateRepository(t.Context(), model.NewRepository{Name: "new-service", Private: true})
	gt.NoError(t, err)
	gt.Equal(t, created.Name, "new-service")

	_, err = uc.CreateRepository(t.Context(), model.NewRepository{})
	gt.True(t, domain.ErrInvalidInput.Is(err))
}

func TestSetupTemplate(t *testing.T) {
	fake := &fakeContents{}
	uc := usecase.NewScaffoldUseCase(fake)

	files, err := uc.SetupTemplate(t.Context(), testRepo, "golang")
	gt.NoError(t, err)
	gt.True(t, len(files) > 0)
	gt.Equal(t, len(fake.puts), len(files))

	var sawMain bool
	for _, put := range fake.puts {
		gt.Equal(t, put.message, "Add "+put.path+" from template")
		if put.path == "main.go" {
			sawMain = true
		}
	}
	gt.True(t, sawMain)
}

func TestSetupTemplateUnknown(t *testing.T) {
	uc := usecase.NewScaffoldUseCase(&fakeContents{})

	_, err := uc.SetupTemplate(t.Context(), testRepo, "cobol")
	gt.True(t, domain.ErrInvalidInput.Is(err))
}

func TestCreateDockerfile(t *testing.T) {
	fake := &fakeContents{}
	uc := usecase.NewScaffoldUseCase(fake)

	file, err := uc.CreateDockerfile(t.Context(), testRepo, "node", 0)
	gt.NoError(t, err)
	gt.Equal(t, file.Path, "Dockerfile")
	gt.Equal(t, file.Port, 3000)

	gt.Equal(t, len(fake.puts), 1)
	gt.Equal(t, fake.puts[0].message, "Add Dockerfile for node project")
	gt.True(t, strings.Contains(fake.puts[0].content, "EXPOSE 3000"))
}

func TestCreateDockerfileExplicitPort(t *testing.T) {
	fake := &fakeContents{}
	uc := usecase.NewScaffoldUseCase(fake)

	file, err := uc.CreateDockerfile(t.Context(), testRepo, "python", 9000)
	gt.NoError(t, err)
	gt.Equal(t, file.Port, 9000)
	gt.True(t, strings.Contains(fake.puts[0].content, "EXPOSE 9000"))
}

func TestCreateDockerfileAlreadyExists(t *testing.T) {
	fake := &fakeContents{shas: map[string]string{"Dockerfile": "abc123"}}
	uc := usecase.NewScaffoldUseCase(fake)

	_, err := uc.CreateDockerfile(t.Context(), testRepo, "golang", 0)
	gt.Error(t, err)
	gt.True(t, strings.Contains(err.Error(), "already exists"))
	gt.Equal(t, len(fake.puts), 0)
}

func TestCreateDockerfileUnsupportedLanguage(t *testing.T) {
	uc := usecase.NewScaffoldUseCase(&fakeContents{})

	_, err := uc.CreateDockerfile(t.Context(), testRepo, "fortran", 0)
	gt.True(t, domain.ErrInvalidInput.Is(err))
}

func TestGenerateReadmeDefaults(t *testing.T) {
	fake := &fakeContents{}
	uc := usecase.NewScaffoldUseCase(fake)

	file, err := uc.GenerateReadme(t.Context(), testRepo, "python", "", "")
	gt.NoError(t, err)
	gt.Equal(t, file.Path, "README.md")

	put := fake.puts[0]
	gt.Equal(t, put.message, "Generate README.md for python project")
	gt.Equal(t, put.sha, "")
	gt.True(t, strings.Contains(put.content, "# "+testRepo.Name))
	gt.True(t, strings.Contains(put.content, "A python project."))
}

func TestGenerateReadmeUpdatesExisting(t *testing.T) {
	fake := &fakeContents{shas: map[string]string{"README.md": "def456"}}
	uc := usecase.NewScaffoldUseCase(fake)

	_, err := uc.GenerateReadme(t.Context(), testRepo, "golang", "My Service", "Does things.")
	gt.NoError(t, err)

	put := fake.puts[0]
	gt.Equal(t, put.sha, "def456")
	gt.True(t, strings.Contains(put.content, "# My Service"))
	gt.True(t, strings.Contains(put.content, "Does things."))
}
