package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/go-github/v74/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoscope/pkg/domain"
	"github.com/m-mizutani/octoscope/pkg/domain/interfaces"
	"github.com/m-mizutani/octoscope/pkg/domain/model"
)

const perPage = 100

// GitHubService talks to the GitHub API. It implements ActionsService,
// PullRequestService and ContentsService over one authenticated client.
type GitHubService struct {
	authService interfaces.AuthService
}

func NewGitHubService(authService interfaces.AuthService) *GitHubService {
	return &GitHubService{
		authService: authService,
	}
}

func (s *GitHubService) VerifyAccess(ctx context.Context, repo model.Repository) error {
	client, err := s.authService.GetAuthenticatedClient(ctx)
	if err != nil {
		return err
	}

	if _, _, err := client.Repositories.Get(ctx, repo.Owner, repo.Name); err != nil {
		return domain.ErrAccessVerification.Wrap(err, goerr.V("repo", repo.FullName()))
	}
	return nil
}

func (s *GitHubService) ListRuns(ctx context.Context, repo model.Repository, query model.RunQuery) ([]*model.PipelineRun, error) {
	client, err := s.authService.GetAuthenticatedClient(ctx)
	if err != nil {
		return nil, err
	}

	if query.RunID != 0 {
		run, _, err := client.Actions.GetWorkflowRunByID(ctx, repo.Owner, repo.Name, query.RunID)
		if err != nil {
			return nil, domain.ErrPipelineFetch.Wrap(err, goerr.V("run_id", query.RunID))
		}
		return []*model.PipelineRun{convertRun(run)}, nil
	}

	opts := &github.ListWorkflowRunsOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	var runs *github.WorkflowRuns
	switch {
	case query.WorkflowID == "":
		runs, _, err = client.Actions.ListRepositoryWorkflowRuns(ctx, repo.Owner, repo.Name, opts)
	default:
		// The workflow selector is either a numeric workflow ID or a
		// workflow file name like "ci.yml".
		if id, convErr := strconv.ParseInt(query.WorkflowID, 10, 64); convErr == nil {
			runs, _, err = client.Actions.ListWorkflowRunsByID(ctx, repo.Owner, repo.Name, id, opts)
		} else {
			runs, _, err = client.Actions.ListWorkflowRunsByFileName(ctx, repo.Owner, repo.Name, query.WorkflowID, opts)
		}
	}
	if err != nil {
		return nil, domain.ErrPipelineFetch.Wrap(err, goerr.V("workflow", query.WorkflowID))
	}

	pipelineRuns := make([]*model.PipelineRun, 0, len(runs.WorkflowRuns))
	for _, run := range runs.WorkflowRuns {
		pipelineRuns = append(pipelineRuns, convertRun(run))
	}

	ctxlog.From(ctx).Debug("fetched workflow runs",
		slog.String("repo", repo.FullName()),
		slog.Int("count", len(pipelineRuns)),
	)

	return pipelineRuns, nil
}

func (s *GitHubService) ListJobs(ctx context.Context, repo model.Repository, runID int64) ([]*model.PipelineJob, error) {
	client, err := s.authService.GetAuthenticatedClient(ctx)
	if err != nil {
		return nil, err
	}

	jobs, _, err := client.Actions.ListWorkflowJobs(ctx, repo.Owner, repo.Name, runID, &github.ListWorkflowJobsOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	})
	if err != nil {
		return nil, domain.ErrAPIRequest.Wrap(err, goerr.V("run_id", runID))
	}

	pipelineJobs := make([]*model.PipelineJob, 0, len(jobs.Jobs))
	for _, job := range jobs.Jobs {
		pipelineJobs = append(pipelineJobs, &model.PipelineJob{
			Name:        job.GetName(),
			Conclusion:  convertConclusion(job.GetConclusion()),
			CompletedAt: model.FormatTimestamp(job.GetCompletedAt().Time),
		})
	}

	return pipelineJobs, nil
}

func convertRun(run *github.WorkflowRun) *model.PipelineRun {
	pipelineRun := &model.PipelineRun{
		ID:        run.GetID(),
		Name:      run.GetName(),
		CreatedAt: model.FormatTimestamp(run.GetCreatedAt().Time),
		UpdatedAt: model.FormatTimestamp(run.GetUpdatedAt().Time),
	}

	if run.GetStatus() == "completed" {
		pipelineRun.Conclusion = convertConclusion(run.GetConclusion())
	}

	return pipelineRun
}

func convertConclusion(conclusion string) model.RunConclusion {
	switch conclusion {
	case "success":
		return model.ConclusionSuccess
	case "failure":
		return model.ConclusionFailure
	case "cancelled":
		return model.ConclusionCancelled
	default:
		return model.RunConclusion(conclusion)
	}
}

func apiStatusCode(err error) int {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode
	}
	return 0
}

func (s *GitHubService) FetchPullRequest(ctx context.Context, repo model.Repository, number int) (*model.PullRequest, error) {
	client, err := s.authService.GetAuthenticatedClient(ctx)
	if err != nil {
		return nil, err
	}

	pr, _, err := client.PullRequests.Get(ctx, repo.Owner, repo.Name, number)
	if err != nil {
		return nil, domain.ErrAPIRequest.Wrap(err, goerr.V("pr_number", number))
	}

	files, _, err := client.PullRequests.ListFiles(ctx, repo.Owner, repo.Name, number, &github.ListOptions{PerPage: perPage})
	if err != nil {
		return nil, domain.ErrAPIRequest.Wrap(err, goerr.V("pr_number", number))
	}

	result := &model.PullRequest{
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		Body:      pr.GetBody(),
		State:     pr.GetState(),
		URL:       pr.GetHTMLURL(),
		Author:    pr.GetUser().GetLogin(),
		CreatedAt: model.FormatTimestamp(pr.GetCreatedAt().Time),
	}
	for _, f := range files {
		result.Files = append(result.Files, model.PullRequestFile{
			Name:      f.GetFilename(),
			Status:    f.GetStatus(),
			Additions: f.GetAdditions(),
			Deletions: f.GetDeletions(),
			Patch:     f.GetPatch(),
		})
	}

	return result, nil
}

func (s *GitHubService) CreatePullRequest(ctx context.Context, repo model.Repository, input model.NewPullRequest) (*model.PullRequest, error) {
	client, err := s.authService.GetAuthenticatedClient(ctx)
	if err != nil {
		return nil, err
	}

	pr, _, err := client.PullRequests.Create(ctx, repo.Owner, repo.Name, &github.NewPullRequest{
		Title: github.Ptr(input.Title),
		Body:  github.Ptr(input.Body),
		Head:  github.Ptr(input.Head),
		Base:  github.Ptr(input.Base),
	})
	if err != nil {
		if apiStatusCode(err) == http.StatusUnprocessableEntity {
			return nil, domain.ErrAPIRequest.Wrap(goerr.New("branch may not exist or pull request already exists"))
		}
		return nil, domain.ErrAPIRequest.Wrap(err)
	}

	return &model.PullRequest{
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		State:     pr.GetState(),
		URL:       pr.GetHTMLURL(),
		CreatedAt: model.FormatTimestamp(pr.GetCreatedAt().Time),
	}, nil
}

func (s *GitHubService) MergePullRequest(ctx context.Context, repo model.Repository, input model.MergeRequest) (*model.MergeResult, error) {
	client, err := s.authService.GetAuthenticatedClient(ctx)
	if err != nil {
		return nil, err
	}

	result, _, err := client.PullRequests.Merge(ctx, repo.Owner, repo.Name, input.Number, input.CommitMessage, &github.PullRequestOptions{
		CommitTitle: input.CommitTitle,
		MergeMethod: string(input.Method),
	})
	if err != nil {
		switch apiStatusCode(err) {
		case http.StatusMethodNotAllowed:
			return nil, domain.ErrAPIRequest.Wrap(goerr.New("pull request cannot be merged because of forbidden permissions"))
		case http.StatusConflict:
			return nil, domain.ErrAPIRequest.Wrap(goerr.New("pull request has conflicts that need to be resolved"))
		}
		return nil, domain.ErrAPIRequest.Wrap(err, goerr.V("pr_number", input.Number))
	}

	return &model.MergeResult{
		SHA:     result.GetSHA(),
		Merged:  result.GetMerged(),
		Message: result.GetMessage(),
	}, nil
}

func (s *GitHubService) CreateRepository(ctx context.Context, input model.NewRepository) (*model.CreatedRepository, error) {
	client, err := s.authService.GetAuthenticatedClient(ctx)
	if err != nil {
		return nil, err
	}

	repo, _, err := client.Repositories.Create(ctx, "", &github.Repository{
		Name:        github.Ptr(input.Name),
		Description: github.Ptr(input.Description),
		Private:     github.Ptr(input.Private),
	})
	if err != nil {
		return nil, domain.ErrAPIRequest.Wrap(err, goerr.V("name", input.Name))
	}

	return &model.CreatedRepository{
		Name:     repo.GetName(),
		URL:      repo.GetHTMLURL(),
		CloneURL: repo.GetCloneURL(),
	}, nil
}

func (s *GitHubService) GetFileSHA(ctx context.Context, repo model.Repository, path string) (string, error) {
	client, err := s.authService.GetAuthenticatedClient(ctx)
	if err != nil {
		return "", err
	}

	fileContent, _, resp, err := client.Repositories.GetContents(ctx, repo.Owner, repo.Name, path, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return "", nil
		}
		return "", domain.ErrAPIRequest.Wrap(err, goerr.V("path", path))
	}
	if fileContent == nil {
		// Path points at a directory.
		return "", nil
	}
	return fileContent.GetSHA(), nil
}

func (s *GitHubService) PutFile(ctx context.Context, repo model.Repository, path, message string, content []byte, sha string) (string, error) {
	client, err := s.authService.GetAuthenticatedClient(ctx)
	if err != nil {
		return "", err
	}

	opts := &github.RepositoryContentFileOptions{
		Message: github.Ptr(message),
		Content: content,
	}

	var resp *github.RepositoryContentResponse
	if sha != "" {
		opts.SHA = github.Ptr(sha)
		resp, _, err = client.Repositories.UpdateFile(ctx, repo.Owner, repo.Name, path, opts)
	} else {
		resp, _, err = client.Repositories.CreateFile(ctx, repo.Owner, repo.Name, path, opts)
	}
	if err != nil {
		return "", domain.ErrAPIRequest.Wrap(err, goerr.V("path", path))
	}

	return resp.GetContent().GetHTMLURL(), nil
}
