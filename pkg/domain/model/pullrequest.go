package model

type PullRequest struct {
	Number    int               `json:"number"`
	Title     string            `json:"title"`
	Body      string            `json:"body,omitempty"`
	State     string            `json:"state"`
	URL       string            `json:"url"`
	Author    string            `json:"author,omitempty"`
	CreatedAt string            `json:"created_at"`
	Files     []PullRequestFile `json:"files,omitempty"`
}

type PullRequestFile struct {
	Name      string `json:"filename"`
	Status    string `json:"status"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
	Patch     string `json:"patch,omitempty"`
}

// NewPullRequest is the input for pull request creation. Base defaults to
// "main" when empty.
type NewPullRequest struct {
	Title string
	Body  string
	Head  string
	Base  string
}

type MergeMethod string

const (
	MergeMethodMerge  MergeMethod = "merge"
	MergeMethodSquash MergeMethod = "squash"
	MergeMethodRebase MergeMethod = "rebase"
)

func (m MergeMethod) Valid() bool {
	switch m {
	case MergeMethodMerge, MergeMethodSquash, MergeMethodRebase:
		return true
	}
	return false
}

type MergeRequest struct {
	Number        int
	Method        MergeMethod
	CommitTitle   string
	CommitMessage string
}

type MergeResult struct {
	SHA     string `json:"sha"`
	Merged  bool   `json:"merged"`
	Message string `json:"message"`
}
