package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

type Repository struct {
	Owner string
	Name  string
}

func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// ParseRepository splits an "owner/name" string as given on the command line.
func ParseRepository(s string) (Repository, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Repository{}, goerr.New("repository must be in owner/name format", goerr.V("input", s))
	}
	return Repository{Owner: parts[0], Name: parts[1]}, nil
}

// NewRepository is the input for repository creation.
type NewRepository struct {
	Name        string
	Description string
	Private     bool
}

// CreatedRepository is returned after a repository has been created.
type CreatedRepository struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	CloneURL string `json:"clone_url"`
}

// GeneratedFile describes a file committed to a repository by a scaffolding
// operation.
type GeneratedFile struct {
	Path string `json:"path"`
	URL  string `json:"url,omitempty"`
	Port int    `json:"port,omitempty"`
}
