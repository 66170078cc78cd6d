package interfaces

import (
	"context"

	"github.com/m-mizutani/octoscope/pkg/domain/model"
)

// ContentsService covers repository creation and single-file commits through
// the contents API.
type ContentsService interface {
	AccessVerifier
	CreateRepository(ctx context.Context, input model.NewRepository) (*model.CreatedRepository, error)
	// GetFileSHA returns the blob SHA of a file, or "" when the file does
	// not exist.
	GetFileSHA(ctx context.Context, repo model.Repository, path string) (string, error)
	// PutFile creates the file, or updates it when sha is non-empty.
	// Returns the HTML URL of the committed file.
	PutFile(ctx context.Context, repo model.Repository, path, message string, content []byte, sha string) (string, error)
}
