package interfaces

import (
	"context"

	"github.com/m-mizutani/octoscope/pkg/domain/model"
)

// AccessVerifier confirms the authenticated token can see a repository.
// Every operation verifies access before touching anything else.
type AccessVerifier interface {
	VerifyAccess(ctx context.Context, repo model.Repository) error
}
