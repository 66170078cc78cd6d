package usecase

import (
	"context"
	"os"

	"github.com/google/go-github/v74/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octoscope/pkg/domain"
	"github.com/m-mizutani/octoscope/pkg/domain/interfaces"
	"golang.org/x/oauth2"
)

const tokenEnvVar = "GITHUB_TOKEN"

type AuthService struct {
	token string
}

// NewAuthService resolves the GitHub token from the explicit value first and
// the GITHUB_TOKEN environment variable second.
func NewAuthService(token string) interfaces.AuthService {
	return &AuthService{token: token}
}

func (s *AuthService) GetToken(ctx context.Context) (string, error) {
	if s.token != "" {
		return s.token, nil
	}
	if token := os.Getenv(tokenEnvVar); token != "" {
		return token, nil
	}
	return "", domain.ErrAuthentication.Wrap(goerr.New("GitHub token is not set, use --token or " + tokenEnvVar))
}

func (s *AuthService) GetAuthenticatedClient(ctx context.Context) (*github.Client, error) {
	token, err := s.GetToken(ctx)
	if err != nil {
		return nil, err
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	return github.NewClient(tc), nil
}
