package contracts

import (
	"context"

	"doctorsportal-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	// IssueToken returns a signed access token for a registered email, or an
	// empty token when no user record exists (signal to register first).
	IssueToken(ctx context.Context, email string) (*responses.AccessToken, error)
}
