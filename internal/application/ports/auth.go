package ports

import "context"

type (
	TokenIssuer interface {
		Issue(subject string) (string, error)
	}
	TokenVerifier interface {
		Verify(token string) (string, error)
	}
	PasswordHasher interface {
		Hash(plain string) (string, error)
		Verify(plain, digest string) bool
	}

	Auth interface {
		Login(ctx context.Context, identifier, password string) (string, error)
	}
	Authorizer interface {
		RequireAdmin(ctx context.Context) error
	}
)
