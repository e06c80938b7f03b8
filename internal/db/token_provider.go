package db

import (
	"context"
	"time"
)

// TokenProvider abstracts token acquisition for database authentication.
// This interface enables testability (static providers) alongside RDS IAM.
type TokenProvider interface {
	// GetToken acquires a token used as the PostgreSQL password.
	// Returns the token string and its expiry time.
	GetToken(ctx context.Context) (token string, expiresOn time.Time, err error)

	// String returns a human-readable description for logging.
	// Should NOT include secrets.
	String() string
}
