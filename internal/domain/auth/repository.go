package auth

import (
	"context"

	"github.com/peoplehq/hrm-backend-go/internal/pkg/jwt"
)

type TokenRepository interface {
	Create(ctx context.Context, t Token) error

	// GetByTokenAndType returns the stored token only when it exists and is
	// not blacklisted.
	GetByTokenAndType(ctx context.Context, token string, tokenType jwt.TokenType) (*Token, error)

	Blacklist(ctx context.Context, token string) error

	// DeleteByEmployeeAndType removes every stored token of a type for an
	// employee, used when rotating reset and verification links.
	DeleteByEmployeeAndType(ctx context.Context, employeeID string, tokenType jwt.TokenType) error
}
