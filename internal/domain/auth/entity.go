package auth

import (
	"time"

	"github.com/peoplehq/hrm-backend-go/internal/pkg/jwt"
)

// Token is a persisted refresh/reset/verify token. Access tokens are
// stateless and never stored.
type Token struct {
	ID          string
	Token       string
	EmployeeID  string
	Type        jwt.TokenType
	ExpiresAt   time.Time
	Blacklisted bool
	CreatedAt   time.Time
}
