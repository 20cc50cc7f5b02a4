package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehq/hrm-backend-go/internal/domain/auth"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/database"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/jwt"
)

type tokenRepository struct {
	db *database.DB
}

func NewTokenRepository(db *database.DB) auth.TokenRepository {
	return &tokenRepository{db: db}
}

// Create implements auth.TokenRepository.
func (r *tokenRepository) Create(ctx context.Context, t auth.Token) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tokens (token, employee_id, token_type, expires_at, blacklisted)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := q.Exec(ctx, query, t.Token, t.EmployeeID, t.Type, t.ExpiresAt, t.Blacklisted)
	if err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	return nil
}

// GetByTokenAndType implements auth.TokenRepository.
func (r *tokenRepository) GetByTokenAndType(ctx context.Context, token string, tokenType jwt.TokenType) (*auth.Token, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, token, employee_id, token_type, expires_at, blacklisted, created_at
		FROM tokens
		WHERE token = $1 AND token_type = $2 AND blacklisted = FALSE
	`

	var t auth.Token
	err := q.QueryRow(ctx, query, token, tokenType).Scan(
		&t.ID, &t.Token, &t.EmployeeID, &t.Type, &t.ExpiresAt, &t.Blacklisted, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	return &t, nil
}

// Blacklist implements auth.TokenRepository.
func (r *tokenRepository) Blacklist(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE tokens SET blacklisted = TRUE WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrTokenNotFound
	}

	return nil
}

// DeleteByEmployeeAndType implements auth.TokenRepository.
func (r *tokenRepository) DeleteByEmployeeAndType(ctx context.Context, employeeID string, tokenType jwt.TokenType) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM tokens WHERE employee_id = $1 AND token_type = $2`, employeeID, tokenType)
	if err != nil {
		return fmt.Errorf("failed to delete tokens: %w", err)
	}

	return nil
}
