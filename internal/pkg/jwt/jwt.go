package jwt

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/peoplehq/hrm-backend-go/internal/domain/user"
)

// TokenType distinguishes the four kinds of tokens the system issues.
type TokenType string

const (
	TokenTypeAccess        TokenType = "access"
	TokenTypeRefresh       TokenType = "refresh"
	TokenTypeResetPassword TokenType = "reset_password"
	TokenTypeVerifyEmail   TokenType = "verify_email"
)

type Service interface {
	GenerateAccessToken(employeeID string, email string, role user.Role) (token string, expiresAt int64, err error)
	GenerateRefreshToken(employeeID string) (token string, expiresAt int64, err error)
	GenerateResetPasswordToken(employeeID string) (token string, expiresAt int64, err error)
	GenerateVerifyEmailToken(employeeID string) (token string, expiresAt int64, err error)

	// VerifyToken decodes a token, checks its type claim and returns the
	// employee ID it was issued for.
	VerifyToken(tokenString string, tokenType TokenType) (employeeID string, err error)

	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
}

type JWTService struct {
	secretKey   string
	expirations map[TokenType]string
	tokenAuth   *jwtauth.JWTAuth
}

func NewJWTService(secretKey, accessExp, refreshExp, resetExp, verifyExp string) Service {
	return &JWTService{
		secretKey: secretKey,
		expirations: map[TokenType]string{
			TokenTypeAccess:        accessExp,
			TokenTypeRefresh:       refreshExp,
			TokenTypeResetPassword: resetExp,
			TokenTypeVerifyEmail:   verifyExp,
		},
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(employeeID string, email string, role user.Role) (string, int64, error) {
	expiresAt, err := j.expiry(TokenTypeAccess)
	if err != nil {
		return "", 0, err
	}

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"email":       email,
		"role":        string(role),
		"type":        string(TokenTypeAccess),
		"exp":         expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(employeeID string) (string, int64, error) {
	return j.generateSubjectToken(employeeID, TokenTypeRefresh)
}

func (j *JWTService) GenerateResetPasswordToken(employeeID string) (string, int64, error) {
	return j.generateSubjectToken(employeeID, TokenTypeResetPassword)
}

func (j *JWTService) GenerateVerifyEmailToken(employeeID string) (string, int64, error) {
	return j.generateSubjectToken(employeeID, TokenTypeVerifyEmail)
}

func (j *JWTService) generateSubjectToken(employeeID string, tokenType TokenType) (string, int64, error) {
	expiresAt, err := j.expiry(tokenType)
	if err != nil {
		return "", 0, err
	}

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"type":        string(tokenType),
		"exp":         expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) VerifyToken(tokenString string, tokenType TokenType) (string, error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", err
	}

	typeClaim, ok := token.Get("type")
	if !ok || typeClaim != string(tokenType) {
		return "", jwt.ErrInvalidJWT()
	}

	employeeIDVal, ok := token.Get("employee_id")
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	employeeID, ok := employeeIDVal.(string)
	if !ok || employeeID == "" {
		return "", jwt.ErrInvalidJWT()
	}

	return employeeID, nil
}

// RefreshTokenCookie scopes the refresh token to the auth endpoints. A zero
// expiresAt yields a session cookie; an empty token expires it immediately.
func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	cookie := &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
	if expiresAt > 0 {
		cookie.Expires = time.Unix(expiresAt, 0)
	}
	if token == "" {
		cookie.MaxAge = -1
	}
	return cookie
}

func (j *JWTService) expiry(tokenType TokenType) (int64, error) {
	expDuration, err := time.ParseDuration(j.expirations[tokenType])
	if err != nil {
		return 0, fmt.Errorf("invalid %s token expiration: %w", tokenType, err)
	}
	return time.Now().Add(expDuration).Unix(), nil
}
