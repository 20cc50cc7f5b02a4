package auth

import "context"

type AuthService interface {
	// Register creates a self-managed administrator account and sends a
	// verification email.
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)

	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)

	// LoginWithGoogle exchanges a verified Google profile for a session,
	// matching on the account email.
	LoginWithGoogle(ctx context.Context, code string) (*AuthResponse, error)

	// Refresh rotates the refresh token: the presented token is blacklisted
	// and a new pair is issued.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Logout blacklists the presented refresh token.
	Logout(ctx context.Context, refreshToken string) error

	ForgotPassword(ctx context.Context, req *ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *ResetPasswordRequest) error

	SendVerificationEmail(ctx context.Context, employeeID string) error
	VerifyEmail(ctx context.Context, token string) error
}
