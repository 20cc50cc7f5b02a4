package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/peoplehq/hrm-backend-go/internal/domain/auth"
	"github.com/peoplehq/hrm-backend-go/internal/domain/employee"
	"github.com/peoplehq/hrm-backend-go/internal/domain/user"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/email"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/jwt"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/oauth"
	employeeservice "github.com/peoplehq/hrm-backend-go/internal/service/employee"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	auth.TokenRepository
	employee.EmployeeRepository
	jwtService  jwt.Service
	google      oauth.GoogleService
	mailer      email.EmailService
	logger      *slog.Logger
	frontendURL string
	now         func() time.Time
}

func NewAuthService(
	tokenRepo auth.TokenRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
	google oauth.GoogleService,
	mailer email.EmailService,
	logger *slog.Logger,
	frontendURL string,
) auth.AuthService {
	return &AuthServiceImpl{
		TokenRepository:    tokenRepo,
		EmployeeRepository: employeeRepo,
		jwtService:         jwtService,
		google:             google,
		mailer:             mailer,
		logger:             logger,
		frontendURL:        frontendURL,
		now:                time.Now,
	}
}

// Register implements auth.AuthService. Self-registered accounts become HR
// admins that manage themselves; their employees are created through the
// employee endpoints afterwards.
func (s *AuthServiceImpl) Register(ctx context.Context, req *auth.RegisterRequest) (*auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, auth.ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	employeeID := employeeservice.GenerateEmployeeID()
	newEmployee := employee.Employee{
		EmployeeID: employeeID,
		Email:      req.Email,
		Password:   string(hashed),
		Role:       user.RoleHRAdmin,
		CreatedBy:  employeeID,
		Personal: employee.Personal{
			FullName: req.FullName,
			ContactInformation: employee.ContactInformation{
				Email: req.Email,
			},
		},
		SystemAccess: employee.SystemAccess{
			Email: req.Email,
			Role:  string(user.RoleHRAdmin),
		},
	}

	created, err := s.EmployeeRepository.Create(ctx, newEmployee)
	if err != nil {
		return nil, err
	}

	if err := s.SendVerificationEmail(ctx, created.EmployeeID); err != nil {
		s.logger.Warn("verification email failed",
			slog.String("employee_id", created.EmployeeID),
			slog.Any("error", err),
		)
	}

	return s.issueSession(ctx, &created)
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req *auth.LoginRequest) (*auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.Password), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return s.issueSession(ctx, emp)
}

// LoginWithGoogle implements auth.AuthService.
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, code string) (*auth.AuthResponse, error) {
	token, err := s.google.VerifyToken(ctx, code)
	if err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	info, err := s.google.VerifyUser(ctx, token)
	if err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	emp, err := s.EmployeeRepository.GetByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	return s.issueSession(ctx, emp)
}

// Refresh implements auth.AuthService. The presented token is blacklisted
// before a new pair is issued, so each refresh token is single-use.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	employeeID, err := s.jwtService.VerifyToken(refreshToken, jwt.TokenTypeRefresh)
	if err != nil {
		return nil, auth.ErrTokenNotFound
	}

	stored, err := s.TokenRepository.GetByTokenAndType(ctx, refreshToken, jwt.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}
	if s.now().After(stored.ExpiresAt) {
		return nil, auth.ErrTokenExpired
	}

	if err := s.TokenRepository.Blacklist(ctx, refreshToken); err != nil {
		return nil, err
	}

	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return s.issueTokenPair(ctx, emp)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if _, err := s.TokenRepository.GetByTokenAndType(ctx, refreshToken, jwt.TokenTypeRefresh); err != nil {
		return err
	}
	return s.TokenRepository.Blacklist(ctx, refreshToken)
}

// ForgotPassword implements auth.AuthService. An unknown address is not an
// error, so the endpoint never confirms which emails exist.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, req *auth.ForgotPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := s.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil
		}
		return err
	}

	token, expiresAt, err := s.jwtService.GenerateResetPasswordToken(emp.EmployeeID)
	if err != nil {
		return err
	}

	if err := s.TokenRepository.DeleteByEmployeeAndType(ctx, emp.EmployeeID, jwt.TokenTypeResetPassword); err != nil {
		return err
	}
	if err := s.TokenRepository.Create(ctx, auth.Token{
		Token:      token,
		EmployeeID: emp.EmployeeID,
		Type:       jwt.TokenTypeResetPassword,
		ExpiresAt:  time.Unix(expiresAt, 0),
	}); err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token)
	expiry := time.Unix(expiresAt, 0).Format(time.RFC1123)

	go func() {
		if err := s.mailer.SendPasswordReset(emp.Email, resetLink, expiry); err != nil {
			s.logger.Warn("password reset email failed",
				slog.String("employee_id", emp.EmployeeID),
				slog.Any("error", err),
			)
		}
	}()

	return nil
}

// ResetPassword implements auth.AuthService.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, req *auth.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	employeeID, err := s.jwtService.VerifyToken(req.Token, jwt.TokenTypeResetPassword)
	if err != nil {
		return auth.ErrTokenNotFound
	}

	stored, err := s.TokenRepository.GetByTokenAndType(ctx, req.Token, jwt.TokenTypeResetPassword)
	if err != nil {
		return err
	}
	if s.now().After(stored.ExpiresAt) {
		return auth.ErrTokenExpired
	}

	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	emp.Password = string(hashed)
	if err := s.EmployeeRepository.Update(ctx, *emp); err != nil {
		return err
	}

	// A used link must die; so must every refresh session opened before
	// the password change.
	if err := s.TokenRepository.DeleteByEmployeeAndType(ctx, employeeID, jwt.TokenTypeResetPassword); err != nil {
		return err
	}
	return s.TokenRepository.DeleteByEmployeeAndType(ctx, employeeID, jwt.TokenTypeRefresh)
}

// SendVerificationEmail implements auth.AuthService.
func (s *AuthServiceImpl) SendVerificationEmail(ctx context.Context, employeeID string) error {
	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return err
	}

	token, expiresAt, err := s.jwtService.GenerateVerifyEmailToken(emp.EmployeeID)
	if err != nil {
		return err
	}

	if err := s.TokenRepository.DeleteByEmployeeAndType(ctx, emp.EmployeeID, jwt.TokenTypeVerifyEmail); err != nil {
		return err
	}
	if err := s.TokenRepository.Create(ctx, auth.Token{
		Token:      token,
		EmployeeID: emp.EmployeeID,
		Type:       jwt.TokenTypeVerifyEmail,
		ExpiresAt:  time.Unix(expiresAt, 0),
	}); err != nil {
		return err
	}

	verifyLink := fmt.Sprintf("%s/verify-email?token=%s", s.frontendURL, token)
	expiry := time.Unix(expiresAt, 0).Format(time.RFC1123)

	go func() {
		if err := s.mailer.SendVerification(emp.Email, verifyLink, expiry); err != nil {
			s.logger.Warn("verification email failed",
				slog.String("employee_id", emp.EmployeeID),
				slog.Any("error", err),
			)
		}
	}()

	return nil
}

// VerifyEmail implements auth.AuthService.
func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, token string) error {
	employeeID, err := s.jwtService.VerifyToken(token, jwt.TokenTypeVerifyEmail)
	if err != nil {
		return auth.ErrTokenNotFound
	}

	stored, err := s.TokenRepository.GetByTokenAndType(ctx, token, jwt.TokenTypeVerifyEmail)
	if err != nil {
		return err
	}
	if s.now().After(stored.ExpiresAt) {
		return auth.ErrTokenExpired
	}

	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return err
	}

	emp.SystemAccess.EmailVerified = true
	if err := s.EmployeeRepository.Update(ctx, *emp); err != nil {
		return err
	}

	return s.TokenRepository.DeleteByEmployeeAndType(ctx, employeeID, jwt.TokenTypeVerifyEmail)
}

func (s *AuthServiceImpl) issueSession(ctx context.Context, emp *employee.Employee) (*auth.AuthResponse, error) {
	pair, err := s.issueTokenPair(ctx, emp)
	if err != nil {
		return nil, err
	}

	return &auth.AuthResponse{
		Employee: employee.ToEmployeeResponse(emp),
		Tokens:   *pair,
	}, nil
}

func (s *AuthServiceImpl) issueTokenPair(ctx context.Context, emp *employee.Employee) (*auth.TokenPair, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(emp.EmployeeID, emp.Email, emp.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(emp.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.TokenRepository.Create(ctx, auth.Token{
		Token:      refreshToken,
		EmployeeID: emp.EmployeeID,
		Type:       jwt.TokenTypeRefresh,
		ExpiresAt:  time.Unix(refreshExpiresAt, 0),
	}); err != nil {
		return nil, err
	}

	return &auth.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Unix(accessExpiresAt, 0).Format(time.RFC3339),
	}, nil
}
