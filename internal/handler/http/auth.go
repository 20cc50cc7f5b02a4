package http

import (
	"encoding/json"
	"net/http"

	"github.com/peoplehq/hrm-backend-go/internal/domain/auth"
	"github.com/peoplehq/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplehq/hrm-backend-go/internal/handler/http/response"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/jwt"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/oauth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	GoogleRedirect(w http.ResponseWriter, r *http.Request)
	GoogleCallback(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	ForgotPassword(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
	SendVerification(w http.ResponseWriter, r *http.Request)
	VerifyEmail(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
	jwtService  jwt.Service
	google      oauth.GoogleService
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service, google oauth.GoogleService) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
		google:      google,
	}
}

// Register implements AuthHandler.
func (h *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.setRefreshCookie(w, result.Tokens.RefreshToken)
	response.Created(w, "Account registered successfully", result)
}

// Login implements AuthHandler.
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.setRefreshCookie(w, result.Tokens.RefreshToken)
	response.Success(w, result)
}

// GoogleRedirect implements AuthHandler.
func (h *AuthHandlerImpl) GoogleRedirect(w http.ResponseWriter, r *http.Request) {
	state := h.google.GenerateState(r.UserAgent())
	http.Redirect(w, r, h.google.RedirectURL(state), http.StatusTemporaryRedirect)
}

// GoogleCallback implements AuthHandler.
func (h *AuthHandlerImpl) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "Authorization code is required", nil)
		return
	}

	result, err := h.authService.LoginWithGoogle(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.setRefreshCookie(w, result.Tokens.RefreshToken)
	response.Success(w, result)
}

// Refresh implements AuthHandler. The refresh token rides in a cookie; a
// JSON body is accepted as a fallback for non-browser clients.
func (h *AuthHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	token := h.refreshTokenFrom(r)
	if token == "" {
		response.Unauthorized(w, "Refresh token is required")
		return
	}

	pair, err := h.authService.Refresh(r.Context(), token)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.setRefreshCookie(w, pair.RefreshToken)
	response.Success(w, pair)
}

// Logout implements AuthHandler.
func (h *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	token := h.refreshTokenFrom(r)
	if token == "" {
		response.Unauthorized(w, "Refresh token is required")
		return
	}

	if err := h.authService.Logout(r.Context(), token); err != nil {
		response.HandleError(w, err)
		return
	}

	h.setRefreshCookie(w, "")
	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

// ForgotPassword implements AuthHandler.
func (h *AuthHandlerImpl) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req auth.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.authService.ForgotPassword(r.Context(), &req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "If the address exists, a reset link has been sent", nil)
}

// ResetPassword implements AuthHandler.
func (h *AuthHandlerImpl) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req auth.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.authService.ResetPassword(r.Context(), &req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password reset successfully", nil)
}

// SendVerification implements AuthHandler.
func (h *AuthHandlerImpl) SendVerification(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := middleware.CallerIdentity(r)
	if !ok {
		response.Unauthorized(w, "missing or invalid token")
		return
	}

	if err := h.authService.SendVerificationEmail(r.Context(), callerID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Verification email sent", nil)
}

// VerifyEmail implements AuthHandler.
func (h *AuthHandlerImpl) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		response.BadRequest(w, "Verification token is required", nil)
		return
	}

	if err := h.authService.VerifyEmail(r.Context(), token); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Email verified successfully", nil)
}

func (h *AuthHandlerImpl) refreshTokenFrom(r *http.Request) string {
	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
		return body.RefreshToken
	}
	return ""
}

func (h *AuthHandlerImpl) setRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, h.jwtService.RefreshTokenCookie(token, 0))
}
