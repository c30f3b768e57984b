package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"user-portal/internal/dto/request"
	"user-portal/internal/dto/response"
	"user-portal/internal/usecase"
	"user-portal/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	user, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "signup")
		return
	}

	utils.ResponseJSON(w, http.StatusCreated, response.SignupResponse{
		Message: "User registered successfully",
		User:    *user,
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "login")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.LoginResponse{
		Message: "Login successful",
		Token:   result.Token,
		User:    result.User,
	})
}

// ForgotPassword handles POST /auth/forgot-password
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	token, err := h.service.ForgotPassword(r.Context(), req.Email)
	if err != nil {
		h.handleServiceError(w, err, "forgot password")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.ForgotPasswordResponse{
		Message:             "OTP sent to your email successfully",
		ForgotPasswordToken: token,
	})
}

// VerifyOTP handles POST /auth/verification-otp
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	otpToken, err := h.service.VerifyOTP(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "verify OTP")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.VerifyOTPResponse{
		Message:  "OTP verified successfully",
		OTPToken: otpToken,
	})
}

// ResetPassword handles PUT /auth/reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "reset password")
		return
	}

	utils.ResponseMessage(w, http.StatusOK, "Password reset successful")
}

// handleServiceError maps auth flow errors to status codes
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail),
		errors.Is(err, usecase.ErrMissingCredentials),
		errors.Is(err, usecase.ErrMissingNewPassword),
		errors.Is(err, usecase.ErrDuplicateIdentity),
		errors.Is(err, usecase.ErrInvalidOTPOrToken):
		h.log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, capitalize(err.Error()))

	case errors.Is(err, usecase.ErrInvalidCredentials):
		h.log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid credentials")

	case errors.Is(err, utils.ErrTokenExpired):
		h.log.Warn(operation+" failed - token expired", zap.Error(err))
		utils.ResponseUnauthorized(w, "Token expired. Please request a new OTP.")

	case errors.Is(err, utils.ErrInvalidToken):
		h.log.Warn(operation+" failed - invalid token", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid token")

	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrEmailNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, capitalize(err.Error()))

	case errors.Is(err, usecase.ErrEmailDelivery):
		h.log.Error("Failed to send email", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to send email")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Server error")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
