package adaptor_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"user-portal/internal/adaptor"
	"user-portal/internal/dto/request"
	"user-portal/internal/dto/response"
	"user-portal/internal/usecase"
	"user-portal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupUser, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.SignupUser), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.LoginResult), args.Error(1)
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestSignupHandler_Created(t *testing.T) {
	service := new(MockAuthService)
	handler := adaptor.NewAuthHandler(service, zap.NewNop())

	service.On("Signup", mock.Anything, mock.Anything).Return(&response.SignupUser{
		Username: "alice",
		Email:    "alice@example.com",
		Usertype: "user",
	}, nil)

	rec := postJSON(t, handler.Signup,
		`{"username":"alice","usertype":"user","email":"alice@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"message": "User registered successfully",
		"user": {"username":"alice","email":"alice@example.com","usertype":"user"}
	}`, rec.Body.String())
}

func TestSignupHandler_ValidationFailure(t *testing.T) {
	service := new(MockAuthService)
	handler := adaptor.NewAuthHandler(service, zap.NewNop())

	rec := postJSON(t, handler.Signup,
		`{"username":"al","usertype":"boss","email":"alice@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
}

func TestSignupHandler_Duplicate(t *testing.T) {
	service := new(MockAuthService)
	handler := adaptor.NewAuthHandler(service, zap.NewNop())

	service.On("Signup", mock.Anything, mock.Anything).Return(nil, usecase.ErrDuplicateIdentity)

	rec := postJSON(t, handler.Signup,
		`{"username":"alice","usertype":"user","email":"alice@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Username or email already exists"}`, rec.Body.String())
}

func TestLoginHandler_Success(t *testing.T) {
	service := new(MockAuthService)
	handler := adaptor.NewAuthHandler(service, zap.NewNop())

	service.On("Login", mock.Anything, mock.Anything).Return(&response.LoginResult{
		Token: "jwt-token",
		User:  response.LoginUser{Username: "alice", Email: "alice@example.com"},
	}, nil)

	rec := postJSON(t, handler.Login, `{"email":"alice@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"message": "Login successful",
		"token": "jwt-token",
		"user": {"username":"alice","email":"alice@example.com"}
	}`, rec.Body.String())
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	service := new(MockAuthService)
	handler := adaptor.NewAuthHandler(service, zap.NewNop())

	service.On("Login", mock.Anything, mock.Anything).Return(nil, usecase.ErrInvalidCredentials)

	rec := postJSON(t, handler.Login, `{"email":"alice@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid credentials"}`, rec.Body.String())
}

func TestForgotPasswordHandler_UnknownEmail(t *testing.T) {
	service := new(MockAuthService)
	handler := adaptor.NewAuthHandler(service, zap.NewNop())

	service.On("ForgotPassword", mock.Anything, "ghost@example.com").Return("", usecase.ErrEmailNotFound)

	rec := postJSON(t, handler.ForgotPassword, `{"email":"ghost@example.com"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Email not found"}`, rec.Body.String())
}

func TestForgotPasswordHandler_Success(t *testing.T) {
	service := new(MockAuthService)
	handler := adaptor.NewAuthHandler(service, zap.NewNop())

	service.On("ForgotPassword", mock.Anything, "alice@example.com").Return("reset-token", nil)

	rec := postJSON(t, handler.ForgotPassword, `{"email":"alice@example.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"message": "OTP sent to your email successfully",
		"forgotpasswordtoken": "reset-token"
	}`, rec.Body.String())
}

func TestVerifyOTPHandler_ExpiredSession(t *testing.T) {
	service := new(MockAuthService)
	handler := adaptor.NewAuthHandler(service, zap.NewNop())

	service.On("VerifyOTP", mock.Anything, mock.Anything).Return("", utils.ErrTokenExpired)

	rec := postJSON(t, handler.VerifyOTP, `{"otp":"1234","forgotpasswordtoken":"stale"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Token expired. Please request a new OTP."}`, rec.Body.String())
}

func TestVerifyOTPHandler_Success(t *testing.T) {
	service := new(MockAuthService)
	handler := adaptor.NewAuthHandler(service, zap.NewNop())

	service.On("VerifyOTP", mock.Anything, mock.Anything).Return("authorized-token", nil)

	rec := postJSON(t, handler.VerifyOTP, `{"otp":"1234","forgotpasswordtoken":"session"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"message": "OTP verified successfully",
		"otpToken": "authorized-token"
	}`, rec.Body.String())
}

func TestResetPasswordHandler_Success(t *testing.T) {
	service := new(MockAuthService)
	handler := adaptor.NewAuthHandler(service, zap.NewNop())

	service.On("ResetPassword", mock.Anything, mock.Anything).Return(nil)

	rec := postJSON(t, handler.ResetPassword, `{"newPassword":"fresh-secret","otpToken":"authorized"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Password reset successful"}`, rec.Body.String())
}

func TestHandler_InvalidBody(t *testing.T) {
	service := new(MockAuthService)
	handler := adaptor.NewAuthHandler(service, zap.NewNop())

	rec := postJSON(t, handler.Signup, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid request body"}`, rec.Body.String())
}
