package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"user-portal/internal/data/entity"
	"user-portal/internal/data/repository"
	"user-portal/internal/dto/request"
	"user-portal/internal/dto/response"
	"user-portal/pkg/mailer"
	"user-portal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Password-reset token windows. A reset-session token proves the
// forgot-password request; the authorization token proves the OTP matched.
const (
	resetSessionValidity    = 5 * time.Minute
	resetAuthorizedValidity = 10 * time.Minute
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupUser, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResult, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (string, error)
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	mail   mailer.Mailer
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		mail:   mail,
		log:    log,
	}
}

func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupUser, error) {
	// 1. Email must match the account pattern before anything is stored
	if !utils.ValidateEmail(req.Email) {
		return nil, ErrInvalidEmail
	}

	email := strings.ToLower(req.Email)

	// 2. Reject duplicates up front
	existing, err := s.repo.User.FindByUsernameOrEmail(ctx, req.Username, email)
	if err != nil {
		s.log.Error("Failed to check existing user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateIdentity
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.UserRole(req.Usertype),
	}

	// 4. Save. A concurrent signup slipping past the pre-check surfaces here
	// as a unique violation.
	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateIdentity
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.SignupUser{
		Username: user.Username,
		Email:    user.Email,
		Usertype: string(user.Role),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResult, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrMissingCredentials
	}

	email := strings.ToLower(req.Email)

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", email))
		return nil, ErrUserNotFound
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	validity := time.Duration(s.config.JWT.ExpiryDays) * 24 * time.Hour
	token, err := utils.GenerateAuthToken(
		user.ID.String(), string(user.Role), user.Email, user.Username,
		s.config.JWT.Secret, validity,
	)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("sign token: %w", err)
	}

	// Create an empty profile on first login
	s.ensureDetails(ctx, user)

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return &response.LoginResult{
		Token: token,
		User: response.LoginUser{
			Username: user.Username,
			Email:    user.Email,
		},
	}, nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(email)

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for password reset", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return "", ErrEmailNotFound
	}

	otp := utils.GenerateOTP(s.config.OTP.Length)

	if err := s.repo.User.SetOTP(ctx, email, otp); err != nil {
		s.log.Error("Failed to store OTP", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("store OTP: %w", err)
	}

	token, err := utils.GenerateResetToken(email, s.config.JWT.Secret, resetSessionValidity)
	if err != nil {
		s.log.Error("Failed to sign reset token", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("sign reset token: %w", err)
	}

	s.log.Info("Password reset requested", zap.String("email", email))

	// OTP and token stay committed even if delivery fails; the caller can
	// retry forgot-password to get a fresh code.
	body := fmt.Sprintf("Your OTP for resetting the password is: %s. This OTP is valid for 5 minutes.", otp)
	if err := s.mail.Send(email, "Your OTP for Password Reset", body); err != nil {
		s.log.Error("Failed to send OTP email", zap.Error(err), zap.String("email", email))
		return "", ErrEmailDelivery
	}

	return token, nil
}

func (s *authService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (string, error) {
	claims, err := utils.VerifyResetToken(req.ForgotPasswordToken, s.config.JWT.Secret)
	if err != nil {
		s.log.Warn("Reset token rejected", zap.Error(err))
		return "", err
	}

	user, err := s.repo.User.FindByEmailAndOTP(ctx, claims.Email, req.OTP)
	if err != nil {
		s.log.Error("Failed to match OTP", zap.Error(err), zap.String("email", claims.Email))
		return "", fmt.Errorf("match OTP: %w", err)
	}
	if user == nil {
		s.log.Warn("OTP mismatch", zap.String("email", claims.Email))
		return "", ErrInvalidOTPOrToken
	}

	if err := s.repo.User.ClearOTP(ctx, user.ID); err != nil {
		s.log.Error("Failed to clear OTP", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", fmt.Errorf("clear OTP: %w", err)
	}

	otpToken, err := utils.GenerateResetToken(user.Email, s.config.JWT.Secret, resetAuthorizedValidity)
	if err != nil {
		s.log.Error("Failed to sign authorization token", zap.Error(err), zap.String("email", user.Email))
		return "", fmt.Errorf("sign authorization token: %w", err)
	}

	s.log.Info("OTP verified", zap.String("user_id", user.ID.String()))

	return otpToken, nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	if req.NewPassword == "" {
		return ErrMissingNewPassword
	}

	claims, err := utils.VerifyResetToken(req.OTPToken, s.config.JWT.Secret)
	if err != nil {
		s.log.Warn("Authorization token rejected", zap.Error(err))
		return err
	}

	user, err := s.repo.User.FindByEmail(ctx, claims.Email)
	if err != nil {
		s.log.Error("Failed to find user for reset", zap.Error(err), zap.String("email", claims.Email))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash new password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	// UpdatePassword also clears any residual one-time code
	if err := s.repo.User.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("update password: %w", err)
	}

	s.log.Info("Password reset", zap.String("user_id", user.ID.String()))

	return nil
}

// ensureDetails lazily creates an empty profile for the user. Failures are
// logged but never fail the login; a lost race with another login means the
// profile already exists.
func (s *authService) ensureDetails(ctx context.Context, user *entity.User) {
	details, err := s.repo.Details.FindByUserID(ctx, user.ID)
	if err != nil {
		s.log.Warn("Failed to check user details", zap.Error(err), zap.String("user_id", user.ID.String()))
		return
	}
	if details != nil {
		return
	}

	now := time.Now()
	err = s.repo.Details.Create(ctx, &entity.UserDetails{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID: user.ID,
		Email:  &user.Email,
	})
	if err != nil && !errors.Is(err, repository.ErrDuplicate) {
		s.log.Warn("Failed to create user details", zap.Error(err), zap.String("user_id", user.ID.String()))
	}
}
