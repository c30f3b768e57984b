package request

type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Usertype string `json:"usertype" validate:"required,oneof=user admin customer"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest carries no validate tags: the missing-credentials check has
// its own error message in the service layer.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

type VerifyOTPRequest struct {
	OTP                 string `json:"otp" validate:"required"`
	ForgotPasswordToken string `json:"forgotpasswordtoken" validate:"required"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
	OTPToken    string `json:"otpToken" validate:"required"`
}
