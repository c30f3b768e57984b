package response

// SignupUser is the identity summary returned on signup. The password hash
// never leaves the service layer.
type SignupUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Usertype string `json:"usertype"`
}

type SignupResponse struct {
	Message string     `json:"message"`
	User    SignupUser `json:"user"`
}

type LoginUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginResult struct {
	Token string
	User  LoginUser
}

type LoginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    LoginUser `json:"user"`
}

type ForgotPasswordResponse struct {
	Message             string `json:"message"`
	ForgotPasswordToken string `json:"forgotpasswordtoken"`
}

type VerifyOTPResponse struct {
	Message  string `json:"message"`
	OTPToken string `json:"otpToken"`
}
