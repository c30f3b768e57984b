package entity

type UserRole string

const (
	RoleUser     UserRole = "user"
	RoleAdmin    UserRole = "admin"
	RoleCustomer UserRole = "customer"
)

// User is a credential record. Email is stored lowercase and both email and
// username carry unique indexes. OTPCode is only set while a password reset
// is pending.
type User struct {
	Base
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"usertype"`
	OTPCode      *string  `db:"otp_code"`
}
