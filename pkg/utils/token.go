package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

// AuthClaims is the claim set of the long-lived access token issued at login.
type AuthClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"id"`
	Usertype string `json:"usertype"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// ResetClaims binds a password-reset step to an email address. The same claim
// set backs both the 5-minute reset-session token and the 10-minute
// authorization token; only the validity window differs.
type ResetClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

func GenerateAuthToken(userID, usertype, email, username, secret string, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:   userID,
		Usertype: usertype,
		Email:    email,
		Username: username,
	})

	return token.SignedString([]byte(secret))
}

func GenerateResetToken(email, secret string, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ResetClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Email: email,
	})

	return token.SignedString([]byte(secret))
}

func VerifyAuthToken(tokenString, secret string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	if err := verifyToken(tokenString, secret, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func VerifyResetToken(tokenString, secret string) (*ResetClaims, error) {
	claims := &ResetClaims{}
	if err := verifyToken(tokenString, secret, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func verifyToken(tokenString, secret string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrTokenExpired
		}
		return ErrInvalidToken
	}

	if !token.Valid {
		return ErrInvalidToken
	}

	return nil
}
