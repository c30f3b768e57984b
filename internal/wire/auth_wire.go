package wire

import (
	"user-portal/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAuth registers the public authentication routes
func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
		r.Post("/forgot-password", authHandler.ForgotPassword)
		r.Post("/verification-otp", authHandler.VerifyOTP)
		r.Put("/reset-password", authHandler.ResetPassword)
	})
}
