package wire

import (
	"user-portal/internal/adaptor"
	"user-portal/pkg/middleware"
	"user-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser registers the protected profile routes with role-based access control
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.Authenticate(config.JWT.Secret, log)

	r.Route("/api", func(r chi.Router) {
		r.Use(auth)

		// Own profile - any authenticated user
		r.Get("/user/details", userHandler.GetDetails)

		// Target profile - the caller itself or an admin
		r.With(middleware.SelfOrAdmin(log)).Put("/user/update/{userId}", userHandler.UpdateDetails)

		// Admin only
		r.With(middleware.Admin(log)).Get("/all-user-details", userHandler.GetAllUsers)
		r.With(middleware.Admin(log)).Delete("/user/delete", userHandler.DeleteUser)
	})
}
