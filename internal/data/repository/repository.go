package repository

import (
	"errors"

	"user-portal/pkg/database"

	"go.uber.org/zap"
)

// ErrDuplicate reports a unique-constraint violation (email, username or
// user_id already present). Concurrent inserts racing past the existence
// check are resolved by the database and surface as this error.
var ErrDuplicate = errors.New("duplicate record")

type Repository struct {
	User    UserRepository
	Details UserDetailsRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Details: NewUserDetailsRepository(db, log),
	}
}
