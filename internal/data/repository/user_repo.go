package repository

import (
	"context"
	"errors"
	"fmt"

	"user-portal/internal/data/entity"
	"user-portal/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)
	FindByEmailAndOTP(ctx context.Context, email, otp string) (*entity.User, error)
	SetOTP(ctx context.Context, email, code string) error
	ClearOTP(ctx context.Context, id uuid.UUID) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	DeleteWithDetails(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log,
	}
}

const userColumns = `id, username, email, password, usertype, otp_code, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.OTPCode,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password, usertype, otp_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.OTPCode,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(ur.db.QueryRow(ctx, query, id))
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(ur.db.QueryRow(ctx, query, email))
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return user, nil
}

func (ur *userRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $2 LIMIT 1`

	user, err := scanUser(ur.db.QueryRow(ctx, query, username, email))
	if err != nil {
		ur.log.Error("Failed to find user by username or email",
			zap.Error(err),
			zap.String("username", username),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by username or email: %w", err)
	}

	return user, nil
}

// FindByEmailAndOTP matches a user only when the stored one-time code equals
// the supplied one. Users with no pending code never match.
func (ur *userRepository) FindByEmailAndOTP(ctx context.Context, email, otp string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND otp_code = $2`

	user, err := scanUser(ur.db.QueryRow(ctx, query, email, otp))
	if err != nil {
		ur.log.Error("Failed to find user by email and OTP",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email and OTP: %w", err)
	}

	return user, nil
}

func (ur *userRepository) SetOTP(ctx context.Context, email, code string) error {
	query := `UPDATE users SET otp_code = $2, updated_at = NOW() WHERE email = $1`

	result, err := ur.db.Exec(ctx, query, email, code)
	if err != nil {
		ur.log.Error("Failed to set OTP",
			zap.Error(err),
			zap.String("email", email),
		)
		return fmt.Errorf("set OTP for %s: %w", email, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", email)
	}

	return nil
}

func (ur *userRepository) ClearOTP(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET otp_code = NULL, updated_at = NOW() WHERE id = $1`

	_, err := ur.db.Exec(ctx, query, id)
	if err != nil {
		ur.log.Error("Failed to clear OTP",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("clear OTP for %s: %w", id.String(), err)
	}

	return nil
}

// UpdatePassword stores a new password hash and clears any residual one-time code.
func (ur *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password = $2, otp_code = NULL, updated_at = NOW() WHERE id = $1`

	result, err := ur.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		ur.log.Error("Failed to update password",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("update password for %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	return nil
}

// DeleteWithDetails removes the profile row and then the user inside one
// transaction, so a failure never leaves an orphan profile behind.
func (ur *userRepository) DeleteWithDetails(ctx context.Context, id uuid.UUID) error {
	tx, err := ur.db.Begin(ctx)
	if err != nil {
		ur.log.Error("Failed to begin delete transaction", zap.Error(err), zap.String("user_id", id.String()))
		return fmt.Errorf("begin delete user %s: %w", id.String(), err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM user_details WHERE user_id = $1`, id); err != nil {
		ur.log.Error("Failed to delete user details", zap.Error(err), zap.String("user_id", id.String()))
		return fmt.Errorf("delete details for user %s: %w", id.String(), err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		ur.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", id.String()))
		return fmt.Errorf("delete user %s: %w", id.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	if err := tx.Commit(ctx); err != nil {
		ur.log.Error("Failed to commit delete transaction", zap.Error(err), zap.String("user_id", id.String()))
		return fmt.Errorf("commit delete user %s: %w", id.String(), err)
	}

	ur.log.Info("User deleted", zap.String("user_id", id.String()))
	return nil
}
