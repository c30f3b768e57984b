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

type UserDetailsRepository interface {
	Create(ctx context.Context, details *entity.UserDetails) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserDetails, error)
	UpdateFields(ctx context.Context, userID uuid.UUID, mobile, pincode, address *string) (bool, error)
	SearchWithUsers(ctx context.Context, search string, limit, offset int) ([]*entity.UserWithDetails, error)
	CountWithUsers(ctx context.Context, search string) (int64, error)
}

type userDetailsRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserDetailsRepository(db database.PgxIface, log *zap.Logger) UserDetailsRepository {
	return &userDetailsRepository{
		db:  db,
		log: log.With(zap.String("repository", "user_details")),
	}
}

func (r *userDetailsRepository) Create(ctx context.Context, details *entity.UserDetails) error {
	query := `
		INSERT INTO user_details (id, user_id, email, mobile, pincode, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		details.ID,
		details.UserID,
		details.Email,
		details.Mobile,
		details.Pincode,
		details.Address,
		details.CreatedAt,
		details.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		r.log.Error("Failed to create user details",
			zap.Error(err),
			zap.String("user_id", details.UserID.String()),
		)
		return fmt.Errorf("create details for user %s: %w", details.UserID.String(), err)
	}

	return nil
}

func (r *userDetailsRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserDetails, error) {
	query := `
		SELECT id, user_id, email, mobile, pincode, address, created_at, updated_at
		FROM user_details
		WHERE user_id = $1
	`

	var details entity.UserDetails
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&details.ID,
		&details.UserID,
		&details.Email,
		&details.Mobile,
		&details.Pincode,
		&details.Address,
		&details.CreatedAt,
		&details.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user details",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find details for user %s: %w", userID.String(), err)
	}

	return &details, nil
}

// UpdateFields applies a partial update: nil arguments leave the stored value
// untouched. The bool result reports whether a profile row matched.
func (r *userDetailsRepository) UpdateFields(ctx context.Context, userID uuid.UUID, mobile, pincode, address *string) (bool, error) {
	query := `
		UPDATE user_details
		SET mobile = COALESCE($2, mobile),
		    pincode = COALESCE($3, pincode),
		    address = COALESCE($4, address),
		    updated_at = NOW()
		WHERE user_id = $1
	`

	result, err := r.db.Exec(ctx, query, userID, mobile, pincode, address)
	if err != nil {
		r.log.Error("Failed to update user details",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return false, fmt.Errorf("update details for user %s: %w", userID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

const searchFilter = `
	($1 = ''
		OR u.email ILIKE '%' || $1 || '%'
		OR d.mobile ILIKE '%' || $1 || '%'
		OR d.pincode ILIKE '%' || $1 || '%'
		OR d.address ILIKE '%' || $1 || '%')
`

// SearchWithUsers lists users left-joined with their profile, optionally
// filtered by a case-insensitive substring across email, mobile, pincode and
// address. Users without a profile row still appear with empty contact fields.
func (r *userDetailsRepository) SearchWithUsers(ctx context.Context, search string, limit, offset int) ([]*entity.UserWithDetails, error) {
	query := `
		SELECT u.email, d.mobile, d.pincode, d.address
		FROM users u
		LEFT JOIN user_details d ON d.user_id = u.id
		WHERE ` + searchFilter + `
		ORDER BY u.created_at
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, search, limit, offset)
	if err != nil {
		r.log.Error("Failed to search users",
			zap.Error(err),
			zap.String("search", search),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("search users limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var results []*entity.UserWithDetails
	for rows.Next() {
		var row entity.UserWithDetails
		if err := rows.Scan(&row.Email, &row.Mobile, &row.Pincode, &row.Address); err != nil {
			r.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		results = append(results, &row)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}

	return results, nil
}

func (r *userDetailsRepository) CountWithUsers(ctx context.Context, search string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM users u
		LEFT JOIN user_details d ON d.user_id = u.id
		WHERE ` + searchFilter

	var count int64
	if err := r.db.QueryRow(ctx, query, search).Scan(&count); err != nil {
		r.log.Error("Failed to count users", zap.Error(err), zap.String("search", search))
		return 0, fmt.Errorf("count users: %w", err)
	}

	return count, nil
}
