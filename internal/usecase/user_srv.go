package usecase

import (
	"context"
	"fmt"

	"user-portal/internal/data/repository"
	"user-portal/internal/dto/request"
	"user-portal/internal/dto/response"
	"user-portal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultPerPage = 3

type UserService interface {
	GetDetails(ctx context.Context, userID string) (*response.UserDetails, error)
	GetAllUsers(ctx context.Context, page, limit int, search string) (*response.UserList, error)
	UpdateDetails(ctx context.Context, userID string, req *request.UpdateDetailsRequest) error
	DeleteAccount(ctx context.Context, userID string) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log,
	}
}

func (us *userService) GetDetails(ctx context.Context, userID string) (*response.UserDetails, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		us.log.Warn("Invalid user ID", zap.String("user_id", userID), zap.Error(err))
		return nil, ErrInvalidUserID
	}

	details, err := us.repo.Details.FindByUserID(ctx, id)
	if err != nil {
		us.log.Error("Failed to get user details", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get details: %w", err)
	}
	if details == nil {
		return nil, ErrDetailsNotFound
	}

	resp := response.DetailsToResponse(details)
	return &resp, nil
}

func (us *userService) GetAllUsers(ctx context.Context, page, limit int, search string) (*response.UserList, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPerPage
	}

	offset := utils.CalculateOffset(page, limit)

	rows, err := us.repo.Details.SearchWithUsers(ctx, search, limit, offset)
	if err != nil {
		us.log.Error("Failed to list users",
			zap.Error(err),
			zap.Int("page", page),
			zap.Int("limit", limit),
			zap.String("search", search),
		)
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := us.repo.Details.CountWithUsers(ctx, search)
	if err != nil {
		us.log.Error("Failed to count users", zap.Error(err), zap.String("search", search))
		return nil, fmt.Errorf("count users: %w", err)
	}

	users := make([]response.ListedUser, len(rows))
	for i, row := range rows {
		users[i] = response.ListedUser{
			Email:   row.Email,
			Mobile:  row.Mobile,
			Pincode: row.Pincode,
			Address: row.Address,
		}
	}

	us.log.Info("Users retrieved",
		zap.Int("count", len(users)),
		zap.Int64("total", total),
		zap.Int("page", page),
		zap.Int("limit", limit),
	)

	return &response.UserList{
		TotalUsers:  total,
		CurrentPage: page,
		TotalPages:  utils.CalculateTotalPages(total, limit),
		Users:       users,
	}, nil
}

func (us *userService) UpdateDetails(ctx context.Context, userID string, req *request.UpdateDetailsRequest) error {
	if req.Empty() {
		return ErrMissingField
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		us.log.Warn("Invalid user ID", zap.String("user_id", userID), zap.Error(err))
		return ErrInvalidUserID
	}

	matched, err := us.repo.Details.UpdateFields(ctx, id, req.Mobile, req.Pincode, req.Address)
	if err != nil {
		us.log.Error("Failed to update user details", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("update details: %w", err)
	}
	if !matched {
		return ErrDetailsNotFound
	}

	us.log.Info("User details updated", zap.String("user_id", userID))

	return nil
}

func (us *userService) DeleteAccount(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrMissingUserID
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return ErrInvalidUserID
	}

	user, err := us.repo.User.FindByID(ctx, id)
	if err != nil {
		us.log.Error("Failed to get user for delete", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	// Details go first, atomically with the user row
	if err := us.repo.User.DeleteWithDetails(ctx, id); err != nil {
		us.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("delete user: %w", err)
	}

	us.log.Info("User account deleted",
		zap.String("user_id", userID),
		zap.String("email", user.Email))

	return nil
}
