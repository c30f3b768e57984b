package usecase_test

import (
	"context"
	"testing"

	"user-portal/internal/data/entity"
	"user-portal/internal/data/repository"
	"user-portal/internal/dto/request"
	"user-portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserService(userRepo *MockUserRepository, detailsRepo *MockUserDetailsRepository) usecase.UserService {
	repo := &repository.Repository{User: userRepo, Details: detailsRepo}
	return usecase.NewUserService(repo, zap.NewNop())
}

func strptr(s string) *string { return &s }

func TestGetDetails_MissingID(t *testing.T) {
	service := newUserService(new(MockUserRepository), new(MockUserDetailsRepository))

	_, err := service.GetDetails(context.Background(), "")
	assert.ErrorIs(t, err, usecase.ErrMissingUserID)
}

func TestGetDetails_InvalidID(t *testing.T) {
	service := newUserService(new(MockUserRepository), new(MockUserDetailsRepository))

	_, err := service.GetDetails(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, usecase.ErrInvalidUserID)
}

func TestGetDetails_NotFound(t *testing.T) {
	detailsRepo := new(MockUserDetailsRepository)
	service := newUserService(new(MockUserRepository), detailsRepo)

	id := uuid.New()
	detailsRepo.On("FindByUserID", mock.Anything, id).Return(nil, nil)

	_, err := service.GetDetails(context.Background(), id.String())
	assert.ErrorIs(t, err, usecase.ErrDetailsNotFound)
}

func TestGetDetails_Found(t *testing.T) {
	detailsRepo := new(MockUserDetailsRepository)
	service := newUserService(new(MockUserRepository), detailsRepo)

	id := uuid.New()
	detailsRepo.On("FindByUserID", mock.Anything, id).Return(&entity.UserDetails{
		UserID:  id,
		Email:   strptr("alice@example.com"),
		Mobile:  strptr("9876543210"),
		Pincode: strptr("560001"),
	}, nil)

	details, err := service.GetDetails(context.Background(), id.String())
	require.NoError(t, err)
	require.NotNil(t, details.Email)
	assert.Equal(t, "alice@example.com", *details.Email)
	require.NotNil(t, details.Mobile)
	assert.Equal(t, "9876543210", *details.Mobile)
	assert.Nil(t, details.Address)
}

func TestGetAllUsers_Pagination(t *testing.T) {
	detailsRepo := new(MockUserDetailsRepository)
	service := newUserService(new(MockUserRepository), detailsRepo)

	rows := []*entity.UserWithDetails{
		{Email: "d@example.com", Mobile: strptr("111")},
		{Email: "e@example.com"},
		{Email: "f@example.com"},
	}
	detailsRepo.On("SearchWithUsers", mock.Anything, "", 3, 3).Return(rows, nil)
	detailsRepo.On("CountWithUsers", mock.Anything, "").Return(int64(7), nil)

	list, err := service.GetAllUsers(context.Background(), 2, 3, "")
	require.NoError(t, err)

	assert.Equal(t, int64(7), list.TotalUsers)
	assert.Equal(t, 2, list.CurrentPage)
	assert.Equal(t, 3, list.TotalPages)
	require.Len(t, list.Users, 3)
	assert.Equal(t, "d@example.com", list.Users[0].Email)
	assert.Equal(t, "111", *list.Users[0].Mobile)
}

func TestGetAllUsers_ClampsPageAndLimit(t *testing.T) {
	detailsRepo := new(MockUserDetailsRepository)
	service := newUserService(new(MockUserRepository), detailsRepo)

	// Out-of-range values fall back to page 1, limit 3
	detailsRepo.On("SearchWithUsers", mock.Anything, "bang", 3, 0).
		Return([]*entity.UserWithDetails{}, nil)
	detailsRepo.On("CountWithUsers", mock.Anything, "bang").Return(int64(0), nil)

	list, err := service.GetAllUsers(context.Background(), 0, -5, "bang")
	require.NoError(t, err)

	assert.Equal(t, 1, list.CurrentPage)
	assert.Equal(t, 0, list.TotalPages)
	assert.Empty(t, list.Users)
}

func TestUpdateDetails_NoFields(t *testing.T) {
	detailsRepo := new(MockUserDetailsRepository)
	service := newUserService(new(MockUserRepository), detailsRepo)

	err := service.UpdateDetails(context.Background(), uuid.NewString(), &request.UpdateDetailsRequest{})
	assert.ErrorIs(t, err, usecase.ErrMissingField)
	detailsRepo.AssertNotCalled(t, "UpdateFields",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateDetails_NotFound(t *testing.T) {
	detailsRepo := new(MockUserDetailsRepository)
	service := newUserService(new(MockUserRepository), detailsRepo)

	id := uuid.New()
	detailsRepo.On("UpdateFields", mock.Anything, id, mock.Anything, mock.Anything, mock.Anything).
		Return(false, nil)

	err := service.UpdateDetails(context.Background(), id.String(), &request.UpdateDetailsRequest{
		Mobile: strptr("9876543210"),
	})
	assert.ErrorIs(t, err, usecase.ErrDetailsNotFound)
}

func TestUpdateDetails_PartialUpdate(t *testing.T) {
	detailsRepo := new(MockUserDetailsRepository)
	service := newUserService(new(MockUserRepository), detailsRepo)

	id := uuid.New()
	mobile := strptr("9876543210")
	detailsRepo.On("UpdateFields", mock.Anything, id, mobile, (*string)(nil), (*string)(nil)).
		Return(true, nil)

	err := service.UpdateDetails(context.Background(), id.String(), &request.UpdateDetailsRequest{
		Mobile: mobile,
	})
	require.NoError(t, err)
	detailsRepo.AssertExpectations(t)
}

func TestDeleteAccount_UserNotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newUserService(userRepo, new(MockUserDetailsRepository))

	id := uuid.New()
	userRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

	err := service.DeleteAccount(context.Background(), id.String())
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	userRepo.AssertNotCalled(t, "DeleteWithDetails", mock.Anything, mock.Anything)
}

func TestDeleteAccount_RemovesUserAndDetails(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := newUserService(userRepo, new(MockUserDetailsRepository))

	user := testUser("alice@example.com", "secret123")

	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("DeleteWithDetails", mock.Anything, user.ID).Return(nil)

	err := service.DeleteAccount(context.Background(), user.ID.String())
	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}
