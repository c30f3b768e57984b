package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"user-portal/internal/dto/request"
	"user-portal/internal/dto/response"
	"user-portal/internal/usecase"
	"user-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// GetDetails handles GET /api/user/details
func (h *UserHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	details, err := h.service.GetDetails(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get user details")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.UserDetailsResponse{
		Message:     "User details retrieved successfully",
		UserDetails: *details,
	})
}

// GetAllUsers handles GET /api/all-user-details?page&limit&search
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)
	limit := utils.ParseInt(query.Get("limit"), 3)
	search := query.Get("search")

	list, err := h.service.GetAllUsers(r.Context(), page, limit, search)
	if err != nil {
		h.handleServiceError(w, err, "get all users")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.UserListResponse{
		Message:     "All users retrieved successfully",
		TotalUsers:  list.TotalUsers,
		CurrentPage: list.CurrentPage,
		TotalPages:  list.TotalPages,
		Users:       list.Users,
	})
}

// UpdateDetails handles PUT /api/user/update/{userId}
func (h *UserHandler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var req request.UpdateDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.UpdateDetails(r.Context(), userID, &req); err != nil {
		h.handleServiceError(w, err, "update user details")
		return
	}

	utils.ResponseMessage(w, http.StatusOK, "User details updated successfully")
}

// DeleteUser handles DELETE /api/user/delete — removes the caller's own
// account and its profile.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	if err := h.service.DeleteAccount(r.Context(), userID); err != nil {
		h.handleServiceError(w, err, "delete user")
		return
	}

	utils.ResponseMessage(w, http.StatusOK, "User account and details deleted successfully")
}

// handleServiceError maps user flow errors to status codes
func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrMissingUserID),
		errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrMissingField):
		h.log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, capitalize(err.Error()))

	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrDetailsNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, capitalize(err.Error()))

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Server error")
	}
}
