package handlers

//go:generate mockgen -source=users.go -destination=mock_users.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-bookmarker/internal/models"
	"github.com/sbilibin2017/gw-bookmarker/internal/response"
)

// UserManager serves a user's own account.
type UserManager interface {
	GetUser(ctx context.Context, username string) (*models.UserProfile, error)
	UpdateUser(ctx context.Context, username, email string) (*models.UserDB, error)
	DeleteUser(ctx context.Context, username string) error
}

// UpdateUserRequest is the body of PATCH /users/{username}
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// New email
	// required: true
	// default: new@x.com
	Email string `json:"email" validate:"required,email"`
}

// UserResponse wraps a user profile
// swagger:model UserResponse
type UserResponse struct {
	User *models.UserProfile `json:"user"`
}

// UpdatedUserResponse wraps the updated user
// swagger:model UpdatedUserResponse
type UpdatedUserResponse struct {
	UpdatedUser *models.UserDB `json:"updatedUser"`
}

// DeletedUserResponse names the removed user
// swagger:model DeletedUserResponse
type DeletedUserResponse struct {
	// default: u1
	Deleted string `json:"deleted"`
}

// NewGetUserHandler returns the caller's profile.
// @Summary Get user profile
// @Description Returns id, username, email and the ids of saved volumes. Owner only.
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.UserResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /users/{username} [get]
// @Security BearerAuth
func NewGetUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.GetUser(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			response.Error(w, err)
			return
		}
		response.OK(w, UserResponse{User: user})
	}
}

// NewUpdateUserHandler changes the caller's email.
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param updateUserRequest body handlers.UpdateUserRequest true "New email"
// @Success 200 {object} handlers.UpdatedUserResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /users/{username} [patch]
// @Security BearerAuth
func NewUpdateUserHandler(svc UserManager, v RequestValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateUserRequest
		if err := decodeBody(r, v, &req); err != nil {
			response.Error(w, err)
			return
		}

		user, err := svc.UpdateUser(r.Context(), chi.URLParam(r, "username"), req.Email)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.OK(w, UpdatedUserResponse{UpdatedUser: user})
	}
}

// NewDeleteUserHandler removes the caller with everything they saved.
// @Summary Delete user
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.DeletedUserResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /users/{username} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")
		if err := svc.DeleteUser(r.Context(), username); err != nil {
			response.Error(w, err)
			return
		}
		response.OK(w, DeletedUserResponse{Deleted: username})
	}
}
