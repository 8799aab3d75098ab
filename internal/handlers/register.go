package handlers

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-bookmarker/internal/response"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, email string) (string, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: u1
	Username string `json:"username" validate:"required,notblank,max=30"`

	// Password
	// required: true
	// default: pw1
	Password string `json:"password" validate:"required,max=72"`

	// Email
	// required: true
	// default: u1@x.com
	Email string `json:"email" validate:"required,email"`
}

// TokenResponse carries a freshly issued token
// swagger:model TokenResponse
type TokenResponse struct {
	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account and returns a token for it. Password is hashed before storing.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.TokenResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Username already taken / invalid request"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Router /users/register [post]
func NewRegisterHandler(svc Registerer, v RequestValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := decodeBody(r, v, &req); err != nil {
			response.Error(w, err)
			return
		}

		token, err := svc.Register(r.Context(), req.Username, req.Password, req.Email)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Created(w, TokenResponse{Token: token})
	}
}
