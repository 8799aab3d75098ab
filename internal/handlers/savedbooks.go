package handlers

//go:generate mockgen -source=savedbooks.go -destination=mock_savedbooks.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	domainerrors "github.com/sbilibin2017/gw-bookmarker/internal/errors"
	"github.com/sbilibin2017/gw-bookmarker/internal/models"
	"github.com/sbilibin2017/gw-bookmarker/internal/response"
)

// Shelf manages a user's saved books.
type Shelf interface {
	AddSavedBook(ctx context.Context, username string, meta models.VolumeMeta) (*models.SavedBook, error)
	SetReadStatus(ctx context.Context, username, volumeID string, hasRead bool) (*models.SavedBook, error)
	ListByStatus(ctx context.Context, username string, hasRead bool) ([]models.SavedBook, error)
	GetAggregate(ctx context.Context, username, volumeID string) (*models.SavedBookDetails, error)
	DeleteSavedBook(ctx context.Context, username, volumeID string) error
}

// SavedBookRequest is the body of POST /savedbooks/{volumeID}/user/{username}
// swagger:model SavedBookRequest
type SavedBookRequest struct {
	// Must equal the volumeID path parameter
	// required: true
	// default: 42
	VolumeID    VolumeIDField `json:"volume_id" validate:"required,notblank"`
	Title       string        `json:"title" validate:"required,notblank"`
	Author      string        `json:"author" validate:"required,notblank"`
	Publisher   string        `json:"publisher"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	// required: true
	HasRead *bool `json:"has_read" validate:"required"`
}

// ReadStatusRequest is the body of PATCH /savedbooks/{volumeID}/user/{username}
// swagger:model ReadStatusRequest
type ReadStatusRequest struct {
	// required: true
	HasRead *bool `json:"has_read" validate:"required"`
}

// SavedBookResponse wraps a saved book
// swagger:model SavedBookResponse
type SavedBookResponse struct {
	SavedBook *models.SavedBook `json:"savedBook"`
}

// SavedBookDetailsResponse wraps a saved book with its review and rating
// swagger:model SavedBookDetailsResponse
type SavedBookDetailsResponse struct {
	SavedBook *models.SavedBookDetails `json:"savedBook"`
}

// UpdatedBookResponse wraps a saved book after a status change
// swagger:model UpdatedBookResponse
type UpdatedBookResponse struct {
	UpdatedBook *models.SavedBook `json:"updatedBook"`
}

// ReadBooksResponse lists books on the read shelf
// swagger:model ReadBooksResponse
type ReadBooksResponse struct {
	ReadBooks []models.SavedBook `json:"readBooks"`
}

// WishBooksResponse lists books on the wish shelf
// swagger:model WishBooksResponse
type WishBooksResponse struct {
	WishBooks []models.SavedBook `json:"wishBooks"`
}

// DeletedBook names a removed saved book
type DeletedBook struct {
	VolumeID string `json:"volume_id"`
}

// DeletedBookResponse wraps DeletedBook
// swagger:model DeletedBookResponse
type DeletedBookResponse struct {
	DeletedBook DeletedBook `json:"deletedBook"`
}

// NewAddSavedBookHandler saves a catalog volume on the caller's shelf.
// @Summary Save a book
// @Description Saves a volume for the owner. The body volume_id must match the path.
// @Tags savedbooks
// @Accept json
// @Produce json
// @Param volumeID path string true "Volume id"
// @Param username path string true "Username"
// @Param savedBookRequest body handlers.SavedBookRequest true "Volume metadata"
// @Success 201 {object} handlers.SavedBookResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Book already saved"
// @Router /savedbooks/{volumeID}/user/{username} [post]
// @Security BearerAuth
func NewAddSavedBookHandler(svc Shelf, v RequestValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SavedBookRequest
		if err := decodeBody(r, v, &req); err != nil {
			response.Error(w, err)
			return
		}

		volumeID := chi.URLParam(r, "volumeID")
		if string(req.VolumeID) != volumeID {
			response.Error(w, domainerrors.ValidationWithDetails(
				"volume_id in body must match the URL",
				map[string]string{"volume_id": "must equal " + volumeID},
			))
			return
		}

		book, err := svc.AddSavedBook(r.Context(), chi.URLParam(r, "username"), models.VolumeMeta{
			VolumeID:    volumeID,
			Title:       req.Title,
			Author:      req.Author,
			Publisher:   req.Publisher,
			Category:    req.Category,
			Description: req.Description,
			Image:       req.Image,
			HasRead:     *req.HasRead,
		})
		if err != nil {
			response.Error(w, err)
			return
		}
		response.Created(w, SavedBookResponse{SavedBook: book})
	}
}

// NewSetReadStatusHandler moves a saved book between the read and wish shelves.
// @Summary Set read status
// @Tags savedbooks
// @Accept json
// @Produce json
// @Param volumeID path string true "Volume id"
// @Param username path string true "Username"
// @Param readStatusRequest body handlers.ReadStatusRequest true "New status"
// @Success 200 {object} handlers.UpdatedBookResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /savedbooks/{volumeID}/user/{username} [patch]
// @Security BearerAuth
func NewSetReadStatusHandler(svc Shelf, v RequestValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReadStatusRequest
		if err := decodeBody(r, v, &req); err != nil {
			response.Error(w, err)
			return
		}

		book, err := svc.SetReadStatus(r.Context(), chi.URLParam(r, "username"), chi.URLParam(r, "volumeID"), *req.HasRead)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.OK(w, UpdatedBookResponse{UpdatedBook: book})
	}
}

// NewListReadHandler lists the caller's read books.
// @Summary List read books
// @Tags savedbooks
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.ReadBooksResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /savedbooks/read/user/{username} [get]
// @Security BearerAuth
func NewListReadHandler(svc Shelf) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		books, err := svc.ListByStatus(r.Context(), chi.URLParam(r, "username"), true)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.OK(w, ReadBooksResponse{ReadBooks: books})
	}
}

// NewListWishHandler lists the books the caller wants to read.
// @Summary List wish-to-read books
// @Tags savedbooks
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.WishBooksResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /savedbooks/wish/user/{username} [get]
// @Security BearerAuth
func NewListWishHandler(svc Shelf) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		books, err := svc.ListByStatus(r.Context(), chi.URLParam(r, "username"), false)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.OK(w, WishBooksResponse{WishBooks: books})
	}
}

// NewGetSavedBookHandler returns a saved book with its review and rating.
// @Summary Get saved book
// @Description review and rating are null when absent.
// @Tags savedbooks
// @Produce json
// @Param volumeID path string true "Volume id"
// @Param username path string true "Username"
// @Success 200 {object} handlers.SavedBookDetailsResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /savedbooks/{volumeID}/user/{username} [get]
// @Security BearerAuth
func NewGetSavedBookHandler(svc Shelf) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		details, err := svc.GetAggregate(r.Context(), chi.URLParam(r, "username"), chi.URLParam(r, "volumeID"))
		if err != nil {
			response.Error(w, err)
			return
		}
		response.OK(w, SavedBookDetailsResponse{SavedBook: details})
	}
}

// NewDeleteSavedBookHandler removes a saved book with its review and rating.
// @Summary Delete saved book
// @Tags savedbooks
// @Produce json
// @Param volumeID path string true "Volume id"
// @Param username path string true "Username"
// @Success 200 {object} handlers.DeletedBookResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /savedbooks/{volumeID}/user/{username} [delete]
// @Security BearerAuth
func NewDeleteSavedBookHandler(svc Shelf) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		volumeID := chi.URLParam(r, "volumeID")
		if err := svc.DeleteSavedBook(r.Context(), chi.URLParam(r, "username"), volumeID); err != nil {
			response.Error(w, err)
			return
		}
		response.OK(w, DeletedBookResponse{DeletedBook: DeletedBook{VolumeID: volumeID}})
	}
}
