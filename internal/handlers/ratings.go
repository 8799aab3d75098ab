package handlers

//go:generate mockgen -source=ratings.go -destination=mock_ratings.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-bookmarker/internal/models"
	"github.com/sbilibin2017/gw-bookmarker/internal/response"
)

// Rater manages ratings.
type Rater interface {
	AddRating(ctx context.Context, username, volumeID string, value int) (*models.Rating, error)
	UpdateRating(ctx context.Context, username string, ratingID int64, value int) (*models.Rating, error)
	GetRating(ctx context.Context, username, volumeID string) (*models.Rating, error)
	DeleteRating(ctx context.Context, username string, ratingID int64) (*models.Rating, error)
}

// RatingRequest is the body for adding or changing a rating
// swagger:model RatingRequest
type RatingRequest struct {
	// 1 to 5
	// required: true
	// default: 5
	Rating int `json:"rating" validate:"required,gte=1,lte=5"`
}

// RatingResponse wraps a rating; rating is null when the book is not rated
// swagger:model RatingResponse
type RatingResponse struct {
	Rating *models.Rating `json:"rating"`
}

// UpdatedRatingResponse wraps a changed rating
// swagger:model UpdatedRatingResponse
type UpdatedRatingResponse struct {
	UpdatedRating *models.Rating `json:"updatedRating"`
}

// DeletedRatingResponse wraps DeletedID
// swagger:model DeletedRatingResponse
type DeletedRatingResponse struct {
	DeletedRating DeletedID `json:"deletedRating"`
}

// NewAddRatingHandler rates one of the caller's saved books.
// @Summary Add rating
// @Tags ratings
// @Accept json
// @Produce json
// @Param volumeID path string true "Volume id"
// @Param username path string true "Username"
// @Param ratingRequest body handlers.RatingRequest true "Rating"
// @Success 201 {object} handlers.RatingResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Book not saved"
// @Failure 409 {object} handlers.ErrorResponse "Only one rating per book is allowed"
// @Router /ratings/{volumeID}/user/{username} [post]
// @Security BearerAuth
func NewAddRatingHandler(svc Rater, v RequestValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RatingRequest
		if err := decodeBody(r, v, &req); err != nil {
			response.Error(w, err)
			return
		}

		rating, err := svc.AddRating(r.Context(), chi.URLParam(r, "username"), chi.URLParam(r, "volumeID"), req.Rating)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.Created(w, RatingResponse{Rating: rating})
	}
}

// NewGetRatingHandler returns the caller's rating of a saved book.
// @Summary Get rating
// @Tags ratings
// @Produce json
// @Param volumeID path string true "Volume id"
// @Param username path string true "Username"
// @Success 200 {object} handlers.RatingResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Book not saved"
// @Router /ratings/{volumeID}/user/{username} [get]
// @Security BearerAuth
func NewGetRatingHandler(svc Rater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rating, err := svc.GetRating(r.Context(), chi.URLParam(r, "username"), chi.URLParam(r, "volumeID"))
		if err != nil {
			response.Error(w, err)
			return
		}
		response.OK(w, RatingResponse{Rating: rating})
	}
}

// NewUpdateRatingHandler changes the caller's rating.
// @Summary Update rating
// @Tags ratings
// @Accept json
// @Produce json
// @Param ratingID path int true "Rating id"
// @Param username path string true "Username"
// @Param ratingRequest body handlers.RatingRequest true "Rating"
// @Success 200 {object} handlers.UpdatedRatingResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /ratings/id/{ratingID}/user/{username} [patch]
// @Security BearerAuth
func NewUpdateRatingHandler(svc Rater, v RequestValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ratingID, err := idParam(r, "ratingID")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req RatingRequest
		if err := decodeBody(r, v, &req); err != nil {
			response.Error(w, err)
			return
		}

		rating, err := svc.UpdateRating(r.Context(), chi.URLParam(r, "username"), ratingID, req.Rating)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.OK(w, UpdatedRatingResponse{UpdatedRating: rating})
	}
}

// NewDeleteRatingHandler removes the caller's rating.
// @Summary Delete rating
// @Tags ratings
// @Produce json
// @Param ratingID path int true "Rating id"
// @Param username path string true "Username"
// @Success 200 {object} handlers.DeletedRatingResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /ratings/id/{ratingID}/user/{username} [delete]
// @Security BearerAuth
func NewDeleteRatingHandler(svc Rater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ratingID, err := idParam(r, "ratingID")
		if err != nil {
			response.Error(w, err)
			return
		}

		rating, err := svc.DeleteRating(r.Context(), chi.URLParam(r, "username"), ratingID)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.OK(w, DeletedRatingResponse{DeletedRating: DeletedID{ID: rating.ID}})
	}
}
