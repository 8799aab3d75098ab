package handlers

//go:generate mockgen -source=reviews.go -destination=mock_reviews.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-bookmarker/internal/models"
	"github.com/sbilibin2017/gw-bookmarker/internal/response"
)

// Reviewer manages reviews.
type Reviewer interface {
	AddReview(ctx context.Context, username, volumeID, comment string) (*models.Review, error)
	UpdateReview(ctx context.Context, username string, reviewID int64, comment string) (*models.Review, error)
	ListReviewsForVolume(ctx context.Context, volumeID string) ([]models.VolumeReview, error)
	DeleteReview(ctx context.Context, username string, reviewID int64) (*models.Review, error)
}

// ReviewRequest is the body for adding or editing a review
// swagger:model ReviewRequest
type ReviewRequest struct {
	// required: true
	// default: Couldn't put it down.
	Comment string `json:"comment" validate:"required,notblank"`
}

// ReviewResponse wraps a new review
// swagger:model ReviewResponse
type ReviewResponse struct {
	Review *models.Review `json:"review"`
}

// UpdatedReviewResponse wraps an edited review
// swagger:model UpdatedReviewResponse
type UpdatedReviewResponse struct {
	UpdatedReview *models.Review `json:"updatedReview"`
}

// AllReviewsResponse lists every review of a volume
// swagger:model AllReviewsResponse
type AllReviewsResponse struct {
	AllReviews []models.VolumeReview `json:"allReviews"`
}

// DeletedID names a removed review or rating
type DeletedID struct {
	ID int64 `json:"id"`
}

// DeletedReviewResponse wraps DeletedID
// swagger:model DeletedReviewResponse
type DeletedReviewResponse struct {
	DeletedReview DeletedID `json:"deletedReview"`
}

// NewListReviewsHandler lists all users' reviews of a volume, oldest first.
// @Summary List reviews for a volume
// @Tags reviews
// @Produce json
// @Param volumeID path string true "Volume id"
// @Success 200 {object} handlers.AllReviewsResponse
// @Router /reviews/{volumeID} [get]
func NewListReviewsHandler(svc Reviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviews, err := svc.ListReviewsForVolume(r.Context(), chi.URLParam(r, "volumeID"))
		if err != nil {
			response.Error(w, err)
			return
		}
		response.OK(w, AllReviewsResponse{AllReviews: reviews})
	}
}

// NewAddReviewHandler adds the caller's review of a saved book.
// @Summary Add review
// @Tags reviews
// @Accept json
// @Produce json
// @Param volumeID path string true "Volume id"
// @Param username path string true "Username"
// @Param reviewRequest body handlers.ReviewRequest true "Review"
// @Success 201 {object} handlers.ReviewResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Book not saved"
// @Failure 409 {object} handlers.ErrorResponse "Only one review per book is allowed"
// @Router /reviews/{volumeID}/user/{username} [post]
// @Security BearerAuth
func NewAddReviewHandler(svc Reviewer, v RequestValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReviewRequest
		if err := decodeBody(r, v, &req); err != nil {
			response.Error(w, err)
			return
		}

		review, err := svc.AddReview(r.Context(), chi.URLParam(r, "username"), chi.URLParam(r, "volumeID"), req.Comment)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.Created(w, ReviewResponse{Review: review})
	}
}

// NewUpdateReviewHandler edits the caller's review.
// @Summary Update review
// @Tags reviews
// @Accept json
// @Produce json
// @Param reviewID path int true "Review id"
// @Param username path string true "Username"
// @Param reviewRequest body handlers.ReviewRequest true "Review"
// @Success 200 {object} handlers.UpdatedReviewResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /reviews/id/{reviewID}/user/{username} [patch]
// @Security BearerAuth
func NewUpdateReviewHandler(svc Reviewer, v RequestValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviewID, err := idParam(r, "reviewID")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req ReviewRequest
		if err := decodeBody(r, v, &req); err != nil {
			response.Error(w, err)
			return
		}

		review, err := svc.UpdateReview(r.Context(), chi.URLParam(r, "username"), reviewID, req.Comment)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.OK(w, UpdatedReviewResponse{UpdatedReview: review})
	}
}

// NewDeleteReviewHandler removes the caller's review.
// @Summary Delete review
// @Tags reviews
// @Produce json
// @Param reviewID path int true "Review id"
// @Param username path string true "Username"
// @Success 200 {object} handlers.DeletedReviewResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /reviews/id/{reviewID}/user/{username} [delete]
// @Security BearerAuth
func NewDeleteReviewHandler(svc Reviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviewID, err := idParam(r, "reviewID")
		if err != nil {
			response.Error(w, err)
			return
		}

		review, err := svc.DeleteReview(r.Context(), chi.URLParam(r, "username"), reviewID)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.OK(w, DeletedReviewResponse{DeletedReview: DeletedID{ID: review.ID}})
	}
}
