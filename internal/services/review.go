package services

//go:generate mockgen -source=review.go -destination=mock_review.go -package=services

import (
	"context"
	"strconv"
	"strings"

	domainerrors "github.com/sbilibin2017/gw-bookmarker/internal/errors"
	"github.com/sbilibin2017/gw-bookmarker/internal/logger"
	"github.com/sbilibin2017/gw-bookmarker/internal/models"
)

// ReviewStore persists reviews. Update and Delete only touch rows owned by
// userID and return nil otherwise.
type ReviewStore interface {
	GetByVolume(ctx context.Context, userID int64, volumeID string) (*models.Review, error)
	ListByVolume(ctx context.Context, volumeID string) ([]models.VolumeReview, error)
	Save(ctx context.Context, userID int64, volumeID, comment string) (*models.Review, error)
	Update(ctx context.Context, userID, reviewID int64, comment string) (*models.Review, error)
	Delete(ctx context.Context, userID, reviewID int64) (*models.Review, error)
}

// SavedBookFinder finds a user's saved book, or nil.
type SavedBookFinder interface {
	Get(ctx context.Context, userID int64, volumeID string) (*models.SavedBook, error)
}

// ErrOneReviewPerBook is returned when the owner already reviewed the volume.
var ErrOneReviewPerBook = domainerrors.Conflict("Only one review per book is allowed")

// ReviewService manages the single review an owner may attach to a saved book.
type ReviewService struct {
	users   UserReader
	books   SavedBookFinder
	reviews ReviewStore
	events  EventSender
}

// NewReviewService creates a new ReviewService.
func NewReviewService(users UserReader, books SavedBookFinder, reviews ReviewStore, events EventSender) *ReviewService {
	return &ReviewService{
		users:   users,
		books:   books,
		reviews: reviews,
		events:  events,
	}
}

// AddReview attaches a review to one of the owner's saved books.
func (s *ReviewService) AddReview(ctx context.Context, username, volumeID, comment string) (*models.Review, error) {
	if err := checkComment(comment); err != nil {
		return nil, err
	}

	owner, err := resolveOwner(ctx, s.users, username)
	if err != nil {
		return nil, err
	}

	if err := requireSavedBook(ctx, s.books, owner.ID, volumeID); err != nil {
		return nil, err
	}

	existing, err := s.reviews.GetByVolume(ctx, owner.ID, volumeID)
	if err != nil {
		logger.Log.Errorw("failed to check review", "username", username, "volume_id", volumeID, "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrOneReviewPerBook
	}

	review, err := s.reviews.Save(ctx, owner.ID, volumeID, comment)
	if err != nil {
		logger.Log.Errorw("failed to save review", "username", username, "volume_id", volumeID, "err", err)
		return nil, err
	}

	s.events.Publish(ctx, models.EventReviewAdded, username, volumeID)
	return review, nil
}

// UpdateReview replaces the comment of a review the owner wrote.
func (s *ReviewService) UpdateReview(ctx context.Context, username string, reviewID int64, comment string) (*models.Review, error) {
	if err := checkComment(comment); err != nil {
		return nil, err
	}

	owner, err := resolveOwner(ctx, s.users, username)
	if err != nil {
		return nil, err
	}

	review, err := s.reviews.Update(ctx, owner.ID, reviewID, comment)
	if err != nil {
		logger.Log.Errorw("failed to update review", "username", username, "review_id", reviewID, "err", err)
		return nil, err
	}
	if review == nil {
		return nil, noSuchReview(reviewID)
	}

	s.events.Publish(ctx, models.EventReviewUpdated, username, review.VolumeID)
	return review, nil
}

// ListReviewsForVolume returns every user's review of a volume, oldest first.
func (s *ReviewService) ListReviewsForVolume(ctx context.Context, volumeID string) ([]models.VolumeReview, error) {
	reviews, err := s.reviews.ListByVolume(ctx, volumeID)
	if err != nil {
		logger.Log.Errorw("failed to list reviews", "volume_id", volumeID, "err", err)
		return nil, err
	}
	if reviews == nil {
		reviews = []models.VolumeReview{}
	}
	return reviews, nil
}

// DeleteReview removes a review the owner wrote.
func (s *ReviewService) DeleteReview(ctx context.Context, username string, reviewID int64) (*models.Review, error) {
	owner, err := resolveOwner(ctx, s.users, username)
	if err != nil {
		return nil, err
	}

	review, err := s.reviews.Delete(ctx, owner.ID, reviewID)
	if err != nil {
		logger.Log.Errorw("failed to delete review", "username", username, "review_id", reviewID, "err", err)
		return nil, err
	}
	if review == nil {
		return nil, noSuchReview(reviewID)
	}

	s.events.Publish(ctx, models.EventReviewDeleted, username, review.VolumeID)
	return review, nil
}

func checkComment(comment string) error {
	if strings.TrimSpace(comment) == "" {
		return domainerrors.ValidationWithDetails("comment must not be empty", map[string]string{"comment": "must not be empty"})
	}
	return nil
}

// requireSavedBook fails with NotFound unless the owner saved volumeID.
func requireSavedBook(ctx context.Context, books SavedBookFinder, userID int64, volumeID string) error {
	book, err := books.Get(ctx, userID, volumeID)
	if err != nil {
		logger.Log.Errorw("failed to get saved book", "user_id", userID, "volume_id", volumeID, "err", err)
		return err
	}
	if book == nil {
		return noSuchSavedBook(volumeID)
	}
	return nil
}

func noSuchReview(reviewID int64) error {
	return domainerrors.NotFound("No review: " + strconv.FormatInt(reviewID, 10))
}
