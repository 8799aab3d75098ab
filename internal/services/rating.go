package services

//go:generate mockgen -source=rating.go -destination=mock_rating.go -package=services

import (
	"context"
	"fmt"

	domainerrors "github.com/sbilibin2017/gw-bookmarker/internal/errors"
	"github.com/sbilibin2017/gw-bookmarker/internal/logger"
	"github.com/sbilibin2017/gw-bookmarker/internal/models"
)

// RatingStore persists ratings. Update and Delete only touch rows owned by
// userID and return nil otherwise.
type RatingStore interface {
	GetByVolume(ctx context.Context, userID int64, volumeID string) (*models.Rating, error)
	Save(ctx context.Context, userID int64, volumeID string, value int) (*models.Rating, error)
	Update(ctx context.Context, userID, ratingID int64, value int) (*models.Rating, error)
	Delete(ctx context.Context, userID, ratingID int64) (*models.Rating, error)
}

// ErrOneRatingPerBook is returned when the owner already rated the volume.
var ErrOneRatingPerBook = domainerrors.Conflict("Only one rating per book is allowed")

// RatingService manages the single rating an owner may give a saved book.
type RatingService struct {
	users   UserReader
	books   SavedBookFinder
	ratings RatingStore
	events  EventSender
}

// NewRatingService creates a new RatingService.
func NewRatingService(users UserReader, books SavedBookFinder, ratings RatingStore, events EventSender) *RatingService {
	return &RatingService{
		users:   users,
		books:   books,
		ratings: ratings,
		events:  events,
	}
}

// AddRating rates one of the owner's saved books.
func (s *RatingService) AddRating(ctx context.Context, username, volumeID string, value int) (*models.Rating, error) {
	if err := checkRating(value); err != nil {
		return nil, err
	}

	owner, err := resolveOwner(ctx, s.users, username)
	if err != nil {
		return nil, err
	}

	if err := requireSavedBook(ctx, s.books, owner.ID, volumeID); err != nil {
		return nil, err
	}

	existing, err := s.ratings.GetByVolume(ctx, owner.ID, volumeID)
	if err != nil {
		logger.Log.Errorw("failed to check rating", "username", username, "volume_id", volumeID, "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrOneRatingPerBook
	}

	rating, err := s.ratings.Save(ctx, owner.ID, volumeID, value)
	if err != nil {
		logger.Log.Errorw("failed to save rating", "username", username, "volume_id", volumeID, "err", err)
		return nil, err
	}

	s.events.Publish(ctx, models.EventRatingAdded, username, volumeID)
	return rating, nil
}

// UpdateRating changes the value of a rating the owner gave.
func (s *RatingService) UpdateRating(ctx context.Context, username string, ratingID int64, value int) (*models.Rating, error) {
	if err := checkRating(value); err != nil {
		return nil, err
	}

	owner, err := resolveOwner(ctx, s.users, username)
	if err != nil {
		return nil, err
	}

	rating, err := s.ratings.Update(ctx, owner.ID, ratingID, value)
	if err != nil {
		logger.Log.Errorw("failed to update rating", "username", username, "rating_id", ratingID, "err", err)
		return nil, err
	}
	if rating == nil {
		return nil, noSuchRating(ratingID)
	}

	s.events.Publish(ctx, models.EventRatingUpdated, username, rating.VolumeID)
	return rating, nil
}

// GetRating returns the owner's rating of a saved book, or nil when the book
// has not been rated yet.
func (s *RatingService) GetRating(ctx context.Context, username, volumeID string) (*models.Rating, error) {
	owner, err := resolveOwner(ctx, s.users, username)
	if err != nil {
		return nil, err
	}

	if err := requireSavedBook(ctx, s.books, owner.ID, volumeID); err != nil {
		return nil, err
	}

	rating, err := s.ratings.GetByVolume(ctx, owner.ID, volumeID)
	if err != nil {
		logger.Log.Errorw("failed to get rating", "username", username, "volume_id", volumeID, "err", err)
		return nil, err
	}
	return rating, nil
}

// DeleteRating removes a rating the owner gave.
func (s *RatingService) DeleteRating(ctx context.Context, username string, ratingID int64) (*models.Rating, error) {
	owner, err := resolveOwner(ctx, s.users, username)
	if err != nil {
		return nil, err
	}

	rating, err := s.ratings.Delete(ctx, owner.ID, ratingID)
	if err != nil {
		logger.Log.Errorw("failed to delete rating", "username", username, "rating_id", ratingID, "err", err)
		return nil, err
	}
	if rating == nil {
		return nil, noSuchRating(ratingID)
	}

	s.events.Publish(ctx, models.EventRatingDeleted, username, rating.VolumeID)
	return rating, nil
}

func checkRating(value int) error {
	if value < models.MinRating || value > models.MaxRating {
		msg := fmt.Sprintf("rating must be between %d and %d", models.MinRating, models.MaxRating)
		return domainerrors.ValidationWithDetails(msg, map[string]string{"rating": msg})
	}
	return nil
}

func noSuchRating(ratingID int64) error {
	return domainerrors.NotFoundf("No rating: %d", ratingID)
}
