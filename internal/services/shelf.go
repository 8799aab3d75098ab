package services

//go:generate mockgen -source=shelf.go -destination=mock_shelf.go -package=services

import (
	"context"

	domainerrors "github.com/sbilibin2017/gw-bookmarker/internal/errors"
	"github.com/sbilibin2017/gw-bookmarker/internal/logger"
	"github.com/sbilibin2017/gw-bookmarker/internal/models"
)

// SavedBookStore persists saved books. Get returns nil when the row is absent.
type SavedBookStore interface {
	Get(ctx context.Context, userID int64, volumeID string) (*models.SavedBook, error)
	ListByStatus(ctx context.Context, userID int64, hasRead bool) ([]models.SavedBook, error)
	Save(ctx context.Context, userID int64, meta models.VolumeMeta) (*models.SavedBook, error)
	UpdateReadStatus(ctx context.Context, userID int64, volumeID string, hasRead bool) (*models.SavedBook, error)
	Delete(ctx context.Context, userID int64, volumeID string) (bool, error)
}

// ReviewFinder finds the review a user wrote for a volume, or nil.
type ReviewFinder interface {
	GetByVolume(ctx context.Context, userID int64, volumeID string) (*models.Review, error)
}

// RatingFinder finds the rating a user gave a volume, or nil.
type RatingFinder interface {
	GetByVolume(ctx context.Context, userID int64, volumeID string) (*models.Rating, error)
}

// ShelfService manages a saved book together with its review and rating.
//
// Reviews and ratings reference their saved book by (user_id, volume_id)
// with ON DELETE CASCADE, so deleting a saved book removes both.
type ShelfService struct {
	users   UserReader
	books   SavedBookStore
	reviews ReviewFinder
	ratings RatingFinder
	events  EventSender
}

// NewShelfService creates a new ShelfService.
func NewShelfService(
	users UserReader,
	books SavedBookStore,
	reviews ReviewFinder,
	ratings RatingFinder,
	events EventSender,
) *ShelfService {
	return &ShelfService{
		users:   users,
		books:   books,
		reviews: reviews,
		ratings: ratings,
		events:  events,
	}
}

// AddSavedBook saves a catalog volume on the owner's shelf.
func (s *ShelfService) AddSavedBook(ctx context.Context, username string, meta models.VolumeMeta) (*models.SavedBook, error) {
	owner, err := resolveOwner(ctx, s.users, username)
	if err != nil {
		return nil, err
	}

	existing, err := s.books.Get(ctx, owner.ID, meta.VolumeID)
	if err != nil {
		logger.Log.Errorw("failed to check saved book", "username", username, "volume_id", meta.VolumeID, "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, alreadySaved(meta.VolumeID)
	}

	book, err := s.books.Save(ctx, owner.ID, meta)
	if err != nil {
		logger.Log.Errorw("failed to save book", "username", username, "volume_id", meta.VolumeID, "err", err)
		return nil, err
	}

	s.events.Publish(ctx, models.EventSavedBookAdded, username, meta.VolumeID)
	return book, nil
}

// SetReadStatus moves a saved book between the read and wish shelves.
// Setting the current value again succeeds without change.
func (s *ShelfService) SetReadStatus(ctx context.Context, username, volumeID string, hasRead bool) (*models.SavedBook, error) {
	owner, err := resolveOwner(ctx, s.users, username)
	if err != nil {
		return nil, err
	}

	book, err := s.books.UpdateReadStatus(ctx, owner.ID, volumeID, hasRead)
	if err != nil {
		logger.Log.Errorw("failed to update read status", "username", username, "volume_id", volumeID, "err", err)
		return nil, err
	}
	if book == nil {
		return nil, noSuchSavedBook(volumeID)
	}

	s.events.Publish(ctx, models.EventSavedBookStatusChange, username, volumeID)
	return book, nil
}

// ListByStatus returns the owner's saved books with the given read status in
// the order they were saved. An empty shelf is an empty, non-nil slice.
func (s *ShelfService) ListByStatus(ctx context.Context, username string, hasRead bool) ([]models.SavedBook, error) {
	owner, err := resolveOwner(ctx, s.users, username)
	if err != nil {
		return nil, err
	}

	books, err := s.books.ListByStatus(ctx, owner.ID, hasRead)
	if err != nil {
		logger.Log.Errorw("failed to list saved books", "username", username, "has_read", hasRead, "err", err)
		return nil, err
	}
	if books == nil {
		books = []models.SavedBook{}
	}
	return books, nil
}

// GetAggregate returns the saved book with its review and rating. A missing
// review or rating is nil, never an error.
func (s *ShelfService) GetAggregate(ctx context.Context, username, volumeID string) (*models.SavedBookDetails, error) {
	owner, err := resolveOwner(ctx, s.users, username)
	if err != nil {
		return nil, err
	}

	book, err := s.books.Get(ctx, owner.ID, volumeID)
	if err != nil {
		logger.Log.Errorw("failed to get saved book", "username", username, "volume_id", volumeID, "err", err)
		return nil, err
	}
	if book == nil {
		return nil, noSuchSavedBook(volumeID)
	}

	review, err := s.reviews.GetByVolume(ctx, owner.ID, volumeID)
	if err != nil {
		logger.Log.Errorw("failed to get review", "username", username, "volume_id", volumeID, "err", err)
		return nil, err
	}

	rating, err := s.ratings.GetByVolume(ctx, owner.ID, volumeID)
	if err != nil {
		logger.Log.Errorw("failed to get rating", "username", username, "volume_id", volumeID, "err", err)
		return nil, err
	}

	return &models.SavedBookDetails{
		SavedBook: *book,
		Review:    review,
		Rating:    rating,
	}, nil
}

// DeleteSavedBook removes a saved book; its review and rating go with it.
func (s *ShelfService) DeleteSavedBook(ctx context.Context, username, volumeID string) error {
	owner, err := resolveOwner(ctx, s.users, username)
	if err != nil {
		return err
	}

	deleted, err := s.books.Delete(ctx, owner.ID, volumeID)
	if err != nil {
		logger.Log.Errorw("failed to delete saved book", "username", username, "volume_id", volumeID, "err", err)
		return err
	}
	if !deleted {
		return noSuchSavedBook(volumeID)
	}

	s.events.Publish(ctx, models.EventSavedBookDeleted, username, volumeID)
	return nil
}

func alreadySaved(volumeID string) error {
	return domainerrors.Conflict("Book already saved. Volume Id: " + volumeID)
}

func noSuchSavedBook(volumeID string) error {
	return domainerrors.NotFoundf("No saved book: %s", volumeID)
}
