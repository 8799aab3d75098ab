package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	domainerrors "github.com/sbilibin2017/gw-bookmarker/internal/errors"
	"github.com/sbilibin2017/gw-bookmarker/internal/models"
)

// ReviewRepository stores reviews keyed by (user_id, volume_id).
type ReviewRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewReviewRepository(db *sqlx.DB, txGetter TxGetter) *ReviewRepository {
	return &ReviewRepository{db: db, txGetter: txGetter}
}

// GetByVolume returns the user's review of a volume, or nil when absent.
func (r *ReviewRepository) GetByVolume(ctx context.Context, userID int64, volumeID string) (*models.Review, error) {
	const query = `
		SELECT id, user_id, volume_id, comment, created_at
		FROM reviews
		WHERE user_id = $1 AND volume_id = $2
	`

	var review models.Review
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &review, query, userID, volumeID)
	logQuery(query, []any{userID, volumeID}, review.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ListByVolume returns every review of a volume with the reviewer's
// username, oldest first.
func (r *ReviewRepository) ListByVolume(ctx context.Context, volumeID string) ([]models.VolumeReview, error) {
	const query = `
		SELECT r.id, r.user_id, r.volume_id, r.comment, r.created_at, u.username
		FROM reviews AS r
		JOIN users AS u ON r.user_id = u.id
		WHERE r.volume_id = $1
		ORDER BY r.created_at, r.id
	`

	reviews := []models.VolumeReview{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &reviews, query, volumeID)
	logQuery(query, []any{volumeID}, len(reviews), err)

	return reviews, err
}

// Save inserts a review stamped with the current time. reviews_user_volume_key
// makes a second review for the same pair fail with Conflict even when two
// requests race past the service pre-check.
func (r *ReviewRepository) Save(ctx context.Context, userID int64, volumeID, comment string) (*models.Review, error) {
	const query = `
		INSERT INTO reviews (user_id, volume_id, comment)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, volume_id, comment, created_at
	`

	var review models.Review
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &review, query, userID, volumeID, comment)
	logQuery(query, []any{userID, volumeID, comment}, review.ID, err)

	if err != nil {
		return nil, mapPgError(err, domainerrors.Conflict("Only one review per book is allowed"))
	}
	return &review, nil
}

// Update changes the comment of a review owned by userID. It returns nil when
// no such review belongs to the user.
func (r *ReviewRepository) Update(ctx context.Context, userID, reviewID int64, comment string) (*models.Review, error) {
	const query = `
		UPDATE reviews
		SET comment = $1
		WHERE user_id = $2 AND id = $3
		RETURNING id, user_id, volume_id, comment, created_at
	`

	var review models.Review
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &review, query, comment, userID, reviewID)
	logQuery(query, []any{comment, userID, reviewID}, review.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapPgError(err, domainerrors.ErrConflict)
	}
	return &review, nil
}

// Delete removes a review owned by userID and returns it, or nil when the
// user owns no review with that id.
func (r *ReviewRepository) Delete(ctx context.Context, userID, reviewID int64) (*models.Review, error) {
	const query = `
		DELETE FROM reviews
		WHERE user_id = $1 AND id = $2
		RETURNING id, user_id, volume_id, comment, created_at
	`

	var review models.Review
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &review, query, userID, reviewID)
	logQuery(query, []any{userID, reviewID}, review.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}
