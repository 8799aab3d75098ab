package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	domainerrors "github.com/sbilibin2017/gw-bookmarker/internal/errors"
	"github.com/sbilibin2017/gw-bookmarker/internal/models"
)

// RatingRepository stores ratings keyed by (user_id, volume_id).
type RatingRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewRatingRepository(db *sqlx.DB, txGetter TxGetter) *RatingRepository {
	return &RatingRepository{db: db, txGetter: txGetter}
}

// GetByVolume returns the user's rating of a volume, or nil when absent.
func (r *RatingRepository) GetByVolume(ctx context.Context, userID int64, volumeID string) (*models.Rating, error) {
	const query = `
		SELECT id, user_id, volume_id, rating, created_at
		FROM ratings
		WHERE user_id = $1 AND volume_id = $2
	`

	var rating models.Rating
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &rating, query, userID, volumeID)
	logQuery(query, []any{userID, volumeID}, rating.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// Save inserts a rating; a second rating for the same pair is a Conflict.
func (r *RatingRepository) Save(ctx context.Context, userID int64, volumeID string, value int) (*models.Rating, error) {
	const query = `
		INSERT INTO ratings (user_id, volume_id, rating)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, volume_id, rating, created_at
	`

	var rating models.Rating
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &rating, query, userID, volumeID, value)
	logQuery(query, []any{userID, volumeID, value}, rating.ID, err)

	if err != nil {
		return nil, mapPgError(err, domainerrors.Conflict("Only one rating per book is allowed"))
	}
	return &rating, nil
}

// Update changes the value of a rating owned by userID, or returns nil.
func (r *RatingRepository) Update(ctx context.Context, userID, ratingID int64, value int) (*models.Rating, error) {
	const query = `
		UPDATE ratings
		SET rating = $1
		WHERE user_id = $2 AND id = $3
		RETURNING id, user_id, volume_id, rating, created_at
	`

	var rating models.Rating
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &rating, query, value, userID, ratingID)
	logQuery(query, []any{value, userID, ratingID}, rating.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapPgError(err, domainerrors.ErrConflict)
	}
	return &rating, nil
}

// Delete removes a rating owned by userID and returns it, or nil.
func (r *RatingRepository) Delete(ctx context.Context, userID, ratingID int64) (*models.Rating, error) {
	const query = `
		DELETE FROM ratings
		WHERE user_id = $1 AND id = $2
		RETURNING id, user_id, volume_id, rating, created_at
	`

	var rating models.Rating
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &rating, query, userID, ratingID)
	logQuery(query, []any{userID, ratingID}, rating.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}
