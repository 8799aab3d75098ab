package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	domainerrors "github.com/sbilibin2017/gw-bookmarker/internal/errors"
	"github.com/sbilibin2017/gw-bookmarker/internal/models"
)

const savedBookColumns = `id, user_id, volume_id, title, author, publisher, category, description, image, has_read, created_at`

// SavedBookRepository stores saved books. Every statement runs on the request
// transaction when one is bound to the context.
type SavedBookRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewSavedBookRepository(db *sqlx.DB, txGetter TxGetter) *SavedBookRepository {
	return &SavedBookRepository{db: db, txGetter: txGetter}
}

// Get returns the saved book for (userID, volumeID), or nil when absent.
func (r *SavedBookRepository) Get(ctx context.Context, userID int64, volumeID string) (*models.SavedBook, error) {
	const query = `
		SELECT ` + savedBookColumns + `
		FROM saved_books
		WHERE user_id = $1 AND volume_id = $2
	`

	var book models.SavedBook
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &book, query, userID, volumeID)
	logQuery(query, []any{userID, volumeID}, book.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// ListByStatus returns a user's saved books with the given read status in
// insertion order. An empty slice is returned when nothing matches.
func (r *SavedBookRepository) ListByStatus(ctx context.Context, userID int64, hasRead bool) ([]models.SavedBook, error) {
	const query = `
		SELECT ` + savedBookColumns + `
		FROM saved_books
		WHERE user_id = $1 AND has_read = $2
		ORDER BY id
	`

	books := []models.SavedBook{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &books, query, userID, hasRead)
	logQuery(query, []any{userID, hasRead}, len(books), err)

	return books, err
}

// Save inserts a saved book. A second save of the same volume by the same
// user violates saved_books_user_volume_key and is reported as Conflict.
func (r *SavedBookRepository) Save(ctx context.Context, userID int64, meta models.VolumeMeta) (*models.SavedBook, error) {
	const query = `
		INSERT INTO saved_books (user_id, volume_id, title, author, publisher, category, description, image, has_read)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + savedBookColumns

	args := []any{userID, meta.VolumeID, meta.Title, meta.Author, meta.Publisher,
		meta.Category, meta.Description, meta.Image, meta.HasRead}

	var book models.SavedBook
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &book, query, args...)
	logQuery(query, args, book.ID, err)

	if err != nil {
		return nil, mapPgError(err, domainerrors.Conflict("Book already saved. Volume Id: "+meta.VolumeID))
	}
	return &book, nil
}

// UpdateReadStatus sets has_read and returns the row, or nil when there is no
// saved book for (userID, volumeID).
func (r *SavedBookRepository) UpdateReadStatus(ctx context.Context, userID int64, volumeID string, hasRead bool) (*models.SavedBook, error) {
	const query = `
		UPDATE saved_books
		SET has_read = $1
		WHERE user_id = $2 AND volume_id = $3
		RETURNING ` + savedBookColumns

	var book models.SavedBook
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &book, query, hasRead, userID, volumeID)
	logQuery(query, []any{hasRead, userID, volumeID}, book.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Delete removes the saved book; its review and rating are removed by the
// cascading foreign keys. It reports whether a row was deleted.
func (r *SavedBookRepository) Delete(ctx context.Context, userID int64, volumeID string) (bool, error) {
	const query = `DELETE FROM saved_books WHERE user_id = $1 AND volume_id = $2`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, volumeID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{userID, volumeID}, rowsAffected, err)

	return rowsAffected > 0, err
}
