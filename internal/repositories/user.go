package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	domainerrors "github.com/sbilibin2017/gw-bookmarker/internal/errors"
	"github.com/sbilibin2017/gw-bookmarker/internal/models"
)

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByUsername returns the user, or nil when no such user exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, password, email
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, username)
	logQuery(query, []any{username}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListVolumeIDs returns the volume ids a user saved, in insertion order.
func (r *UserReadRepository) ListVolumeIDs(ctx context.Context, userID int64) ([]string, error) {
	const query = `
		SELECT volume_id
		FROM saved_books
		WHERE user_id = $1
		ORDER BY id
	`

	volumeIDs := []string{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &volumeIDs, query, userID)
	logQuery(query, []any{userID}, volumeIDs, err)

	return volumeIDs, err
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a user. The unique index on username is authoritative:
// a concurrent duplicate surfaces as an AlreadyExists error.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash, email string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (username, password, email)
		VALUES ($1, $2, $3)
		RETURNING id, username, password, email
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, username, passwordHash, email)
	logQuery(query, []any{username, email}, user.ID, err)

	if err != nil {
		return nil, mapPgError(err, domainerrors.AlreadyExists(
			"Please sign up with another username. "+username+" has already been taken."))
	}
	return &user, nil
}

// UpdateEmail changes the email of a user and returns the updated row,
// or nil when the user does not exist.
func (r *UserWriteRepository) UpdateEmail(ctx context.Context, username, email string) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET email = $1
		WHERE username = $2
		RETURNING id, username, password, email
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, email, username)
	logQuery(query, []any{email, username}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapPgError(err, domainerrors.ErrConflict)
	}
	return &user, nil
}

// Delete removes a user; saved books, reviews and ratings go with it via
// ON DELETE CASCADE. It reports whether a row was deleted.
func (r *UserWriteRepository) Delete(ctx context.Context, username string) (bool, error) {
	const query = `DELETE FROM users WHERE username = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, username)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{username}, rowsAffected, err)

	return rowsAffected > 0, err
}
