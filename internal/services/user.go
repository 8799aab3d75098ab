package services

//go:generate mockgen -source=user.go -destination=mock_user.go -package=services

import (
	"context"

	domainerrors "github.com/sbilibin2017/gw-bookmarker/internal/errors"
	"github.com/sbilibin2017/gw-bookmarker/internal/logger"
	"github.com/sbilibin2017/gw-bookmarker/internal/models"
)

// UserProfileReader reads a user together with the volumes they saved.
type UserProfileReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	ListVolumeIDs(ctx context.Context, userID int64) ([]string, error)
}

// UserUpdater changes or removes existing users.
type UserUpdater interface {
	UpdateEmail(ctx context.Context, username, email string) (*models.UserDB, error)
	Delete(ctx context.Context, username string) (bool, error)
}

// UserService serves a user's own account.
type UserService struct {
	reader UserProfileReader
	writer UserUpdater
	events EventSender
}

// NewUserService creates a new UserService.
func NewUserService(reader UserProfileReader, writer UserUpdater, events EventSender) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		events: events,
	}
}

// GetUser returns the profile of username with its saved volume ids.
func (s *UserService) GetUser(ctx context.Context, username string) (*models.UserProfile, error) {
	user, err := resolveOwner(ctx, s.reader, username)
	if err != nil {
		return nil, err
	}

	volumeIDs, err := s.reader.ListVolumeIDs(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to list saved volumes", "username", username, "err", err)
		return nil, err
	}

	return &models.UserProfile{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		VolumeIDs: volumeIDs,
	}, nil
}

// UpdateUser changes the email of username.
func (s *UserService) UpdateUser(ctx context.Context, username, email string) (*models.UserDB, error) {
	user, err := s.writer.UpdateEmail(ctx, username, email)
	if err != nil {
		logger.Log.Errorw("failed to update user", "username", username, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, noSuchUser(username)
	}
	return user, nil
}

// DeleteUser removes username together with everything they saved.
func (s *UserService) DeleteUser(ctx context.Context, username string) error {
	deleted, err := s.writer.Delete(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "username", username, "err", err)
		return err
	}
	if !deleted {
		return noSuchUser(username)
	}

	s.events.Publish(ctx, models.EventUserDeleted, username, "")
	return nil
}

// resolveOwner loads the user a route is addressed to.
func resolveOwner(ctx context.Context, users UserReader, username string) (*models.UserDB, error) {
	user, err := users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, noSuchUser(username)
	}
	return user, nil
}

func noSuchUser(username string) error {
	return domainerrors.NotFoundf("No user: %s", username)
}
