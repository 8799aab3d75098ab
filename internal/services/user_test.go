package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	domainerrors "github.com/sbilibin2017/gw-bookmarker/internal/errors"
	"github.com/sbilibin2017/gw-bookmarker/internal/models"
	"github.com/sbilibin2017/gw-bookmarker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockUserProfileReader(ctrl)
	writer := services.NewMockUserUpdater(ctrl)
	events := services.NewMockEventSender(ctrl)
	svc := services.NewUserService(reader, writer, events)
	ctx := context.Background()

	t.Run("GetUser with saved volumes", func(t *testing.T) {
		reader.EXPECT().GetByUsername(gomock.Any(), "u1").Return(owner, nil)
		reader.EXPECT().ListVolumeIDs(gomock.Any(), owner.ID).Return([]string{"42", "7"}, nil)

		got, err := svc.GetUser(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, &models.UserProfile{ID: 7, Username: "u1", Email: "u1@x.com", VolumeIDs: []string{"42", "7"}}, got)
	})

	t.Run("GetUser missing", func(t *testing.T) {
		reader.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

		_, err := svc.GetUser(ctx, "ghost")
		assert.True(t, domainerrors.Is(err, domainerrors.ErrNotFound))
	})

	t.Run("GetUser list failure", func(t *testing.T) {
		reader.EXPECT().GetByUsername(gomock.Any(), "u1").Return(owner, nil)
		reader.EXPECT().ListVolumeIDs(gomock.Any(), owner.ID).Return(nil, errors.New("timeout"))

		_, err := svc.GetUser(ctx, "u1")
		assert.EqualError(t, err, "timeout")
	})

	t.Run("UpdateUser", func(t *testing.T) {
		writer.EXPECT().UpdateEmail(gomock.Any(), "u1", "new@x.com").
			Return(&models.UserDB{ID: 7, Username: "u1", Email: "new@x.com"}, nil)

		got, err := svc.UpdateUser(ctx, "u1", "new@x.com")
		require.NoError(t, err)
		assert.Equal(t, "new@x.com", got.Email)
	})

	t.Run("UpdateUser missing", func(t *testing.T) {
		writer.EXPECT().UpdateEmail(gomock.Any(), "ghost", "new@x.com").Return(nil, nil)

		_, err := svc.UpdateUser(ctx, "ghost", "new@x.com")
		assert.True(t, domainerrors.Is(err, domainerrors.ErrNotFound))
	})

	t.Run("DeleteUser", func(t *testing.T) {
		writer.EXPECT().Delete(gomock.Any(), "u1").Return(true, nil)
		events.EXPECT().Publish(gomock.Any(), models.EventUserDeleted, "u1", "")

		assert.NoError(t, svc.DeleteUser(ctx, "u1"))
	})

	t.Run("DeleteUser missing", func(t *testing.T) {
		writer.EXPECT().Delete(gomock.Any(), "ghost").Return(false, nil)

		err := svc.DeleteUser(ctx, "ghost")
		assert.True(t, domainerrors.Is(err, domainerrors.ErrNotFound))
	})
}
