package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	domainerrors "github.com/sbilibin2017/gw-bookmarker/internal/errors"
	"github.com/sbilibin2017/gw-bookmarker/internal/models"
	"github.com/sbilibin2017/gw-bookmarker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var owner = &models.UserDB{ID: 7, Username: "u1", Email: "u1@x.com"}

type shelfMocks struct {
	users   *services.MockUserReader
	books   *services.MockSavedBookStore
	reviews *services.MockReviewFinder
	ratings *services.MockRatingFinder
	events  *services.MockEventSender
}

func newShelfService(t *testing.T) (*services.ShelfService, shelfMocks) {
	ctrl := gomock.NewController(t)
	m := shelfMocks{
		users:   services.NewMockUserReader(ctrl),
		books:   services.NewMockSavedBookStore(ctrl),
		reviews: services.NewMockReviewFinder(ctrl),
		ratings: services.NewMockRatingFinder(ctrl),
		events:  services.NewMockEventSender(ctrl),
	}
	return services.NewShelfService(m.users, m.books, m.reviews, m.ratings, m.events), m
}

func TestShelfService_AddSavedBook(t *testing.T) {
	meta := models.VolumeMeta{VolumeID: "42", Title: "Airframe", Author: "Michael Crichton", HasRead: true}
	saved := &models.SavedBook{ID: 1, UserID: owner.ID, VolumeID: "42", Title: "Airframe", HasRead: true}

	tests := []struct {
		name     string
		setup    func(m shelfMocks)
		want     *models.SavedBook
		wantCode domainerrors.Code
	}{
		{
			name: "saved",
			setup: func(m shelfMocks) {
				m.users.EXPECT().GetByUsername(gomock.Any(), "u1").Return(owner, nil)
				m.books.EXPECT().Get(gomock.Any(), owner.ID, "42").Return(nil, nil)
				m.books.EXPECT().Save(gomock.Any(), owner.ID, meta).Return(saved, nil)
				m.events.EXPECT().Publish(gomock.Any(), models.EventSavedBookAdded, "u1", "42")
			},
			want: saved,
		},
		{
			name: "owner missing",
			setup: func(m shelfMocks) {
				m.users.EXPECT().GetByUsername(gomock.Any(), "u1").Return(nil, nil)
			},
			wantCode: domainerrors.CodeNotFound,
		},
		{
			name: "already saved",
			setup: func(m shelfMocks) {
				m.users.EXPECT().GetByUsername(gomock.Any(), "u1").Return(owner, nil)
				m.books.EXPECT().Get(gomock.Any(), owner.ID, "42").Return(saved, nil)
			},
			wantCode: domainerrors.CodeConflict,
		},
		{
			name: "concurrent save rejected by storage",
			setup: func(m shelfMocks) {
				m.users.EXPECT().GetByUsername(gomock.Any(), "u1").Return(owner, nil)
				m.books.EXPECT().Get(gomock.Any(), owner.ID, "42").Return(nil, nil)
				m.books.EXPECT().Save(gomock.Any(), owner.ID, meta).
					Return(nil, domainerrors.Conflict("Book already saved. Volume Id: 42"))
			},
			wantCode: domainerrors.CodeConflict,
		},
		{
			name: "storage failure",
			setup: func(m shelfMocks) {
				m.users.EXPECT().GetByUsername(gomock.Any(), "u1").Return(nil, errors.New("connection refused"))
			},
			wantCode: domainerrors.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newShelfService(t)
			tt.setup(m)

			got, err := svc.AddSavedBook(context.Background(), "u1", meta)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, domainerrors.GetCode(err))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShelfService_SetReadStatus(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		svc, m := newShelfService(t)
		book := &models.SavedBook{ID: 1, UserID: owner.ID, VolumeID: "42", HasRead: true}

		m.users.EXPECT().GetByUsername(gomock.Any(), "u1").Return(owner, nil).Times(2)
		m.books.EXPECT().UpdateReadStatus(gomock.Any(), owner.ID, "42", true).Return(book, nil).Times(2)
		m.events.EXPECT().Publish(gomock.Any(), models.EventSavedBookStatusChange, "u1", "42").Times(2)

		for i := 0; i < 2; i++ {
			got, err := svc.SetReadStatus(context.Background(), "u1", "42", true)
			require.NoError(t, err)
			assert.True(t, got.HasRead)
		}
	})

	t.Run("not saved", func(t *testing.T) {
		svc, m := newShelfService(t)
		m.users.EXPECT().GetByUsername(gomock.Any(), "u1").Return(owner, nil)
		m.books.EXPECT().UpdateReadStatus(gomock.Any(), owner.ID, "42", false).Return(nil, nil)

		_, err := svc.SetReadStatus(context.Background(), "u1", "42", false)
		assert.True(t, domainerrors.Is(err, domainerrors.ErrNotFound))
	})
}

func TestShelfService_ListByStatus(t *testing.T) {
	t.Run("empty shelf is not an error", func(t *testing.T) {
		svc, m := newShelfService(t)
		m.users.EXPECT().GetByUsername(gomock.Any(), "u1").Return(owner, nil)
		m.books.EXPECT().ListByStatus(gomock.Any(), owner.ID, false).Return(nil, nil)

		got, err := svc.ListByStatus(context.Background(), "u1", false)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("owner missing differs from empty", func(t *testing.T) {
		svc, m := newShelfService(t)
		m.users.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

		got, err := svc.ListByStatus(context.Background(), "ghost", true)
		assert.Nil(t, got)
		assert.True(t, domainerrors.Is(err, domainerrors.ErrNotFound))
	})

	t.Run("keeps storage order", func(t *testing.T) {
		svc, m := newShelfService(t)
		books := []models.SavedBook{{ID: 1, VolumeID: "b"}, {ID: 2, VolumeID: "a"}}
		m.users.EXPECT().GetByUsername(gomock.Any(), "u1").Return(owner, nil)
		m.books.EXPECT().ListByStatus(gomock.Any(), owner.ID, true).Return(books, nil)

		got, err := svc.ListByStatus(context.Background(), "u1", true)
		require.NoError(t, err)
		assert.Equal(t, books, got)
	})
}

func TestShelfService_GetAggregate(t *testing.T) {
	book := &models.SavedBook{ID: 1, UserID: owner.ID, VolumeID: "42", Title: "Airframe"}

	t.Run("absent review and rating are null", func(t *testing.T) {
		svc, m := newShelfService(t)
		m.users.EXPECT().GetByUsername(gomock.Any(), "u1").Return(owner, nil)
		m.books.EXPECT().Get(gomock.Any(), owner.ID, "42").Return(book, nil)
		m.reviews.EXPECT().GetByVolume(gomock.Any(), owner.ID, "42").Return(nil, nil)
		m.ratings.EXPECT().GetByVolume(gomock.Any(), owner.ID, "42").Return(nil, nil)

		got, err := svc.GetAggregate(context.Background(), "u1", "42")
		require.NoError(t, err)
		assert.Nil(t, got.Review)
		assert.Nil(t, got.Rating)

		data, err := json.Marshal(got)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"review":null`)
		assert.Contains(t, string(data), `"rating":null`)
		assert.Contains(t, string(data), `"volume_id":"42"`)
	})

	t.Run("merged", func(t *testing.T) {
		svc, m := newShelfService(t)
		review := &models.Review{ID: 3, UserID: owner.ID, VolumeID: "42", Comment: "c1"}
		rating := &models.Rating{ID: 4, UserID: owner.ID, VolumeID: "42", Rating: 5}
		m.users.EXPECT().GetByUsername(gomock.Any(), "u1").Return(owner, nil)
		m.books.EXPECT().Get(gomock.Any(), owner.ID, "42").Return(book, nil)
		m.reviews.EXPECT().GetByVolume(gomock.Any(), owner.ID, "42").Return(review, nil)
		m.ratings.EXPECT().GetByVolume(gomock.Any(), owner.ID, "42").Return(rating, nil)

		got, err := svc.GetAggregate(context.Background(), "u1", "42")
		require.NoError(t, err)
		assert.Equal(t, *book, got.SavedBook)
		assert.Equal(t, review, got.Review)
		assert.Equal(t, rating, got.Rating)
	})

	t.Run("saved book missing", func(t *testing.T) {
		svc, m := newShelfService(t)
		m.users.EXPECT().GetByUsername(gomock.Any(), "u1").Return(owner, nil)
		m.books.EXPECT().Get(gomock.Any(), owner.ID, "42").Return(nil, nil)

		_, err := svc.GetAggregate(context.Background(), "u1", "42")
		assert.True(t, domainerrors.Is(err, domainerrors.ErrNotFound))
	})
}

func TestShelfService_DeleteSavedBook(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc, m := newShelfService(t)
		m.users.EXPECT().GetByUsername(gomock.Any(), "u1").Return(owner, nil)
		m.books.EXPECT().Delete(gomock.Any(), owner.ID, "42").Return(true, nil)
		m.events.EXPECT().Publish(gomock.Any(), models.EventSavedBookDeleted, "u1", "42")

		assert.NoError(t, svc.DeleteSavedBook(context.Background(), "u1", "42"))
	})

	t.Run("no such row", func(t *testing.T) {
		svc, m := newShelfService(t)
		m.users.EXPECT().GetByUsername(gomock.Any(), "u1").Return(owner, nil)
		m.books.EXPECT().Delete(gomock.Any(), owner.ID, "42").Return(false, nil)

		err := svc.DeleteSavedBook(context.Background(), "u1", "42")
		assert.True(t, domainerrors.Is(err, domainerrors.ErrNotFound))
	})
}
