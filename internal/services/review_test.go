package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	domainerrors "github.com/sbilibin2017/gw-bookmarker/internal/errors"
	"github.com/sbilibin2017/gw-bookmarker/internal/models"
	"github.com/sbilibin2017/gw-bookmarker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewMocks struct {
	users   *services.MockUserReader
	books   *services.MockSavedBookFinder
	reviews *services.MockReviewStore
	events  *services.MockEventSender
}

func newReviewService(t *testing.T) (*services.ReviewService, reviewMocks) {
	ctrl := gomock.NewController(t)
	m := reviewMocks{
		users:   services.NewMockUserReader(ctrl),
		books:   services.NewMockSavedBookFinder(ctrl),
		reviews: services.NewMockReviewStore(ctrl),
		events:  services.NewMockEventSender(ctrl),
	}
	return services.NewReviewService(m.users, m.books, m.reviews, m.events), m
}

func TestReviewService_AddReview(t *testing.T) {
	book := &models.SavedBook{ID: 1, UserID: owner.ID, VolumeID: "42"}
	review := &models.Review{ID: 9, UserID: owner.ID, VolumeID: "42", Comment: "c1"}

	tests := []struct {
		name     string
		comment  string
		setup    func(m reviewMocks)
		wantCode domainerrors.Code
	}{
		{
			name:    "added",
			comment: "c1",
			setup: func(m reviewMocks) {
				m.users.EXPECT().GetByUsername(gomock.Any(), "u1").Return(owner, nil)
				m.books.EXPECT().Get(gomock.Any(), owner.ID, "42").Return(book, nil)
				m.reviews.EXPECT().GetByVolume(gomock.Any(), owner.ID, "42").Return(nil, nil)
				m.reviews.EXPECT().Save(gomock.Any(), owner.ID, "42", "c1").Return(review, nil)
				m.events.EXPECT().Publish(gomock.Any(), models.EventReviewAdded, "u1", "42")
			},
		},
		{
			name:     "blank comment",
			comment:  "   ",
			setup:    func(m reviewMocks) {},
			wantCode: domainerrors.CodeValidation,
		},
		{
			name:    "book not saved",
			comment: "c1",
			setup: func(m reviewMocks) {
				m.users.EXPECT().GetByUsername(gomock.Any(), "u1").Return(owner, nil)
				m.books.EXPECT().Get(gomock.Any(), owner.ID, "42").Return(nil, nil)
			},
			wantCode: domainerrors.CodeNotFound,
		},
		{
			name:    "second review",
			comment: "c2",
			setup: func(m reviewMocks) {
				m.users.EXPECT().GetByUsername(gomock.Any(), "u1").Return(owner, nil)
				m.books.EXPECT().Get(gomock.Any(), owner.ID, "42").Return(book, nil)
				m.reviews.EXPECT().GetByVolume(gomock.Any(), owner.ID, "42").Return(review, nil)
			},
			wantCode: domainerrors.CodeConflict,
		},
		{
			name:    "race lost at insert",
			comment: "c2",
			setup: func(m reviewMocks) {
				m.users.EXPECT().GetByUsername(gomock.Any(), "u1").Return(owner, nil)
				m.books.EXPECT().Get(gomock.Any(), owner.ID, "42").Return(book, nil)
				m.reviews.EXPECT().GetByVolume(gomock.Any(), owner.ID, "42").Return(nil, nil)
				m.reviews.EXPECT().Save(gomock.Any(), owner.ID, "42", "c2").Return(nil, services.ErrOneReviewPerBook)
			},
			wantCode: domainerrors.CodeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newReviewService(t)
			tt.setup(m)

			got, err := svc.AddReview(context.Background(), "u1", "42", tt.comment)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, domainerrors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, review, got)
		})
	}
}

func TestReviewService_UpdateReview(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		svc, m := newReviewService(t)
		updated := &models.Review{ID: 9, UserID: owner.ID, VolumeID: "42", Comment: "better"}
		m.users.EXPECT().GetByUsername(gomock.Any(), "u1").Return(owner, nil)
		m.reviews.EXPECT().Update(gomock.Any(), owner.ID, int64(9), "better").Return(updated, nil)
		m.events.EXPECT().Publish(gomock.Any(), models.EventReviewUpdated, "u1", "42")

		got, err := svc.UpdateReview(context.Background(), "u1", 9, "better")
		require.NoError(t, err)
		assert.Equal(t, "better", got.Comment)
	})

	t.Run("someone else's review", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.users.EXPECT().GetByUsername(gomock.Any(), "u1").Return(owner, nil)
		m.reviews.EXPECT().Update(gomock.Any(), owner.ID, int64(10), "mine now").Return(nil, nil)

		_, err := svc.UpdateReview(context.Background(), "u1", 10, "mine now")
		assert.True(t, domainerrors.Is(err, domainerrors.ErrNotFound))
	})

	t.Run("empty comment", func(t *testing.T) {
		svc, _ := newReviewService(t)
		_, err := svc.UpdateReview(context.Background(), "u1", 9, "")
		assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))
	})
}

func TestReviewService_ListReviewsForVolume(t *testing.T) {
	svc, m := newReviewService(t)

	all := []models.VolumeReview{
		{Review: models.Review{ID: 1, VolumeID: "42", Comment: "first"}, Username: "u1"},
		{Review: models.Review{ID: 2, VolumeID: "42", Comment: "second"}, Username: "u2"},
	}
	m.reviews.EXPECT().ListByVolume(gomock.Any(), "42").Return(all, nil)
	m.reviews.EXPECT().ListByVolume(gomock.Any(), "43").Return(nil, nil)

	got, err := svc.ListReviewsForVolume(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, all, got)

	empty, err := svc.ListReviewsForVolume(context.Background(), "43")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestReviewService_DeleteReview(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc, m := newReviewService(t)
		deleted := &models.Review{ID: 9, UserID: owner.ID, VolumeID: "42"}
		m.users.EXPECT().GetByUsername(gomock.Any(), "u1").Return(owner, nil)
		m.reviews.EXPECT().Delete(gomock.Any(), owner.ID, int64(9)).Return(deleted, nil)
		m.events.EXPECT().Publish(gomock.Any(), models.EventReviewDeleted, "u1", "42")

		got, err := svc.DeleteReview(context.Background(), "u1", 9)
		require.NoError(t, err)
		assert.Equal(t, int64(9), got.ID)
	})

	t.Run("absent", func(t *testing.T) {
		svc, m := newReviewService(t)
		m.users.EXPECT().GetByUsername(gomock.Any(), "u1").Return(owner, nil)
		m.reviews.EXPECT().Delete(gomock.Any(), owner.ID, int64(9)).Return(nil, nil)

		_, err := svc.DeleteReview(context.Background(), "u1", 9)
		assert.True(t, domainerrors.Is(err, domainerrors.ErrNotFound))
	})
}
