package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-savelyev/pairstatus/internal/models"
)

func TestActivityService_GetActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	partnerID := uuid.New()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("merges own and partner history most recent first", func(t *testing.T) {
		users := NewMockActivityUserReader(ctrl)
		statuses := NewMockActivityStatusReader(ctrl)

		users.EXPECT().GetByID(gomock.Any(), userID).
			Return(&models.UserDB{ID: userID, PartnerID: &partnerID}, nil)
		statuses.EXPECT().ListByUserID(gomock.Any(), userID).Return([]models.StatusDB{
			{ID: uuid.New(), UserID: userID, Type: models.StatusBusy, CreatedAt: base.Add(2 * time.Hour), IsActive: true},
			{ID: uuid.New(), UserID: userID, Type: models.StatusFree, CreatedAt: base},
		}, nil)
		statuses.EXPECT().ListByUserID(gomock.Any(), partnerID).Return([]models.StatusDB{
			{ID: uuid.New(), UserID: partnerID, Type: models.StatusMeeting, CreatedAt: base.Add(3 * time.Hour), IsActive: true},
			{ID: uuid.New(), UserID: partnerID, Type: models.StatusSleeping, CreatedAt: base.Add(time.Hour)},
		}, nil)

		svc := NewActivityService(users, statuses)
		entries, err := svc.GetActivity(context.Background(), userID)
		require.NoError(t, err)
		require.Len(t, entries, 4)

		for i := 1; i < len(entries); i++ {
			assert.False(t, entries[i-1].CreatedAt.Before(entries[i].CreatedAt))
		}

		assert.Equal(t, models.StatusMeeting, entries[0].Type)
		assert.False(t, entries[0].IsOwnStatus)
		assert.Equal(t, models.StatusBusy, entries[1].Type)
		assert.True(t, entries[1].IsOwnStatus)
		assert.Equal(t, models.StatusFree, entries[3].Type)
		assert.True(t, entries[3].IsOwnStatus)
	})

	t.Run("unpaired user sees only own history", func(t *testing.T) {
		users := NewMockActivityUserReader(ctrl)
		statuses := NewMockActivityStatusReader(ctrl)

		users.EXPECT().GetByID(gomock.Any(), userID).Return(&models.UserDB{ID: userID}, nil)
		statuses.EXPECT().ListByUserID(gomock.Any(), userID).Return([]models.StatusDB{
			{ID: uuid.New(), UserID: userID, Type: models.StatusFree, CreatedAt: base, IsActive: true},
		}, nil)

		svc := NewActivityService(users, statuses)
		entries, err := svc.GetActivity(context.Background(), userID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.True(t, entries[0].IsOwnStatus)
	})

	t.Run("empty history yields empty slice", func(t *testing.T) {
		users := NewMockActivityUserReader(ctrl)
		statuses := NewMockActivityStatusReader(ctrl)

		users.EXPECT().GetByID(gomock.Any(), userID).Return(&models.UserDB{ID: userID}, nil)
		statuses.EXPECT().ListByUserID(gomock.Any(), userID).Return(nil, nil)

		svc := NewActivityService(users, statuses)
		entries, err := svc.GetActivity(context.Background(), userID)
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := NewMockActivityUserReader(ctrl)
		users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)

		svc := NewActivityService(users, NewMockActivityStatusReader(ctrl))
		entries, err := svc.GetActivity(context.Background(), userID)
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, entries)
	})

	t.Run("partner list error", func(t *testing.T) {
		users := NewMockActivityUserReader(ctrl)
		statuses := NewMockActivityStatusReader(ctrl)

		users.EXPECT().GetByID(gomock.Any(), userID).
			Return(&models.UserDB{ID: userID, PartnerID: &partnerID}, nil)
		statuses.EXPECT().ListByUserID(gomock.Any(), userID).Return(nil, nil)
		statuses.EXPECT().ListByUserID(gomock.Any(), partnerID).Return(nil, errors.New("db down"))

		svc := NewActivityService(users, statuses)
		_, err := svc.GetActivity(context.Background(), userID)
		assert.EqualError(t, err, "db down")
	})
}
