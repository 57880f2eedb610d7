package link_crud_usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bm/domain"
	"bm/mocks"
	"bm/validation"
)

func TestLinkCrudUsecase_CreateLink(t *testing.T) {
	userID := uuid.New()

	t.Run("creates and populates a new link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := mocks.NewMockLinkCrudPort(ctrl)
		usecase := NewLinkCrudUsecase(mockGateway)

		fresh := &domain.Link{ID: uuid.New(), UserID: &userID, URL: "https://example.com/post"}
		mockGateway.EXPECT().GetOrCreateLink(gomock.Any(), userID, "https://example.com/post").Return(fresh, true, nil)
		mockGateway.EXPECT().UpdateLink(gomock.Any(), fresh).Return(nil)
		mockGateway.EXPECT().SetLinkTags(gomock.Any(), fresh.ID, []string{"golang", "til"}).Return(nil)

		link, created, err := usecase.CreateLink(context.Background(), userID, "https://example.com/post", "A post", "notes", []string{"golang", "til"})

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "A post", link.Title)
		assert.Equal(t, []string{"golang", "til"}, link.Tags)
	})

	t.Run("existing url returns the old link untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := mocks.NewMockLinkCrudPort(ctrl)
		usecase := NewLinkCrudUsecase(mockGateway)

		existing := &domain.Link{ID: uuid.New(), UserID: &userID, URL: "https://example.com/post", Title: "Kept"}
		mockGateway.EXPECT().GetOrCreateLink(gomock.Any(), userID, "https://example.com/post").Return(existing, false, nil)

		link, created, err := usecase.CreateLink(context.Background(), userID, "https://example.com/post", "New title", "", nil)

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "Kept", link.Title)
	})

	t.Run("invalid url never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := mocks.NewMockLinkCrudPort(ctrl)
		usecase := NewLinkCrudUsecase(mockGateway)

		_, _, err := usecase.CreateLink(context.Background(), userID, "not a url", "", "", nil)

		require.Error(t, err)
		_, ok := validation.AsValidationError(err)
		assert.True(t, ok)
	})
}

func TestLinkCrudUsecase_UpdateLink(t *testing.T) {
	userID := uuid.New()
	linkID := uuid.New()

	t.Run("updates fields and tags", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := mocks.NewMockLinkCrudPort(ctrl)
		usecase := NewLinkCrudUsecase(mockGateway)

		stored := &domain.Link{ID: linkID, UserID: &userID, URL: "https://example.com/old", Title: "Old"}
		mockGateway.EXPECT().GetLinkByID(gomock.Any(), userID, linkID).Return(stored, nil)
		mockGateway.EXPECT().UpdateLink(gomock.Any(), stored).Return(nil)
		mockGateway.EXPECT().SetLinkTags(gomock.Any(), linkID, []string{"reading"}).Return(nil)

		link, err := usecase.UpdateLink(context.Background(), userID, linkID, "https://example.com/new", "New", "note", []string{"reading"})

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/new", link.URL)
		assert.Equal(t, "New", link.Title)
	})

	t.Run("foreign link is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := mocks.NewMockLinkCrudPort(ctrl)
		usecase := NewLinkCrudUsecase(mockGateway)

		mockGateway.EXPECT().GetLinkByID(gomock.Any(), userID, linkID).Return(nil, domain.ErrLinkNotFound)

		_, err := usecase.UpdateLink(context.Background(), userID, linkID, "https://example.com/new", "", "", nil)

		assert.ErrorIs(t, err, domain.ErrLinkNotFound)
	})
}

func TestLinkCrudUsecase_DeleteLink(t *testing.T) {
	userID := uuid.New()
	linkID := uuid.New()

	t.Run("deletes an owned link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := mocks.NewMockLinkCrudPort(ctrl)
		usecase := NewLinkCrudUsecase(mockGateway)

		mockGateway.EXPECT().GetLinkByID(gomock.Any(), userID, linkID).Return(&domain.Link{ID: linkID}, nil)
		mockGateway.EXPECT().DeleteLink(gomock.Any(), userID, linkID).Return(nil)

		assert.NoError(t, usecase.DeleteLink(context.Background(), userID, linkID))
	})

	t.Run("missing link is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockGateway := mocks.NewMockLinkCrudPort(ctrl)
		usecase := NewLinkCrudUsecase(mockGateway)

		mockGateway.EXPECT().GetLinkByID(gomock.Any(), userID, linkID).Return(nil, domain.ErrLinkNotFound)

		err := usecase.DeleteLink(context.Background(), userID, linkID)

		assert.ErrorIs(t, err, domain.ErrLinkNotFound)
	})
}
