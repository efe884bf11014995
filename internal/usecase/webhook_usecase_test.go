package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/location-moderation/internal/domain"
	"github.com/location-moderation/internal/domain/repository"
	"github.com/location-moderation/internal/pkg/errors"
	"github.com/location-moderation/internal/repository/memory"
	"github.com/location-moderation/internal/usecase"
	"github.com/location-moderation/internal/usecase/dto"
)

type webhookFixture struct {
	uc        *usecase.WebhookUseCase
	repo      repository.PendingRepository
	mockDoc   *MockDocumentRepository
	messenger *MockMessengerRepository
}

func newWebhookFixture(t *testing.T) *webhookFixture {
	t.Helper()

	logger := zap.NewNop()
	repo := memory.NewPendingRepository()
	mockDoc := &MockDocumentRepository{}
	messenger := &MockMessengerRepository{}

	mergeUC := usecase.NewMergeUseCase(mockDoc, logger)
	moderationUC := usecase.NewModerationUseCase(repo, mergeUC, messenger, logger)

	return &webhookFixture{
		uc:        usecase.NewWebhookUseCase(moderationUC, messenger, logger),
		repo:      repo,
		mockDoc:   mockDoc,
		messenger: messenger,
	}
}

func update(chatID int64, text string) dto.Update {
	return dto.Update{
		Message: &dto.Message{
			Text: text,
			Chat: dto.Chat{ID: chatID},
		},
	}
}

func callbackUpdate(callbackID, data string, chatID int64, messageID int) dto.Update {
	return dto.Update{
		CallbackQuery: &dto.CallbackQuery{
			ID:   callbackID,
			Data: data,
			Message: &dto.Message{
				MessageID: messageID,
				Chat:      dto.Chat{ID: chatID},
			},
		},
	}
}

func emptyUpdate() dto.Update {
	return dto.Update{}
}

func conflictError() error {
	return errors.ErrDocumentConflict
}

func TestWebhookUseCase_Commands(t *testing.T) {
	ctx := context.Background()

	sendTextUpdate := func(f *webhookFixture, chatID int64, text string) {
		f.uc.HandleUpdate(ctx, update(chatID, text))
	}

	t.Run("start lists available commands", func(t *testing.T) {
		f := newWebhookFixture(t)
		f.messenger.On("SendMessage", ctx, int64(100), mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "/lista") && strings.Contains(text, "/aprobar")
		}), (*domain.InlineKeyboard)(nil)).Return(nil)

		sendTextUpdate(f, 100, "/start")
		f.messenger.AssertExpectations(t)
	})

	t.Run("paises lists supported countries", func(t *testing.T) {
		f := newWebhookFixture(t)
		f.messenger.On("SendMessage", ctx, int64(100), mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "Honduras") && strings.Contains(text, "Panamá")
		}), (*domain.InlineKeyboard)(nil)).Return(nil)

		sendTextUpdate(f, 100, "/paises")
		f.messenger.AssertExpectations(t)
	})

	t.Run("lista shows only the requesting chat", func(t *testing.T) {
		f := newWebhookFixture(t)
		require.NoError(t, f.repo.Put("mine", pendingHN("mine")))

		other := pendingHN("other")
		other.ChatID = 999
		require.NoError(t, f.repo.Put("other", other))

		f.messenger.On("SendMessage", ctx, int64(100), mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "`mine`") && !strings.Contains(text, "`other`")
		}), (*domain.InlineKeyboard)(nil)).Return(nil)

		sendTextUpdate(f, 100, "/lista")
		f.messenger.AssertExpectations(t)
	})

	t.Run("aprobar without id prints usage", func(t *testing.T) {
		f := newWebhookFixture(t)
		f.messenger.On("SendMessage", ctx, int64(100), "Uso: /aprobar <id>", (*domain.InlineKeyboard)(nil)).Return(nil)

		sendTextUpdate(f, 100, "/aprobar")
		f.messenger.AssertExpectations(t)
	})

	t.Run("aprobar resolves by id", func(t *testing.T) {
		f := newWebhookFixture(t)
		require.NoError(t, f.repo.Put("abc12345", pendingHN("abc12345")))

		f.mockDoc.On("GetFile", ctx).Return(&repository.RemoteFile{Content: []byte("{}"), SHA: "sha-1"}, nil)
		f.mockDoc.On("PutFile", ctx, mock.AnythingOfType("string"), mock.Anything, "sha-1").Return(nil)
		f.messenger.On("SendMessage", ctx, int64(100), mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "APROBADO")
		}), (*domain.InlineKeyboard)(nil)).Return(nil)

		sendTextUpdate(f, 100, "/aprobar abc12345")

		assert.Equal(t, 0, f.repo.Len())
		f.messenger.AssertExpectations(t)
	})

	t.Run("rechazar with unknown id reports not found", func(t *testing.T) {
		f := newWebhookFixture(t)
		f.messenger.On("SendMessage", ctx, int64(100), mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "no encontrada")
		}), (*domain.InlineKeyboard)(nil)).Return(nil)

		sendTextUpdate(f, 100, "/rechazar missing")
		f.messenger.AssertExpectations(t)
	})

	t.Run("unknown command ignored silently", func(t *testing.T) {
		f := newWebhookFixture(t)

		sendTextUpdate(f, 100, "/unknown")
		f.messenger.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestWebhookUseCase_Callbacks(t *testing.T) {
	ctx := context.Background()

	t.Run("approve callback edits the notification", func(t *testing.T) {
		f := newWebhookFixture(t)
		require.NoError(t, f.repo.Put("abc12345", pendingHN("abc12345")))

		f.mockDoc.On("GetFile", ctx).Return(&repository.RemoteFile{Content: []byte("{}"), SHA: "sha-1"}, nil)
		f.mockDoc.On("PutFile", ctx, mock.AnythingOfType("string"), mock.Anything, "sha-1").Return(nil)
		f.messenger.On("AnswerCallbackQuery", ctx, "cb-1", "", false).Return(nil)
		f.messenger.On("EditMessageText", ctx, int64(100), 42, mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "APROBADO")
		})).Return(nil)

		f.uc.HandleUpdate(ctx, callbackUpdate("cb-1", "approve_abc12345", 100, 42))

		assert.Equal(t, 0, f.repo.Len())
		f.messenger.AssertExpectations(t)
	})

	t.Run("second approve callback reports already processed", func(t *testing.T) {
		f := newWebhookFixture(t)

		f.messenger.On("AnswerCallbackQuery", ctx, "cb-2", "", false).Return(nil)
		f.messenger.On("EditMessageText", ctx, int64(100), 42, mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "no encontrada")
		})).Return(nil)

		f.uc.HandleUpdate(ctx, callbackUpdate("cb-2", "approve_abc12345", 100, 42))
		f.messenger.AssertExpectations(t)
	})

	t.Run("reject callback never touches the document", func(t *testing.T) {
		f := newWebhookFixture(t)
		require.NoError(t, f.repo.Put("abc12345", pendingHN("abc12345")))

		f.messenger.On("AnswerCallbackQuery", ctx, "cb-3", "", false).Return(nil)
		f.messenger.On("EditMessageText", ctx, int64(100), 42, mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "RECHAZADO")
		})).Return(nil)

		f.uc.HandleUpdate(ctx, callbackUpdate("cb-3", "reject_abc12345", 100, 42))

		f.mockDoc.AssertNotCalled(t, "GetFile", mock.Anything)
		f.mockDoc.AssertNotCalled(t, "PutFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("merge conflict keeps pending and reports failure", func(t *testing.T) {
		f := newWebhookFixture(t)
		require.NoError(t, f.repo.Put("abc12345", pendingHN("abc12345")))

		f.mockDoc.On("GetFile", ctx).Return(&repository.RemoteFile{Content: []byte("{}"), SHA: "stale"}, nil)
		f.mockDoc.On("PutFile", ctx, mock.AnythingOfType("string"), mock.Anything, "stale").Return(conflictError())
		f.messenger.On("AnswerCallbackQuery", ctx, "cb-4", "", false).Return(nil)
		f.messenger.On("EditMessageText", ctx, int64(100), 42, mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "sigue pendiente")
		})).Return(nil)

		f.uc.HandleUpdate(ctx, callbackUpdate("cb-4", "approve_abc12345", 100, 42))

		// Заявка доступна для повторного approve
		assert.Equal(t, 1, f.repo.Len())
	})

	t.Run("copy callback answers with alert", func(t *testing.T) {
		f := newWebhookFixture(t)
		require.NoError(t, f.repo.Put("abc12345", pendingHN("abc12345")))

		f.messenger.On("AnswerCallbackQuery", ctx, "cb-5", mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "14.1,-87.2")
		}), true).Return(nil)

		f.uc.HandleUpdate(ctx, callbackUpdate("cb-5", "copy_abc12345", 100, 42))

		// Копирование не решает заявку
		assert.Equal(t, 1, f.repo.Len())
		f.messenger.AssertNotCalled(t, "EditMessageText", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("copy of processed request alerts not found", func(t *testing.T) {
		f := newWebhookFixture(t)

		f.messenger.On("AnswerCallbackQuery", ctx, "cb-6", mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "no encontrada")
		}), true).Return(nil)

		f.uc.HandleUpdate(ctx, callbackUpdate("cb-6", "copy_abc12345", 100, 42))
		f.messenger.AssertExpectations(t)
	})

	t.Run("empty update ignored", func(t *testing.T) {
		f := newWebhookFixture(t)
		f.uc.HandleUpdate(ctx, emptyUpdate())
		f.messenger.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
