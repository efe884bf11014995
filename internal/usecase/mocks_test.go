package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/location-moderation/internal/domain"
	"github.com/location-moderation/internal/domain/repository"
)

// MockDocumentRepository is a mock of DocumentRepository
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) GetFile(ctx context.Context) (*repository.RemoteFile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RemoteFile), args.Error(1)
}

func (m *MockDocumentRepository) PutFile(ctx context.Context, message string, content []byte, sha string) error {
	args := m.Called(ctx, message, content, sha)
	return args.Error(0)
}

// MockMessengerRepository is a mock of MessengerRepository
type MockMessengerRepository struct {
	mock.Mock
}

func (m *MockMessengerRepository) SendMessage(ctx context.Context, chatID int64, text string, keyboard *domain.InlineKeyboard) error {
	args := m.Called(ctx, chatID, text, keyboard)
	return args.Error(0)
}

func (m *MockMessengerRepository) EditMessageText(ctx context.Context, chatID int64, messageID int, text string) error {
	args := m.Called(ctx, chatID, messageID, text)
	return args.Error(0)
}

func (m *MockMessengerRepository) AnswerCallbackQuery(ctx context.Context, callbackID, text string, showAlert bool) error {
	args := m.Called(ctx, callbackID, text, showAlert)
	return args.Error(0)
}
