package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/location-moderation/internal/domain"
	"github.com/location-moderation/internal/domain/repository"
	"github.com/location-moderation/internal/pkg/errors"
	"github.com/location-moderation/internal/usecase"
)

func pendingHN(id string) domain.PendingRequest {
	return domain.PendingRequest{
		ID: id,
		Submission: domain.Submission{
			Name:         "Casa Verde",
			Coords:       "14.1,-87.2",
			Country:      domain.CountryHN,
			Departamento: "Cortés",
			Municipio:    "San Pedro Sula",
		},
		ChatID:    100,
		Country:   domain.CountryHN,
		CreatedAt: time.Now(),
	}
}

func TestMergeUseCase_Commit(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("inserts record into empty document", func(t *testing.T) {
		mockDoc := &MockDocumentRepository{}
		uc := usecase.NewMergeUseCase(mockDoc, logger)

		mockDoc.On("GetFile", ctx).Return(&repository.RemoteFile{
			Content: []byte(""),
			SHA:     "sha-1",
		}, nil)

		var written []byte
		mockDoc.On("PutFile", ctx, mock.AnythingOfType("string"), mock.MatchedBy(func(content []byte) bool {
			written = content
			return true
		}), "sha-1").Return(nil)

		key, err := uc.Commit(ctx, pendingHN("abc12345"))
		require.NoError(t, err)
		assert.Equal(t, "casa_verde", key)

		var doc domain.LocationsDocument
		require.NoError(t, json.Unmarshal(written, &doc))

		// Партиции всех стран присутствуют даже в свежем документе
		assert.Len(t, doc, 4)

		rec, ok := doc[domain.CountryHN]["casa_verde"]
		require.True(t, ok)
		assert.Equal(t, "Casa Verde", rec.Name)
		assert.Equal(t, 14.1, rec.Lat)
		assert.Equal(t, -87.2, rec.Lon)
		assert.True(t, rec.Approved)
		assert.Equal(t, "user_submission", rec.Source)
		assert.Equal(t, "Cortés", rec.Departamento)

		mockDoc.AssertExpectations(t)
	})

	t.Run("suffixes key when slug is taken", func(t *testing.T) {
		mockDoc := &MockDocumentRepository{}
		uc := usecase.NewMergeUseCase(mockDoc, logger)

		existing := domain.LocationsDocument{
			domain.CountryHN: {
				"casa_verde": {Name: "Casa Verde"},
			},
		}
		content, err := json.Marshal(existing)
		require.NoError(t, err)

		mockDoc.On("GetFile", ctx).Return(&repository.RemoteFile{Content: content, SHA: "sha-2"}, nil)

		var written []byte
		mockDoc.On("PutFile", ctx, mock.AnythingOfType("string"), mock.MatchedBy(func(b []byte) bool {
			written = b
			return true
		}), "sha-2").Return(nil)

		key, err := uc.Commit(ctx, pendingHN("abc12345"))
		require.NoError(t, err)
		assert.Equal(t, "casa_verde_1", key)

		var doc domain.LocationsDocument
		require.NoError(t, json.Unmarshal(written, &doc))

		// Существующая запись не тронута
		assert.Equal(t, "Casa Verde", doc[domain.CountryHN]["casa_verde"].Name)
		assert.Contains(t, doc[domain.CountryHN], "casa_verde_1")
	})

	t.Run("unparseable coordinates stored as zeros", func(t *testing.T) {
		mockDoc := &MockDocumentRepository{}
		uc := usecase.NewMergeUseCase(mockDoc, logger)

		req := pendingHN("abc12345")
		req.Submission.Coords = "not-coords"

		mockDoc.On("GetFile", ctx).Return(&repository.RemoteFile{Content: []byte("{}"), SHA: "sha-3"}, nil)

		var written []byte
		mockDoc.On("PutFile", ctx, mock.AnythingOfType("string"), mock.MatchedBy(func(b []byte) bool {
			written = b
			return true
		}), "sha-3").Return(nil)

		_, err := uc.Commit(ctx, req)
		require.NoError(t, err)

		var doc domain.LocationsDocument
		require.NoError(t, json.Unmarshal(written, &doc))
		rec := doc[domain.CountryHN]["casa_verde"]
		assert.Equal(t, 0.0, rec.Lat)
		assert.Equal(t, 0.0, rec.Lon)
	})

	t.Run("fetch failure propagated", func(t *testing.T) {
		mockDoc := &MockDocumentRepository{}
		uc := usecase.NewMergeUseCase(mockDoc, logger)

		mockDoc.On("GetFile", ctx).Return(nil, errors.ErrDocumentFetch)

		_, err := uc.Commit(ctx, pendingHN("abc12345"))
		assert.True(t, errors.Is(err, errors.ErrDocumentFetch))
		mockDoc.AssertNotCalled(t, "PutFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("corrupt document reported as fetch error", func(t *testing.T) {
		mockDoc := &MockDocumentRepository{}
		uc := usecase.NewMergeUseCase(mockDoc, logger)

		mockDoc.On("GetFile", ctx).Return(&repository.RemoteFile{Content: []byte("{broken"), SHA: "sha-4"}, nil)

		_, err := uc.Commit(ctx, pendingHN("abc12345"))
		assert.True(t, errors.Is(err, errors.ErrDocumentFetch))
	})

	t.Run("stale sha conflict propagated without retry", func(t *testing.T) {
		mockDoc := &MockDocumentRepository{}
		uc := usecase.NewMergeUseCase(mockDoc, logger)

		mockDoc.On("GetFile", ctx).Return(&repository.RemoteFile{Content: []byte("{}"), SHA: "stale"}, nil)
		mockDoc.On("PutFile", ctx, mock.AnythingOfType("string"), mock.Anything, "stale").Return(errors.ErrDocumentConflict)

		_, err := uc.Commit(ctx, pendingHN("abc12345"))
		assert.True(t, errors.Is(err, errors.ErrDocumentConflict))

		// Ровно одно чтение и одна запись
		mockDoc.AssertNumberOfCalls(t, "GetFile", 1)
		mockDoc.AssertNumberOfCalls(t, "PutFile", 1)
	})

	t.Run("commit message names country and location", func(t *testing.T) {
		mockDoc := &MockDocumentRepository{}
		uc := usecase.NewMergeUseCase(mockDoc, logger)

		mockDoc.On("GetFile", ctx).Return(&repository.RemoteFile{Content: []byte("{}"), SHA: "sha-5"}, nil)
		mockDoc.On("PutFile", ctx, "📍 Agregar en Honduras: Casa Verde", mock.Anything, "sha-5").Return(nil)

		_, err := uc.Commit(ctx, pendingHN("abc12345"))
		require.NoError(t, err)
		mockDoc.AssertExpectations(t)
	})
}
