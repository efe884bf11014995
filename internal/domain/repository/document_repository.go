package repository

import "context"

// RemoteFile - содержимое удалённого документа вместе с revision-токеном
// (blob SHA), который служит precondition'ом при записи
type RemoteFile struct {
	Content []byte
	SHA     string
}

// DocumentRepository - contents API удалённого репозитория. Документ читается
// и пишется целиком; PutFile с устаревшим SHA обязан вернуть
// errors.ErrDocumentConflict.
type DocumentRepository interface {
	GetFile(ctx context.Context) (*RemoteFile, error)
	PutFile(ctx context.Context, message string, content []byte, sha string) error
}
