package repository

import (
	"github.com/location-moderation/internal/domain"
)

// PendingRepository - единственное разделяемое изменяемое состояние сервиса.
// Все операции атомарны относительно друг друга; Remove возвращает удалённую
// запись (take-семантика), что делает двойное одобрение невозможным по
// построению.
type PendingRepository interface {
	// Put сохраняет заявку; ошибка, если id уже занят
	Put(id string, req domain.PendingRequest) error

	// Get возвращает копию заявки
	Get(id string) (domain.PendingRequest, bool)

	// Remove атомарно удаляет и возвращает заявку; идемпотентен -
	// отсутствующий id даёт ok=false без изменения состояния
	Remove(id string) (domain.PendingRequest, bool)

	// ListByChat - снимок заявок одного чата в порядке добавления
	ListByChat(chatID int64) []domain.PendingRequest

	// Len - количество ожидающих заявок
	Len() int
}
