package memory

import (
	"fmt"
	"sync"

	"github.com/location-moderation/internal/domain"
	"github.com/location-moderation/internal/domain/repository"
)

// pendingRepository - mutex-защищённая map заявок. Блокировка никогда не
// удерживается во время сетевых вызовов: вызывающие копируют запись наружу.
type pendingRepository struct {
	mu      sync.Mutex
	entries map[string]domain.PendingRequest
	order   []string
}

// NewPendingRepository - создание in-memory хранилища заявок
func NewPendingRepository() repository.PendingRepository {
	return &pendingRepository{
		entries: make(map[string]domain.PendingRequest),
	}
}

func (r *pendingRepository) Put(id string, req domain.PendingRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; ok {
		return fmt.Errorf("pending request %q already exists", id)
	}

	r.entries[id] = req
	r.order = append(r.order, id)

	return nil
}

func (r *pendingRepository) Get(id string) (domain.PendingRequest, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.entries[id]
	return req, ok
}

func (r *pendingRepository) Remove(id string) (domain.PendingRequest, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.entries[id]
	if !ok {
		return domain.PendingRequest{}, false
	}

	delete(r.entries, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return req, true
}

func (r *pendingRepository) ListByChat(chatID int64) []domain.PendingRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []domain.PendingRequest
	for _, id := range r.order {
		if req, ok := r.entries[id]; ok && req.ChatID == chatID {
			result = append(result, req)
		}
	}

	return result
}

func (r *pendingRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}
