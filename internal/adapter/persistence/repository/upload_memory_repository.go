package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"revolux/internal/domain/entities"
	"revolux/internal/usecase/interfaces"
)

// UploadMemoryRepository keeps uploads in process memory. It backs
// STORAGE_DRIVER=memory, where orders and history live only in the
// in-memory store and ledger.
type UploadMemoryRepository struct {
	mu      sync.RWMutex
	uploads map[string]entities.Upload
}

var _ interfaces.IUploadRepository = (*UploadMemoryRepository)(nil)

func NewUploadMemoryRepository() *UploadMemoryRepository {
	return &UploadMemoryRepository{uploads: map[string]entities.Upload{}}
}

func (r *UploadMemoryRepository) Create(_ context.Context, u entities.Upload) (entities.Upload, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.uploads[u.ID]; ok {
		return entities.Upload{}, fmt.Errorf("upload %s already exists", u.ID)
	}
	r.uploads[u.ID] = u
	return u, nil
}

func (r *UploadMemoryRepository) Save(_ context.Context, u entities.Upload) (entities.Upload, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uploads[u.ID] = u
	return u, nil
}

func (r *UploadMemoryRepository) GetByID(_ context.Context, id string) (entities.Upload, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.uploads[id], nil
}

func (r *UploadMemoryRepository) ListByOwner(_ context.Context, ownerEmail string) ([]entities.Upload, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Upload, 0)
	for _, u := range r.uploads {
		if u.OwnerEmail == ownerEmail {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
