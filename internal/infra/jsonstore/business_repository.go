package jsonstore

import (
	"context"

	"homeplate/internal/domain/entity"
	"homeplate/internal/domain/repository"
)

// businessRepository implements repository.BusinessRepository on the shared
// store. The collection is append-only; "current" is the last element.
type businessRepository struct {
	store *Store
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(store *Store) repository.BusinessRepository {
	return &businessRepository{store: store}
}

func (repo *businessRepository) Current(_ context.Context) (*entity.BusinessInfo, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	snapshots := repo.store.data.BusinessInfo
	if len(snapshots) == 0 {
		return nil, repository.ErrBusinessProfileNotFound
	}
	current := snapshots[len(snapshots)-1]

	return &current, nil
}

func (repo *businessRepository) Append(_ context.Context, info *entity.BusinessInfo) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	info.ID = nextID(repo.store.data.BusinessInfo, func(b *entity.BusinessInfo) int64 { return b.ID })
	if info.CreatedAt.IsZero() {
		info.CreatedAt = repo.store.stamp()
	}
	repo.store.data.BusinessInfo = append(repo.store.data.BusinessInfo, *info)

	return repo.store.flushLocked()
}
