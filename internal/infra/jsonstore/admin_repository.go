package jsonstore

import (
	"context"

	"homeplate/internal/domain/entity"
	"homeplate/internal/domain/repository"
)

// adminRepository implements repository.AdminRepository on the shared store.
type adminRepository struct {
	store *Store
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(store *Store) repository.AdminRepository {
	return &adminRepository{store: store}
}

func (repo *adminRepository) FindByUsername(_ context.Context, username string) (*entity.Admin, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	admin, ok := first(repo.store.data.Admins, func(a *entity.Admin) bool {
		return a.Username == username
	})
	if !ok {
		return nil, repository.ErrAdminNotFound
	}

	return &admin, nil
}

func (repo *adminRepository) Create(_ context.Context, admin *entity.Admin) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	admin.ID = nextID(repo.store.data.Admins, func(a *entity.Admin) int64 { return a.ID })
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = repo.store.stamp()
	}
	repo.store.data.Admins = append(repo.store.data.Admins, *admin)

	return repo.store.flushLocked()
}
