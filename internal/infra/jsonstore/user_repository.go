package jsonstore

import (
	"context"

	"homeplate/internal/domain/entity"
	"homeplate/internal/domain/repository"
)

// userRepository implements repository.UserRepository on the shared store.
// Users carry no surrogate id: the mobile number is the key.
type userRepository struct {
	store *Store
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (repo *userRepository) FindByMobile(_ context.Context, mobile string) (*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	user, ok := first(repo.store.data.Users, func(u *entity.User) bool {
		return u.MobileNumber == mobile
	})
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (repo *userRepository) FindAllActive(_ context.Context) ([]*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return filter(repo.store.data.Users, func(u *entity.User) bool {
		return u.Active()
	}), nil
}

func (repo *userRepository) Count(_ context.Context) (int, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return len(repo.store.data.Users), nil
}

func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if user.CreatedAt.IsZero() {
		user.CreatedAt = repo.store.stamp()
	}
	repo.store.data.Users = append(repo.store.data.Users, *user)

	return repo.store.flushLocked()
}

func (repo *userRepository) Update(_ context.Context, mobile string, upd repository.UserUpdate) (*entity.User, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	for i := range repo.store.data.Users {
		user := &repo.store.data.Users[i]
		if user.MobileNumber != mobile {
			continue
		}

		if upd.Name != nil {
			user.Name = *upd.Name
		}
		if upd.AltMobileNumber != nil {
			user.AltMobileNumber = *upd.AltMobileNumber
		}
		if upd.Address != nil {
			user.Address = *upd.Address
		}
		if upd.Status != nil {
			user.Status = *upd.Status
		}

		if err := repo.store.flushLocked(); err != nil {
			return nil, err
		}
		updated := *user

		return &updated, nil
	}

	return nil, repository.ErrUserNotFound
}

func (repo *userRepository) Delete(_ context.Context, mobile string) (bool, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	kept, removed := removeAll(repo.store.data.Users, func(u *entity.User) bool {
		return u.MobileNumber == mobile
	})
	if !removed {
		return false, nil
	}
	repo.store.data.Users = kept

	return true, repo.store.flushLocked()
}
