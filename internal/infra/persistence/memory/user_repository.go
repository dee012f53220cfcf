package memory

import (
	"context"
	"strings"

	"editais/internal/domain/entity"
	"editais/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	store *Store
	inTx  bool
}

// NewUserRepository creates a user repository backed by the store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) CreateUser(_ context.Context, user *entity.User) error {
	defer r.store.lock(r.inTx)()

	email := strings.ToLower(user.Email)
	if _, exists := r.store.usersByEmail[email]; exists {
		return repository.ErrDuplicateEmail
	}

	r.store.users[user.ID] = cloneUser(user)
	r.store.usersByEmail[email] = user.ID

	return nil
}

func (r *userRepository) FindUserByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	defer r.store.lock(r.inTx)()

	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (r *userRepository) FindUserByEmail(_ context.Context, email string) (*entity.User, error) {
	defer r.store.lock(r.inTx)()

	id, ok := r.store.usersByEmail[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(r.store.users[id]), nil
}
