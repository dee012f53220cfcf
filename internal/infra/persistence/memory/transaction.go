package memory

import (
	"context"

	"editais/internal/domain/repository"
)

// transactionManager serializes transactional work by holding the store
// mutex for the whole callback. Repositories handed to the callback are
// marked as transaction-bound so they skip re-locking.
type transactionManager struct {
	store *Store
}

// NewTransactionManager creates a transaction manager for the store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

func (m *transactionManager) Execute(_ context.Context, fn func(factory repository.RepositoryFactory) error) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	return fn(&repositoryFactory{store: m.store})
}

type repositoryFactory struct {
	store *Store
}

func (f *repositoryFactory) NewTenderRepository() repository.TenderRepository {
	return &tenderRepository{store: f.store, inTx: true}
}

func (f *repositoryFactory) NewFilterRepository() repository.FilterRepository {
	return &filterRepository{store: f.store, inTx: true}
}

func (f *repositoryFactory) NewAlertHistoryRepository() repository.AlertHistoryRepository {
	return &alertHistoryRepository{store: f.store, inTx: true}
}

func (f *repositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{store: f.store, inTx: true}
}
