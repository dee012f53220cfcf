package repository

import "context"

// RepositoryFactory creates repositories bound to the current transaction
type RepositoryFactory interface {
	NewTenderRepository() TenderRepository
	NewFilterRepository() FilterRepository
	NewAlertHistoryRepository() AlertHistoryRepository
	NewUserRepository() UserRepository
}

// TransactionManager manages transaction lifecycles
type TransactionManager interface {
	// Execute runs fn inside a transaction. Repositories obtained from the
	// factory share the transaction; any error from fn rolls it back.
	Execute(ctx context.Context, fn func(factory RepositoryFactory) error) error
}
