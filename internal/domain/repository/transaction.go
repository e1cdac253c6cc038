package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository instance bound to the current transaction.
	UserRepo() UserRepository

	// ConnectionRepo returns a ConnectionRepository instance bound to the current transaction.
	ConnectionRepo() ConnectionRepository

	// SessionRepo returns a SessionRepository instance bound to the current transaction.
	SessionRepo() SessionRepository

	// VerificationRepo returns a VerificationRepository instance bound to the current transaction.
	VerificationRepo() VerificationRepository

	// CourseRepo returns a CourseRepository instance bound to the current transaction.
	CourseRepo() CourseRepository

	// ChapterRepo returns a ChapterRepository instance bound to the current transaction.
	ChapterRepo() ChapterRepository

	// ProgressRepo returns a ProgressRepository instance bound to the current transaction.
	ProgressRepo() ProgressRepository

	// PurchaseRepo returns a PurchaseRepository instance bound to the current transaction.
	PurchaseRepo() PurchaseRepository
}
