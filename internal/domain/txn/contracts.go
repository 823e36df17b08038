// Package txn declares the unit-of-work contract used by application services.
package txn

import "context"

// Transactor runs fn inside one database transaction.
// Repositories called with the context handed to fn join that transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
