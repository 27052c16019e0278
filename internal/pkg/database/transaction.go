package database

import "context"

// TxManager runs a function inside a single database transaction. Repository
// calls made with the context it passes to fn join that transaction.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
