package ports

import "context"

// TxRunner executes fn inside a single storage transaction. The context
// passed to fn carries the transaction; repository calls made with it join
// the same transaction, so an admin mutation and its audit append commit or
// roll back together.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
