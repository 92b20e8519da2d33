package tracker

import (
	"context"

	"txnotify/internal/ethereum"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// TxSource is the chain view a Tracker polls.
//
//counterfeiter:generate -o fake -fake-name TxSource . TxSource
type TxSource interface {
	FetchTransaction(ctx context.Context, hash string) (*ethereum.Transaction, error)
	Status(ctx context.Context, hash string) (ethereum.TxStatus, error)
	ChainID(ctx context.Context) (int64, error)
}
