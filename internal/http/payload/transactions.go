package payload

import (
	"github.com/jellydator/validation"
)

const maxTransactionsPerRequest = 20

type TransactionsRequest struct {
	Transactions []string
}

func (t TransactionsRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Transactions,
			validation.Required,
			validation.Length(1, maxTransactionsPerRequest),
			validation.Each(txHash)),
	)
}

type NotificationsRequest struct {
	TransactionHash string
}

func (n NotificationsRequest) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.TransactionHash, validation.Required, txHash),
	)
}
