package ethereum

import "txnotify/internal/message"

// TxStatus is the chain-side state of a transaction.
type TxStatus string

const (
	StatusPending   TxStatus = "pending"
	StatusConfirmed TxStatus = "confirmed"
	StatusFailed    TxStatus = "failed"
)

// EventCode maps a chain status onto the lifecycle stage it reports.
func (s TxStatus) EventCode() message.EventCode {
	switch s {
	case StatusConfirmed:
		return message.TxConfirmed
	case StatusFailed:
		return message.TxFailed
	}
	return message.TxPending
}

type TxResult struct {
	Transaction *Transaction
	Error       error
}

type Transaction struct {
	TransactionHash string             `json:"transactionHash"`
	Status          TxStatus           `json:"status"`
	BlockNumber     uint64             `json:"blockNumber,omitempty"`
	From            string             `json:"from"`
	To              string             `json:"to"`
	Value           string             `json:"value"`
	Descriptor      message.Descriptor `json:"descriptor"`
}
