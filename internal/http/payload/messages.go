package payload

import (
	"txnotify/internal/core"
	"txnotify/internal/message"

	"github.com/jellydator/validation"
)

// MessageRequest is the transaction data a status message is built from.
type MessageRequest struct {
	Contract    ContractData    `json:"contract"`
	Transaction TransactionData `json:"transaction"`
}

type ContractData struct {
	MethodName string   `json:"methodName"`
	Parameters []string `json:"parameters"`
}

type TransactionData struct {
	Hash string `json:"hash"`
	To   string `json:"to"`
}

func (m MessageRequest) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Contract),
		validation.Field(&m.Transaction),
	)
}

func (c ContractData) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.MethodName, validation.Required),
	)
}

func (t TransactionData) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Hash, txHash),
		validation.Field(&t.To, hexAddress),
	)
}

func (m MessageRequest) ToFormatRequest(eventCode string) core.FormatRequest {
	return core.FormatRequest{
		EventCode: eventCode,
		Descriptor: message.Descriptor{
			Contract: message.Contract{
				MethodName: m.Contract.MethodName,
				Parameters: m.Contract.Parameters,
			},
			Transaction: message.Transaction{
				Hash: m.Transaction.Hash,
				To:   m.Transaction.To,
			},
		},
	}
}
