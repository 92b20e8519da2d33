package payload

import (
	"txnotify/internal/core"

	"github.com/jellydator/validation"
)

type TrackRequest struct {
	TransactionHash string `json:"transactionHash"`
	Contract        string `json:"contract,omitempty"`
}

func (t TrackRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.TransactionHash, validation.Required, txHash),
		validation.Field(&t.Contract, hexAddress),
	)
}

func (t TrackRequest) ToCore() core.TrackRequest {
	return core.TrackRequest{
		TransactionHash: t.TransactionHash,
		Contract:        t.Contract,
	}
}
