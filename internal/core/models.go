package core

import (
	"time"

	"txnotify/internal/ethereum"
	"txnotify/internal/message"
)

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// FormatRequest asks for the message of one lifecycle stage.
type FormatRequest struct {
	EventCode  string
	Descriptor message.Descriptor
}

// TrackRequest starts tracking a transaction, optionally checked against
// the contract it must be sent to.
type TrackRequest struct {
	TransactionHash string
	Contract        string
}

type NotificationRecord struct {
	TransactionHash string    `json:"transactionHash"`
	MethodName      string    `json:"methodName"`
	EventCode       string    `json:"eventCode"`
	Message         string    `json:"message"`
	Network         string    `json:"network"`
	CreatedAt       time.Time `json:"createdAt"`
}

// TransactionReport is a transaction with the message matching its
// current status. Message is empty when the method has none.
type TransactionReport struct {
	*ethereum.Transaction
	EventCode message.EventCode `json:"eventCode"`
	Message   string            `json:"message,omitempty"`
}
