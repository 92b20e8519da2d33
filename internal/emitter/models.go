package emitter

import (
	"time"

	"txnotify/internal/message"
)

// Notification is one status message produced for a tracked transaction.
type Notification struct {
	TxHash     string            `json:"txHash"`
	MethodName string            `json:"methodName"`
	EventCode  message.EventCode `json:"eventCode"`
	Message    string            `json:"message"`
	Network    string            `json:"network"`
	CreatedAt  time.Time         `json:"createdAt"`
}
