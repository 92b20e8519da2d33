package assist

import (
	"txnotify/internal/addresses"
	"txnotify/internal/ethereum"
	"txnotify/internal/message"
)

// DefaultDappID identifies this application to the tracking SDK.
const DefaultDappID = "12153f55-f29e-4f11-aa07-90f10da5d778"

// Config is handed to Library.Init.
type Config struct {
	NetworkID string
	DappID    string
	Provider  ethereum.EthClient
	Messages  Messages
}

// MessageFunc renders the status text for one transaction. false means
// there is nothing to show.
type MessageFunc func(data message.Descriptor) (string, bool)

// Messages holds one callback per lifecycle stage.
type Messages struct {
	TxSent      MessageFunc
	TxPending   MessageFunc
	TxConfirmed MessageFunc
	TxFailed    MessageFunc
}

// NewMessages binds every stage to f, keyed by the method name of the
// descriptor each callback receives.
func NewMessages(f message.Formatter) Messages {
	bind := func(code message.EventCode) MessageFunc {
		return func(data message.Descriptor) (string, bool) {
			return f.Message(code, data)
		}
	}
	return Messages{
		TxSent:      bind(message.TxSent),
		TxPending:   bind(message.TxPending),
		TxConfirmed: bind(message.TxConfirmed),
		TxFailed:    bind(message.TxFailed),
	}
}

// For returns the callback of code, or nil for an unknown code.
func (m Messages) For(code message.EventCode) MessageFunc {
	switch code {
	case message.TxSent:
		return m.TxSent
	case message.TxPending:
		return m.TxPending
	case message.TxConfirmed:
		return m.TxConfirmed
	case message.TxFailed:
		return m.TxFailed
	}
	return nil
}

// Render runs the callback of code when there is one.
func (m Messages) Render(code message.EventCode, data message.Descriptor) (string, bool) {
	fn := m.For(code)
	if fn == nil {
		return "", false
	}
	return fn(data)
}

// Settings are the parts of Config that do not depend on the provider.
type Settings struct {
	NetworkID string
	DappID    string
	Table     *addresses.Table
}
