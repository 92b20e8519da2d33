package message

// EventCode is a stage of a transaction's observable progress.
// The usual progression is txSent -> txPending -> txConfirmed | txFailed.
type EventCode string

const (
	TxSent      EventCode = "txSent"
	TxPending   EventCode = "txPending"
	TxConfirmed EventCode = "txConfirmed"
	TxFailed    EventCode = "txFailed"
)

// EventCodes lists the lifecycle codes in progression order.
var EventCodes = []EventCode{TxSent, TxPending, TxConfirmed, TxFailed}

func ParseEventCode(s string) (EventCode, bool) {
	for _, code := range EventCodes {
		if string(code) == s {
			return code, true
		}
	}
	return "", false
}

func (e EventCode) IsTerminal() bool {
	return e == TxConfirmed || e == TxFailed
}

// Descriptor is the transaction data a lifecycle callback receives.
type Descriptor struct {
	Contract    Contract    `json:"contract"`
	Transaction Transaction `json:"transaction"`
}

type Contract struct {
	MethodName string   `json:"methodName"`
	Parameters []string `json:"parameters"`
}

type Transaction struct {
	Hash string `json:"hash,omitempty"`
	To   string `json:"to"`
}

// Param returns the i-th contract parameter and whether it exists.
func (d Descriptor) Param(i int) (string, bool) {
	if i < 0 || i >= len(d.Contract.Parameters) {
		return "", false
	}
	return d.Contract.Parameters[i], true
}
