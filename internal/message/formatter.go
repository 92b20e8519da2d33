package message

import (
	"fmt"

	"txnotify/internal/addresses"
)

const (
	// UnknownToken stands in for a ticker missing from the address tables.
	UnknownToken = "Unknown Token"
	// CustomToken names a token whose exchange is being created but that
	// is not listed yet.
	CustomToken = "Custom Token"
	// UnknownAddress stands in for a recipient the parameters do not carry.
	UnknownAddress = "unknown"

	nativeTicker = "ETH"

	recipientPrefixLen = 6
)

// Positions of the arguments read from uniswap exchange calls.
const (
	ethToTokenRecipientParam   = 2
	tokenToEthRecipientParam   = 3
	tokenToTokenRecipientParam = 4
	tokenToTokenTransferToken  = 5
	tokenToTokenSwapToken      = 4
)

// Format returns the status message for a transaction calling methodName
// at lifecycle stage event. The boolean is false when there is nothing to
// show: the method is not supported or the event code is unknown.
func Format(methodName string, event EventCode, data Descriptor, table *addresses.Table) (string, bool) {
	method, ok := ParseMethod(methodName)
	if !ok {
		return "", false
	}
	return FormatMethod(method, event, data, table)
}

func FormatMethod(method Method, event EventCode, data Descriptor, table *addresses.Table) (string, bool) {
	switch method.Family() {
	case ApproveFamily:
		return approveMessage(event, data, table)
	case ExchangeFamily:
		return exchangeMessage(event, data, table)
	case LiquidityFamily:
		return liquidityMessage(method, event, data, table)
	case TransferFamily:
		return transferMessage(method, event, data, table)
	case SwapFamily:
		return swapMessage(method, event, data, table)
	}
	return "", false
}

// Formatter formats messages against the address table of one network.
type Formatter struct {
	table *addresses.Table
}

func NewFormatter(table *addresses.Table) Formatter {
	return Formatter{table: table}
}

// Message formats data for event, keyed by the descriptor's own method name.
func (f Formatter) Message(event EventCode, data Descriptor) (string, bool) {
	return Format(data.Contract.MethodName, event, data, f.table)
}

func (f Formatter) Table() *addresses.Table {
	return f.table
}

func approveMessage(event EventCode, data Descriptor, table *addresses.Table) (string, bool) {
	token := exchangeTicker(table, param(data, 0))

	switch event {
	case TxSent:
		return fmt.Sprintf("Sending transaction to unlock %s", token), true
	case TxPending:
		return fmt.Sprintf("Your transaction to unlock %s is pending!", token), true
	case TxConfirmed:
		return fmt.Sprintf("%s has been successfully unlocked. Woohoo!", token), true
	case TxFailed:
		return fmt.Sprintf("Uh oh something went wrong unlocking %s. Please try again later.", token), true
	}
	return "", false
}

func exchangeMessage(event EventCode, data Descriptor, table *addresses.Table) (string, bool) {
	token := CustomToken
	if address := param(data, 0); address != "" {
		if ticker, ok := table.TokenTicker(address); ok {
			token = ticker
		}
	}

	switch event {
	case TxSent:
		return fmt.Sprintf("Sending transaction to create %s exchange...", token), true
	case TxPending:
		return fmt.Sprintf("Your transaction to create %s exchange is pending!", token), true
	case TxConfirmed:
		return fmt.Sprintf("%s exchange successfully created. Woohoo!", token), true
	case TxFailed:
		return fmt.Sprintf("Uh oh something went wrong creating %s exchange. Please try again later.", token), true
	}
	return "", false
}

func liquidityMessage(method Method, event EventCode, data Descriptor, table *addresses.Table) (string, bool) {
	token := exchangeTicker(table, data.Transaction.To)

	verb, past, progressive := "remove", "removed", "removing"
	if method == AddLiquidity {
		verb, past, progressive = "add", "added", "adding"
	}

	switch event {
	case TxSent:
		return fmt.Sprintf("Sending transaction to %s %s liquidity...", verb, token), true
	case TxPending:
		return fmt.Sprintf("Your transaction to %s %s liquidity is pending!", verb, token), true
	case TxConfirmed:
		return fmt.Sprintf("%s liquidity successfully %s. Woohoo!", token, past), true
	case TxFailed:
		return fmt.Sprintf("Uh oh something went wrong %s %s liquidity. Please try again later.", progressive, token), true
	}
	return "", false
}

func transferMessage(method Method, event EventCode, data Descriptor, table *addresses.Table) (string, bool) {
	token, recipient := UnknownToken, UnknownAddress
	switch method.direction() {
	case ethToToken:
		token = exchangeTicker(table, data.Transaction.To)
		recipient = shortAddress(data, ethToTokenRecipientParam)
	case tokenToEth:
		token = nativeTicker
		recipient = shortAddress(data, tokenToEthRecipientParam)
	case tokenToToken:
		token = tokenTicker(table, param(data, tokenToTokenTransferToken))
		recipient = shortAddress(data, tokenToTokenRecipientParam)
	}

	switch event {
	case TxSent:
		return fmt.Sprintf("Sending %s to address: %s...", token, recipient), true
	case TxPending:
		return fmt.Sprintf("Your %s transfer to address: %s... is pending!", token, recipient), true
	case TxConfirmed:
		return fmt.Sprintf("Your %s transfer to address %s... is complete! Woohoo!", token, recipient), true
	case TxFailed:
		return fmt.Sprintf("Uh oh something went wrong sending %s to address: %s... Please try again later.", token, recipient), true
	}
	return "", false
}

func swapMessage(method Method, event EventCode, data Descriptor, table *addresses.Table) (string, bool) {
	from, to := UnknownToken, UnknownToken
	switch method.direction() {
	case ethToToken:
		from = nativeTicker
		to = exchangeTicker(table, data.Transaction.To)
	case tokenToEth:
		from = exchangeTicker(table, data.Transaction.To)
		to = nativeTicker
	case tokenToToken:
		from = exchangeTicker(table, data.Transaction.To)
		to = tokenTicker(table, param(data, tokenToTokenSwapToken))
	}

	switch event {
	case TxSent:
		return fmt.Sprintf("Sending %s to %s swap request...", from, to), true
	case TxPending:
		return fmt.Sprintf("Your swap from %s to %s is pending!", from, to), true
	case TxConfirmed:
		return fmt.Sprintf("Your swap from %s to %s is complete! Woohoo!", from, to), true
	case TxFailed:
		return fmt.Sprintf("Uh oh something went wrong swapping %s to %s. Please try again later.", from, to), true
	}
	return "", false
}

func param(data Descriptor, i int) string {
	p, _ := data.Param(i)
	return p
}

func exchangeTicker(table *addresses.Table, address string) string {
	if ticker, ok := table.ExchangeTicker(address); ok && address != "" {
		return ticker
	}
	return UnknownToken
}

func tokenTicker(table *addresses.Table, address string) string {
	if ticker, ok := table.TokenTicker(address); ok && address != "" {
		return ticker
	}
	return UnknownToken
}

// shortAddress returns the first characters of the address at parameter i.
func shortAddress(data Descriptor, i int) string {
	addr, ok := data.Param(i)
	if !ok || addr == "" {
		return UnknownAddress
	}
	runes := []rune(addr)
	if len(runes) > recipientPrefixLen {
		runes = runes[:recipientPrefixLen]
	}
	return string(runes)
}
