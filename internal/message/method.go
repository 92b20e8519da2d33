package message

// Method is a contract method whose transactions get status messages.
// Swap output calls are not listed and get no message.
type Method int

const (
	Approve Method = iota + 1
	CreateExchange
	AddLiquidity
	RemoveLiquidity
	EthToTokenTransferInput
	TokenToEthTransferInput
	TokenToTokenTransferInput
	EthToTokenTransferOutput
	TokenToEthTransferOutput
	TokenToTokenTransferOutput
	EthToTokenSwapInput
	TokenToEthSwapInput
	TokenToTokenSwapInput
)

var methodNames = map[Method]string{
	Approve:                    "approve",
	CreateExchange:             "createExchange",
	AddLiquidity:               "addLiquidity",
	RemoveLiquidity:            "removeLiquidity",
	EthToTokenTransferInput:    "ethToTokenTransferInput",
	TokenToEthTransferInput:    "tokenToEthTransferInput",
	TokenToTokenTransferInput:  "tokenToTokenTransferInput",
	EthToTokenTransferOutput:   "ethToTokenTransferOutput",
	TokenToEthTransferOutput:   "tokenToEthTransferOutput",
	TokenToTokenTransferOutput: "tokenToTokenTransferOutput",
	EthToTokenSwapInput:        "ethToTokenSwapInput",
	TokenToEthSwapInput:        "tokenToEthSwapInput",
	TokenToTokenSwapInput:      "tokenToTokenSwapInput",
}

var methodsByName = func() map[string]Method {
	m := make(map[string]Method, len(methodNames))
	for method, name := range methodNames {
		m[name] = method
	}
	return m
}()

// ParseMethod resolves a contract method name. Names are case sensitive.
func ParseMethod(name string) (Method, bool) {
	m, ok := methodsByName[name]
	return m, ok
}

// Methods returns every supported method.
func Methods() []Method {
	out := make([]Method, 0, len(methodNames))
	for m := Approve; m <= TokenToTokenSwapInput; m++ {
		out = append(out, m)
	}
	return out
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return "unknown"
}

// Family groups methods that share message templates.
type Family int

const (
	ApproveFamily Family = iota + 1
	ExchangeFamily
	LiquidityFamily
	TransferFamily
	SwapFamily
)

func (m Method) Family() Family {
	switch m {
	case Approve:
		return ApproveFamily
	case CreateExchange:
		return ExchangeFamily
	case AddLiquidity, RemoveLiquidity:
		return LiquidityFamily
	case EthToTokenTransferInput, TokenToEthTransferInput, TokenToTokenTransferInput,
		EthToTokenTransferOutput, TokenToEthTransferOutput, TokenToTokenTransferOutput:
		return TransferFamily
	case EthToTokenSwapInput, TokenToEthSwapInput, TokenToTokenSwapInput:
		return SwapFamily
	}
	return 0
}

// direction tells which side of an exchange a transfer or swap starts from.
type direction int

const (
	ethToToken direction = iota + 1
	tokenToEth
	tokenToToken
)

func (m Method) direction() direction {
	switch m {
	case EthToTokenTransferInput, EthToTokenTransferOutput, EthToTokenSwapInput:
		return ethToToken
	case TokenToEthTransferInput, TokenToEthTransferOutput, TokenToEthSwapInput:
		return tokenToEth
	case TokenToTokenTransferInput, TokenToTokenTransferOutput, TokenToTokenSwapInput:
		return tokenToToken
	}
	return 0
}
