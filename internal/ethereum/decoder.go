package ethereum

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"math/big"

	"txnotify/internal/message"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var ErrUnknownMethod error = errors.New("unknown contract method")
var ErrShortCalldata error = errors.New("calldata shorter than a method selector")

const selectorLen = 4

// uniswap v1 exchange and factory calls plus erc20 approve
//
//go:embed abi.json
var contractABI []byte

// Decoder turns transaction calldata into the descriptor the message
// formatter reads.
type Decoder struct {
	abi abi.ABI
}

func NewDecoder() (*Decoder, error) {
	parsed, err := abi.JSON(bytes.NewReader(contractABI))
	if err != nil {
		return nil, fmt.Errorf("parse contract abi: %w", err)
	}
	return &Decoder{abi: parsed}, nil
}

// ABI exposes the parsed contract ABI, mostly for packing calls in tests.
func (d *Decoder) ABI() abi.ABI {
	return d.abi
}

// Describe decodes the method and arguments of tx.
func (d *Decoder) Describe(tx *types.Transaction) (message.Descriptor, error) {
	var to string
	if tx.To() != nil {
		to = tx.To().Hex()
	}

	contract, err := d.DecodeCall(tx.Data())
	if err != nil {
		return message.Descriptor{}, err
	}

	return message.Descriptor{
		Contract: contract,
		Transaction: message.Transaction{
			Hash: tx.Hash().Hex(),
			To:   to,
		},
	}, nil
}

// DecodeCall resolves the method selector of data and stringifies its arguments.
func (d *Decoder) DecodeCall(data []byte) (message.Contract, error) {
	if len(data) < selectorLen {
		return message.Contract{}, ErrShortCalldata
	}

	method, err := d.abi.MethodById(data[:selectorLen])
	if err != nil {
		return message.Contract{}, fmt.Errorf("%w: 0x%x", ErrUnknownMethod, data[:selectorLen])
	}

	values, err := method.Inputs.UnpackValues(data[selectorLen:])
	if err != nil {
		return message.Contract{}, fmt.Errorf("unpack %s arguments: %w", method.RawName, err)
	}

	params := make([]string, len(values))
	for i, v := range values {
		params[i] = paramString(v)
	}

	return message.Contract{
		MethodName: method.RawName,
		Parameters: params,
	}, nil
}

func paramString(value any) string {
	switch v := value.(type) {
	case common.Address:
		return v.Hex()
	case *big.Int:
		return v.String()
	case bool:
		return fmt.Sprintf("%t", v)
	case []byte:
		return fmt.Sprintf("0x%s", common.Bytes2Hex(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}
