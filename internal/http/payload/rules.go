package payload

import (
	"errors"
	"regexp"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

var txHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

var errNotHexAddress error = errors.New("must be a hex encoded address")

var hexAddress = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !common.IsHexAddress(s) {
		return errNotHexAddress
	}
	return nil
})

var txHash = validation.Match(txHashPattern).Error("must be a 0x prefixed 32 byte hex hash")
