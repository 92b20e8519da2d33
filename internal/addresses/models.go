package addresses

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownNetwork error = errors.New("unknown network")

// Network names the address table that is active for a lookup.
type Network string

const (
	Main    Network = "MAIN"
	Rinkeby Network = "RINKEBY"
)

// rinkebyNetworkID is the chain id that switches lookups to the rinkeby tables.
const rinkebyNetworkID = "4"

// NetworkFromID maps a chain id to its address table network.
// Anything but the rinkeby id selects mainnet.
func NetworkFromID(id string) Network {
	if id == rinkebyNetworkID {
		return Rinkeby
	}
	return Main
}

func (n Network) Valid() bool {
	return n == Main || n == Rinkeby
}

// Pair associates a ticker with a contract address.
// On the wire it is the two element array ["TICKER", "0xADDRESS"].
type Pair struct {
	Ticker  string
	Address string
}

func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{p.Ticker, p.Address})
}

func (p *Pair) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode pair: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("decode pair: expected [ticker, address], got %d elements", len(raw))
	}
	p.Ticker, p.Address = raw[0], raw[1]
	return nil
}

type PairList struct {
	Addresses []Pair `json:"addresses"`
}

// Table holds the exchange and token address lists of one network.
type Table struct {
	ExchangeAddresses PairList `json:"exchangeAddresses"`
	TokenAddresses    PairList `json:"tokenAddresses"`
}

// Book keys address tables by network.
type Book map[Network]*Table
