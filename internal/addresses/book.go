package addresses

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed tables.json
var defaultTables []byte

// FindTicker returns the ticker of the first pair whose address matches
// address, ignoring case.
func FindTicker(address string, pairs []Pair) (string, bool) {
	for _, pair := range pairs {
		if strings.EqualFold(pair.Address, address) {
			return pair.Ticker, true
		}
	}
	return "", false
}

// ExchangeTicker looks address up in the exchange list. A nil table misses.
func (t *Table) ExchangeTicker(address string) (string, bool) {
	if t == nil {
		return "", false
	}
	return FindTicker(address, t.ExchangeAddresses.Addresses)
}

// TokenTicker looks address up in the token list. A nil table misses.
func (t *Table) TokenTicker(address string) (string, bool) {
	if t == nil {
		return "", false
	}
	return FindTicker(address, t.TokenAddresses.Addresses)
}

// Table returns the table registered for network, or nil.
func (b Book) Table(network Network) *Table {
	if b == nil {
		return nil
	}
	return b[network]
}

// Load decodes a book from JSON shaped as {"MAIN": {...}, "RINKEBY": {...}}.
func Load(r io.Reader) (Book, error) {
	var book Book
	if err := json.NewDecoder(r).Decode(&book); err != nil {
		return nil, fmt.Errorf("decode address book: %w", err)
	}

	for network := range book {
		if !network.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, network)
		}
	}

	return book, nil
}

func LoadFile(path string) (Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open address book: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Default returns the embedded uniswap exchange and token tables.
func Default() (Book, error) {
	return Load(bytes.NewReader(defaultTables))
}
