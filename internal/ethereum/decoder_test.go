package ethereum_test

import (
	"math/big"

	"txnotify/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decoder", func() {
	var (
		decoder   *ethereum.Decoder
		exchange  common.Address
		recipient common.Address
		token     common.Address
	)

	BeforeEach(func() {
		var err error
		decoder, err = ethereum.NewDecoder()
		Expect(err).NotTo(HaveOccurred())

		exchange = common.HexToAddress("0x09cabEC1eAd1c0Ba254B09efb3EE13841712bE14")
		recipient = common.HexToAddress("0x00000000000000000000000000000000000000aa")
		token = common.HexToAddress("0x9f8F72aA9304c8B593d555F12eF6589cC3A579A2")
	})

	newTx := func(to common.Address, data []byte) *types.Transaction {
		return types.NewTransaction(0, to, big.NewInt(0), 100000, big.NewInt(1), data)
	}

	It("decodes a token to token transfer", func() {
		data, err := decoder.ABI().Pack("tokenToTokenTransferInput",
			big.NewInt(10), big.NewInt(9), big.NewInt(8), big.NewInt(1700000000), recipient, token)
		Expect(err).NotTo(HaveOccurred())

		tx := newTx(exchange, data)
		descriptor, err := decoder.Describe(tx)
		Expect(err).NotTo(HaveOccurred())

		Expect(descriptor.Contract.MethodName).To(Equal("tokenToTokenTransferInput"))
		Expect(descriptor.Contract.Parameters).To(Equal([]string{
			"10", "9", "8", "1700000000", recipient.Hex(), token.Hex(),
		}))
		Expect(descriptor.Transaction.To).To(Equal(exchange.Hex()))
		Expect(descriptor.Transaction.Hash).To(Equal(tx.Hash().Hex()))
	})

	It("decodes an erc20 approval", func() {
		data, err := decoder.ABI().Pack("approve", exchange, big.NewInt(1))
		Expect(err).NotTo(HaveOccurred())

		contract, err := decoder.DecodeCall(data)
		Expect(err).NotTo(HaveOccurred())
		Expect(contract.MethodName).To(Equal("approve"))
		Expect(contract.Parameters).To(Equal([]string{exchange.Hex(), "1"}))
	})

	It("rejects an unknown selector", func() {
		_, err := decoder.DecodeCall([]byte{0xde, 0xad, 0xbe, 0xef})
		Expect(err).To(MatchError(ethereum.ErrUnknownMethod))
	})

	It("rejects calldata without a selector", func() {
		_, err := decoder.Describe(newTx(exchange, []byte{0x01}))
		Expect(err).To(MatchError(ethereum.ErrShortCalldata))
	})

	It("rejects truncated arguments", func() {
		data, err := decoder.ABI().Pack("createExchange", token)
		Expect(err).NotTo(HaveOccurred())

		_, err = decoder.DecodeCall(data[:10])
		Expect(err).To(MatchError(ContainSubstring("unpack createExchange arguments")))
	})
})
