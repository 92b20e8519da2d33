package ethereum_test

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"txnotify/internal/ethereum"
	"txnotify/internal/ethereum/fake"
	"txnotify/internal/message"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("EthService", func() {
	var (
		service    *ethereum.EthService
		decoder    *ethereum.Decoder
		fakeClient *fake.EthClient
		ctx        context.Context
		testErr    error
		exchange   common.Address
		chainID    *big.Int
		signedTx1  *types.Transaction
		signedTx2  *types.Transaction
	)

	BeforeEach(func() {
		var err error
		fakeClient = new(fake.EthClient)
		testErr = errors.New("test error")
		ctx = context.Background()

		decoder, err = ethereum.NewDecoder()
		Expect(err).NotTo(HaveOccurred())
		service = ethereum.NewEthService(fakeClient, decoder)

		privateKey, err := crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())

		chainID = big.NewInt(4)
		signer := types.LatestSignerForChainID(chainID)
		exchange = common.HexToAddress("0x77dB9C915809e7BE439D2AB21032B1b8B58F6891")

		swap, err := decoder.ABI().Pack("ethToTokenSwapInput", big.NewInt(1), big.NewInt(1700000000))
		Expect(err).NotTo(HaveOccurred())
		addLiquidity, err := decoder.ABI().Pack("addLiquidity", big.NewInt(1), big.NewInt(2), big.NewInt(1700000000))
		Expect(err).NotTo(HaveOccurred())

		tx1 := types.NewTransaction(0, exchange, big.NewInt(5), 100000, big.NewInt(1), swap)
		tx2 := types.NewTransaction(1, exchange, big.NewInt(6), 100000, big.NewInt(1), addLiquidity)

		signedTx1, err = types.SignTx(tx1, signer, privateKey)
		Expect(err).NotTo(HaveOccurred())
		signedTx2, err = types.SignTx(tx2, signer, privateKey)
		Expect(err).NotTo(HaveOccurred())

		fakeClient.NetworkIDReturns(chainID, nil)
	})

	Describe("FetchTransactions", func() {
		var (
			hashes  []string
			results []*ethereum.Transaction
			err     error
		)

		BeforeEach(func() {
			hashes = []string{signedTx1.Hash().Hex(), signedTx2.Hash().Hex()}

			fakeClient.TransactionByHashStub = func(_ context.Context, hash common.Hash) (*types.Transaction, bool, error) {
				switch hash {
				case signedTx1.Hash():
					return signedTx1, false, nil
				case signedTx2.Hash():
					return signedTx2, false, nil
				}
				return nil, false, geth.NotFound
			}
			fakeClient.TransactionReceiptStub = func(_ context.Context, hash common.Hash) (*types.Receipt, error) {
				if hash == signedTx1.Hash() {
					return &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(100)}, nil
				}
				return &types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(101)}, nil
			}
		})

		JustBeforeEach(func() {
			results, err = service.FetchTransactions(ctx, hashes)
		})

		When("all transactions are fetched successfully", func() {
			It("returns decoded transactions with their status", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))

				byHash := map[string]*ethereum.Transaction{}
				for _, r := range results {
					byHash[r.TransactionHash] = r
				}

				first := byHash[signedTx1.Hash().Hex()]
				Expect(first).NotTo(BeNil())
				Expect(first.Status).To(Equal(ethereum.StatusConfirmed))
				Expect(first.BlockNumber).To(Equal(uint64(100)))
				Expect(first.Value).To(Equal("5"))
				Expect(first.Descriptor.Contract.MethodName).To(Equal("ethToTokenSwapInput"))
				Expect(first.To).To(Equal(exchange.Hex()))

				second := byHash[signedTx2.Hash().Hex()]
				Expect(second).NotTo(BeNil())
				Expect(second.Status).To(Equal(ethereum.StatusFailed))
				Expect(second.Descriptor.Contract.MethodName).To(Equal("addLiquidity"))

				Expect(fakeClient.TransactionByHashCallCount()).To(Equal(2))
				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(2))
			})
		})

		When("some transactions fail to fetch", func() {
			BeforeEach(func() {
				hashes = append(hashes, "0x01")
			})

			It("returns partial results with error", func() {
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring(fmt.Sprintf("fetching transaction %q", "0x01")))
				Expect(errors.Is(err, ethereum.ErrTxNotFound)).To(BeTrue())
				Expect(results).To(HaveLen(2))
			})
		})

		When("context is cancelled", func() {
			BeforeEach(func() {
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				cancel()

				fakeClient.TransactionByHashStub = func(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error) {
					select {
					case <-ctx.Done():
						return nil, false, ctx.Err()
					case <-time.After(100 * time.Millisecond):
						return signedTx1, false, nil
					}
				}
			})

			It("should return context cancelled error", func() {
				Expect(err).To(MatchError(context.Canceled))
				Expect(results).To(BeEmpty())
			})
		})
	})

	Describe("FetchTransaction", func() {
		It("keeps a mempool transaction pending", func() {
			fakeClient.TransactionByHashReturns(signedTx1, true, nil)

			tx, err := service.FetchTransaction(ctx, signedTx1.Hash().Hex())
			Expect(err).NotTo(HaveOccurred())
			Expect(tx.Status).To(Equal(ethereum.StatusPending))
			Expect(tx.Descriptor.Transaction.Hash).To(Equal(signedTx1.Hash().Hex()))
			Expect(fakeClient.TransactionReceiptCallCount()).To(BeZero())
		})

		It("wraps decoding failures", func() {
			raw := types.NewTransaction(0, exchange, big.NewInt(0), 21000, big.NewInt(1), nil)
			fakeClient.TransactionByHashReturns(raw, false, nil)

			_, err := service.FetchTransaction(ctx, raw.Hash().Hex())
			Expect(err).To(MatchError(ethereum.ErrShortCalldata))
		})
	})

	Describe("Status", func() {
		var (
			status ethereum.TxStatus
			err    error
		)

		JustBeforeEach(func() {
			status, err = service.Status(ctx, signedTx1.Hash().Hex())
		})

		When("the transaction is in the mempool", func() {
			BeforeEach(func() {
				fakeClient.TransactionByHashReturns(signedTx1, true, nil)
			})

			It("is pending", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(Equal(ethereum.StatusPending))
				Expect(status.EventCode()).To(Equal(message.TxPending))
			})
		})

		When("the receipt reports success", func() {
			BeforeEach(func() {
				fakeClient.TransactionByHashReturns(signedTx1, false, nil)
				fakeClient.TransactionReceiptReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
			})

			It("is confirmed", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(Equal(ethereum.StatusConfirmed))
				Expect(status.EventCode()).To(Equal(message.TxConfirmed))
			})
		})

		When("the receipt reports a revert", func() {
			BeforeEach(func() {
				fakeClient.TransactionByHashReturns(signedTx1, false, nil)
				fakeClient.TransactionReceiptReturns(&types.Receipt{Status: types.ReceiptStatusFailed}, nil)
			})

			It("is failed", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(Equal(ethereum.StatusFailed))
				Expect(status.EventCode()).To(Equal(message.TxFailed))
			})
		})

		When("the receipt is not available yet", func() {
			BeforeEach(func() {
				fakeClient.TransactionByHashReturns(signedTx1, false, nil)
				fakeClient.TransactionReceiptReturns(nil, geth.NotFound)
			})

			It("is pending", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(Equal(ethereum.StatusPending))
			})
		})

		When("the node does not know the transaction", func() {
			BeforeEach(func() {
				fakeClient.TransactionByHashReturns(nil, false, geth.NotFound)
			})

			It("returns ErrTxNotFound", func() {
				Expect(err).To(MatchError(ethereum.ErrTxNotFound))
			})
		})

		When("the node fails", func() {
			BeforeEach(func() {
				fakeClient.TransactionByHashReturns(nil, false, testErr)
			})

			It("wraps the error", func() {
				Expect(err).To(MatchError(testErr))
				Expect(err.Error()).To(ContainSubstring("transaction by hash"))
			})
		})
	})

	Describe("ChainID", func() {
		It("returns the node network id", func() {
			id, err := service.ChainID(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(int64(4)))
		})

		It("wraps failures", func() {
			fakeClient.NetworkIDReturns(nil, testErr)
			_, err := service.ChainID(ctx)
			Expect(err).To(MatchError(testErr))
		})
	})
})
