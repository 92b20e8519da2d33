package ethereum

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"txnotify/internal/message"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var ErrTxNotFound error = errors.New("transaction not found")

type EthService struct {
	client  EthClient
	decoder *Decoder
}

func NewEthService(ethClient EthClient, decoder *Decoder) *EthService {
	return &EthService{
		client:  ethClient,
		decoder: decoder,
	}
}

// FetchTransactions looks up every hash concurrently. Failed lookups are
// joined into the returned error, successful ones are still returned.
func (s *EthService) FetchTransactions(ctx context.Context, hashes []string) ([]*Transaction, error) {
	resultsChan := make(chan *TxResult)

	var wg sync.WaitGroup
	for _, hashStr := range hashes {
		wg.Add(1)
		go func(hashStr string) {
			defer wg.Done()
			res := s.getTransactionByHash(ctx, common.HexToHash(hashStr))
			if res.Error != nil {
				res.Error = fmt.Errorf("fetching transaction %q: %w", hashStr, res.Error)
			}
			resultsChan <- res
		}(hashStr)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var results []*Transaction
	var aggrErr error
	for result := range resultsChan {
		if result.Error != nil {
			aggrErr = errors.Join(aggrErr, result.Error)
			continue
		}
		results = append(results, result.Transaction)
	}

	return results, aggrErr
}

// FetchTransaction looks up a single transaction with its decoded call and status.
func (s *EthService) FetchTransaction(ctx context.Context, hash string) (*Transaction, error) {
	res := s.getTransactionByHash(ctx, common.HexToHash(hash))
	if res.Error != nil {
		return nil, fmt.Errorf("fetching transaction %q: %w", hash, res.Error)
	}
	return res.Transaction, nil
}

// Status reports whether the transaction is still pending or was mined,
// and if so whether it succeeded.
func (s *EthService) Status(ctx context.Context, hash string) (TxStatus, error) {
	h := common.HexToHash(hash)

	_, isPending, err := s.client.TransactionByHash(ctx, h)
	if err != nil {
		if errors.Is(err, geth.NotFound) {
			return "", ErrTxNotFound
		}
		return "", fmt.Errorf("transaction by hash: %w", err)
	}
	if isPending {
		return StatusPending, nil
	}

	receipt, err := s.client.TransactionReceipt(ctx, h)
	if err != nil {
		if errors.Is(err, geth.NotFound) {
			return StatusPending, nil
		}
		return "", fmt.Errorf("transaction receipt: %w", err)
	}

	return receiptStatus(receipt), nil
}

// ChainID returns the id of the network the node serves.
func (s *EthService) ChainID(ctx context.Context) (int64, error) {
	id, err := s.client.NetworkID(ctx)
	if err != nil {
		return 0, fmt.Errorf("network id: %w", err)
	}
	return id.Int64(), nil
}

func (s *EthService) Describe(tx *types.Transaction) (message.Descriptor, error) {
	return s.decoder.Describe(tx)
}

func (s *EthService) getTransactionByHash(ctx context.Context, hash common.Hash) *TxResult {
	tx, isPending, err := s.client.TransactionByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, geth.NotFound) {
			err = ErrTxNotFound
		}
		return &TxResult{nil, err}
	}

	descriptor, err := s.decoder.Describe(tx)
	if err != nil {
		return &TxResult{nil, fmt.Errorf("describe transaction: %w", err)}
	}

	chainID, err := s.client.NetworkID(ctx)
	if err != nil {
		return &TxResult{nil, err}
	}

	signer := types.LatestSignerForChainID(chainID)
	from, err := types.Sender(signer, tx)
	if err != nil {
		return &TxResult{nil, err}
	}

	result := &Transaction{
		TransactionHash: tx.Hash().Hex(),
		Status:          StatusPending,
		From:            from.Hex(),
		To:              descriptor.Transaction.To,
		Value:           tx.Value().String(),
		Descriptor:      descriptor,
	}

	if isPending {
		return &TxResult{result, nil}
	}

	receipt, err := s.client.TransactionReceipt(ctx, hash)
	if err != nil {
		if errors.Is(err, geth.NotFound) {
			return &TxResult{result, nil}
		}
		return &TxResult{nil, err}
	}

	result.Status = receiptStatus(receipt)
	if receipt.BlockNumber != nil {
		result.BlockNumber = receipt.BlockNumber.Uint64()
	}

	return &TxResult{result, nil}
}

func receiptStatus(receipt *types.Receipt) TxStatus {
	if receipt.Status == types.ReceiptStatusSuccessful {
		return StatusConfirmed
	}
	return StatusFailed
}
