package tracker

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"txnotify/internal/addresses"
	"txnotify/internal/assist"
	"txnotify/internal/emitter"
	"txnotify/internal/ethereum"
	"txnotify/internal/message"

	"go.uber.org/zap"
)

var (
	ErrWrongNetwork     error = errors.New("provider is connected to another network")
	ErrContractMismatch error = errors.New("transaction is not sent to the contract")
)

var _ assist.Handle = (*Tracker)(nil)

// Tracker reports the lifecycle of transactions through an emitter.
type Tracker struct {
	ctx       context.Context
	logs      *zap.SugaredLogger
	wg        *sync.WaitGroup
	source    TxSource
	emitter   emitter.Emitter
	messages  assist.Messages
	networkID string
	network   addresses.Network
	opts      Options
}

// NewTracker builds a tracker outside of a Library. Watchers live as long
// as ctx.
func NewTracker(ctx context.Context, logger *zap.SugaredLogger, source TxSource, em emitter.Emitter, cfg assist.Config, opts Options) *Tracker {
	return newTracker(ctx, logger, &sync.WaitGroup{}, source, em, cfg, opts.withDefaults())
}

func newTracker(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup, source TxSource, em emitter.Emitter, cfg assist.Config, opts Options) *Tracker {
	return &Tracker{
		ctx:       ctx,
		logs:      logger,
		wg:        wg,
		source:    source,
		emitter:   em,
		messages:  cfg.Messages,
		networkID: cfg.NetworkID,
		network:   addresses.NetworkFromID(cfg.NetworkID),
		opts:      opts,
	}
}

// Onboard checks that the provider serves the configured network.
func (t *Tracker) Onboard(ctx context.Context) error {
	id, err := t.source.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("get chain id: %w", err)
	}
	if strconv.FormatInt(id, 10) != t.networkID {
		return fmt.Errorf("%w: expected %s, got %d", ErrWrongNetwork, t.networkID, id)
	}
	return nil
}

func (t *Tracker) Contract(address string) assist.Contract {
	return &contract{tracker: t, address: address}
}

// Transaction starts watching hash. It returns once txSent was reported;
// the rest of the lifecycle is reported in the background.
func (t *Tracker) Transaction(ctx context.Context, hash string) error {
	tx, err := t.source.FetchTransaction(ctx, hash)
	if err != nil {
		return err
	}
	t.track(ctx, tx)
	return nil
}

// Wait blocks until every watcher started by t has returned.
func (t *Tracker) Wait() {
	t.wg.Wait()
}

type contract struct {
	tracker *Tracker
	address string
}

func (c *contract) Track(ctx context.Context, hash string) error {
	tx, err := c.tracker.source.FetchTransaction(ctx, hash)
	if err != nil {
		return err
	}
	if !strings.EqualFold(tx.To, c.address) {
		return fmt.Errorf("%w: %s sent to %s", ErrContractMismatch, hash, tx.To)
	}
	c.tracker.track(ctx, tx)
	return nil
}

func (t *Tracker) track(ctx context.Context, tx *ethereum.Transaction) {
	t.notify(ctx, message.TxSent, tx)

	t.wg.Add(1)
	go t.watch(tx)
}

func (t *Tracker) watch(tx *ethereum.Transaction) {
	defer t.wg.Done()

	ticker := time.NewTicker(t.opts.PollInterval)
	defer ticker.Stop()

	lastSeen := time.Now()
	pendingSent := false
	for {
		select {
		case <-t.ctx.Done():
			return
		case now := <-ticker.C:
			status, err := t.source.Status(t.ctx, tx.TransactionHash)
			if err != nil {
				if !errors.Is(err, ethereum.ErrTxNotFound) {
					t.logs.Warnw("poll transaction status",
						"tx_hash", tx.TransactionHash,
						"error", err)
					continue
				}
				if now.Sub(lastSeen) > t.opts.Timeout {
					t.logs.Warnw("transaction lost",
						"tx_hash", tx.TransactionHash,
						"timeout", t.opts.Timeout.String())
					return
				}
				continue
			}

			lastSeen = now
			code := status.EventCode()
			if code == message.TxPending {
				if !pendingSent {
					pendingSent = true
					t.notify(t.ctx, code, tx)
				}
				continue
			}

			t.notify(t.ctx, code, tx)
			return
		}
	}
}

func (t *Tracker) notify(ctx context.Context, code message.EventCode, tx *ethereum.Transaction) {
	text, ok := t.messages.Render(code, tx.Descriptor)
	if !ok {
		t.logs.Debugw("no message for transaction",
			"tx_hash", tx.TransactionHash,
			"method", tx.Descriptor.Contract.MethodName,
			"event_code", code)
		return
	}

	err := t.emitter.Emit(ctx, emitter.Notification{
		TxHash:     tx.TransactionHash,
		MethodName: tx.Descriptor.Contract.MethodName,
		EventCode:  code,
		Message:    text,
		Network:    string(t.network),
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		t.logs.Errorw("emit notification",
			"tx_hash", tx.TransactionHash,
			"event_code", code,
			"error", err)
	}
}
