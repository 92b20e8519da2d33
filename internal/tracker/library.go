package tracker

import (
	"context"
	"errors"
	"sync"

	"txnotify/internal/assist"
	"txnotify/internal/emitter"
	"txnotify/internal/ethereum"

	"go.uber.org/zap"
)

var (
	ErrMissingDappID   error = errors.New("dapp id is required")
	ErrMissingProvider error = errors.New("provider is required")
)

var _ assist.Library = (*Library)(nil)

// Library is the in-process tracking SDK. Transactions handed to any of
// its trackers are watched until they settle or ctx is cancelled.
type Library struct {
	ctx     context.Context
	logs    *zap.SugaredLogger
	decoder *ethereum.Decoder
	emitter emitter.Emitter
	opts    Options
	wg      sync.WaitGroup
}

func NewLibrary(ctx context.Context, logger *zap.SugaredLogger, decoder *ethereum.Decoder, em emitter.Emitter, opts Options) *Library {
	return &Library{
		ctx:     ctx,
		logs:    logger,
		decoder: decoder,
		emitter: em,
		opts:    opts.withDefaults(),
	}
}

func (l *Library) Init(cfg assist.Config) (assist.Handle, error) {
	if cfg.DappID == "" {
		return nil, ErrMissingDappID
	}
	if cfg.Provider == nil {
		return nil, ErrMissingProvider
	}

	source := ethereum.NewEthService(cfg.Provider, l.decoder)
	return newTracker(l.ctx, l.logs, &l.wg, source, l.emitter, cfg, l.opts), nil
}

// Wait blocks until every watched transaction has settled or been dropped.
func (l *Library) Wait() {
	l.wg.Wait()
}
