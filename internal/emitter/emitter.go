package emitter

import (
	"context"
	"errors"
	"fmt"

	"txnotify/internal/repository"

	"go.uber.org/zap"
)

var ErrEmitterClosed error = errors.New("emitter closed")

// LogEmitter writes notifications to the service log.
type LogEmitter struct {
	logs *zap.SugaredLogger
}

func NewLogEmitter(logger *zap.SugaredLogger) *LogEmitter {
	return &LogEmitter{logs: logger}
}

func (e *LogEmitter) Emit(_ context.Context, n Notification) error {
	e.logs.Infow(n.Message,
		"tx_hash", n.TxHash,
		"method", n.MethodName,
		"event_code", n.EventCode,
		"network", n.Network)
	return nil
}

// StoreEmitter persists notifications so they can be listed later.
type StoreEmitter struct {
	store Store
}

func NewStoreEmitter(store Store) *StoreEmitter {
	return &StoreEmitter{store: store}
}

func (e *StoreEmitter) Emit(ctx context.Context, n Notification) error {
	err := e.store.SaveNotification(ctx, repository.Notification{
		TransactionHash: n.TxHash,
		MethodName:      n.MethodName,
		EventCode:       string(n.EventCode),
		Message:         n.Message,
		Network:         n.Network,
		CreatedAt:       n.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("save notification: %w", err)
	}
	return nil
}

// Multi hands every notification to all of its emitters.
type Multi []Emitter

func (m Multi) Emit(ctx context.Context, n Notification) error {
	var aggrErr error
	for _, e := range m {
		if err := e.Emit(ctx, n); err != nil {
			aggrErr = errors.Join(aggrErr, err)
		}
	}
	return aggrErr
}
