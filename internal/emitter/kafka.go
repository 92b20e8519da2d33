package emitter

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// writerBatchTimeout bounds how long a single notification waits for a
// batch to fill before it is flushed.
const writerBatchTimeout = 10 * time.Millisecond

// KafkaEmitter publishes notifications keyed by transaction hash.
type KafkaEmitter struct {
	logs   *zap.SugaredLogger
	writer MessageWriter
	mu     sync.Mutex
}

func NewKafkaEmitter(logger *zap.SugaredLogger, brokerAddress, topic string) *KafkaEmitter {
	return NewKafkaEmitterWithWriter(logger, &kafka.Writer{
		Addr:         kafka.TCP(brokerAddress),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: writerBatchTimeout,
	})
}

func NewKafkaEmitterWithWriter(logger *zap.SugaredLogger, writer MessageWriter) *KafkaEmitter {
	return &KafkaEmitter{
		logs:   logger,
		writer: writer,
	}
}

func (k *KafkaEmitter) Emit(ctx context.Context, n Notification) error {
	k.mu.Lock()
	writer := k.writer
	k.mu.Unlock()

	if writer == nil {
		return ErrEmitterClosed
	}

	value, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	err = writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(n.TxHash),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("write message to kafka: %w", err)
	}

	k.logs.Debugw("notification published",
		"tx_hash", n.TxHash,
		"event_code", n.EventCode)
	return nil
}

func (k *KafkaEmitter) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.writer != nil {
		err := k.writer.Close()
		k.writer = nil
		return err
	}
	return nil
}
