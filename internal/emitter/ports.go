package emitter

import (
	"context"

	"txnotify/internal/repository"

	"github.com/segmentio/kafka-go"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Emitter . Emitter
type Emitter interface {
	Emit(ctx context.Context, n Notification) error
}

//counterfeiter:generate -o fake -fake-name MessageWriter . MessageWriter
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	SaveNotification(ctx context.Context, n repository.Notification) error
}
