package handler

import (
	"context"
	"net/http"

	"txnotify/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name AssistService . AssistService
type AssistService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	FormatMessage(req core.FormatRequest) (string, error)
	Track(ctx context.Context, token string, req core.TrackRequest) error
	GetNotifications(ctx context.Context, txHash string) ([]core.NotificationRecord, error)
	Inspect(ctx context.Context, hashes []string) ([]core.TransactionReport, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
