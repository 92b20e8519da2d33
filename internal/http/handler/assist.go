package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"txnotify/internal/assist"
	"txnotify/internal/core"
	"txnotify/internal/ethereum"
	"txnotify/internal/http/handler/middleware"
	"txnotify/internal/http/payload"
	"txnotify/internal/tracker"
	tokenIssuer "txnotify/pkg/jwt"

	"go.uber.org/zap"
)

var (
	Authenticate        = "POST /assist/authenticate"
	FormatMessage       = "POST /assist/messages/{eventCode}"
	TrackTransaction    = "POST /assist/track"
	GetNotifications    = "GET /assist/notifications"
	InspectTransactions = "GET /assist/transactions"
)

type AssistHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	service          AssistService
}

func NewAssistHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, service AssistService) *AssistHandler {
	return &AssistHandler{
		logs:             logger,
		requestValidator: requestValidator,
		service:          service,
	}
}

// Register adds every assist route to mux.
func (h *AssistHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc(Authenticate, h.HandleAuthenticate)
	mux.HandleFunc(FormatMessage, h.HandleFormatMessage)
	mux.HandleFunc(TrackTransaction, h.HandleTrack)
	mux.HandleFunc(GetNotifications, h.HandleGetNotifications)
	mux.HandleFunc(InspectTransactions, h.HandleInspectTransactions)
}

func (h *AssistHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	var req payload.AuthRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.service.Authenticate(r.Context(), req.ToMessage())
	if err != nil {
		resp := Response{Message: "Login failed"}
		httpCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, core.ErrUserNotFound), errors.Is(err, core.ErrIncorrectPassword):
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		default:
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]string{"token": token}, http.StatusOK, requestId)
}

// HandleFormatMessage answers with the message for the path's event code,
// or 204 when the transaction has none.
func (h *AssistHandler) HandleFormatMessage(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())
	eventCode := r.PathValue("eventCode")

	var req payload.MessageRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not format message",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", FormatMessage,
			"request_id", requestId)
		return
	}

	text, err := h.service.FormatMessage(req.ToFormatRequest(eventCode))
	if err != nil {
		if errors.Is(err, core.ErrNoMessage) {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUnknownEvent) {
			httpCode = http.StatusNotFound
		}
		h.respond(w, Response{
			Message: "Could not format message",
			Error:   err.Error(),
		}, httpCode, requestId)
		h.logs.Errorw("failed to format message",
			"error", err,
			"event_code", eventCode,
			"handler", FormatMessage,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{Message: text}, http.StatusOK, requestId)
}

func (h *AssistHandler) HandleTrack(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	authToken := r.Header.Get(authHeader)
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized, requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", TrackTransaction, "request_id", requestId)
		return
	}

	var req payload.TrackRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not track transaction",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", TrackTransaction,
			"request_id", requestId)
		return
	}

	err := h.service.Track(r.Context(), authToken, req.ToCore())
	if err != nil {
		httpCode := trackStatus(err)
		resp := Response{
			Message: "Could not track transaction",
			Error:   err.Error(),
		}
		if httpCode == http.StatusInternalServerError {
			resp.Error = "unexpected error occurred"
		}
		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("failed to track transaction",
			"error", err,
			"tx_hash", req.TransactionHash,
			"handler", TrackTransaction,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Message: "Tracking transaction",
		Data:    map[string]string{"transactionHash": req.TransactionHash},
	}, http.StatusAccepted, requestId)
}

func trackStatus(err error) int {
	switch {
	case errors.Is(err, tokenIssuer.ErrTokenNotValid),
		errors.Is(err, tokenIssuer.ErrTokenExpired),
		errors.Is(err, tokenIssuer.ErrMissingSubject):
		return http.StatusUnauthorized
	case errors.Is(err, ethereum.ErrTxNotFound):
		return http.StatusNotFound
	case errors.Is(err, tracker.ErrContractMismatch),
		errors.Is(err, ethereum.ErrUnknownMethod),
		errors.Is(err, ethereum.ErrShortCalldata):
		return http.StatusUnprocessableEntity
	case errors.Is(err, assist.ErrNotInitialized):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (h *AssistHandler) HandleGetNotifications(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	req := payload.NotificationsRequest{
		TransactionHash: r.URL.Query().Get("transactionHash"),
	}
	if err := req.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate request: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to validate request",
			"error", err,
			"handler", GetNotifications,
			"request_id", requestId)
		return
	}

	notifications, err := h.service.GetNotifications(r.Context(), req.TransactionHash)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve notifications",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to get notifications",
			"error", err,
			"handler", GetNotifications,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string][]core.NotificationRecord{
		"notifications": notifications,
	}, http.StatusOK, requestId)
}

func (h *AssistHandler) HandleInspectTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestID(r.Context())

	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   fmt.Errorf("parse query parameters: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to parse query parameters", "error", err, "handler", InspectTransactions, "request_id", requestId)
		return
	}

	txRequest := payload.TransactionsRequest{
		Transactions: values["transactionHashes"],
	}
	if err := txRequest.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate request: %w", err).Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to validate request",
			"error", err,
			"handler", InspectTransactions,
			"request_id", requestId)
		return
	}

	reports, err := h.service.Inspect(r.Context(), txRequest.Transactions)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   fmt.Errorf("inspect transactions: %w", err).Error(),
		}, http.StatusBadGateway, requestId)
		h.logs.Errorw("failed to inspect transactions",
			"error", err,
			"handler", InspectTransactions,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string][]core.TransactionReport{
		"transactions": reports,
	}, http.StatusOK, requestId)
}

func (h *AssistHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	body, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(append(body, '\n')); err != nil {
		h.logs.Errorw("failed to write response",
			"error", err,
			"request_id", requestId)
	}
}
