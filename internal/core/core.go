package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"txnotify/internal/addresses"
	"txnotify/internal/ethereum"
	"txnotify/internal/message"
	"txnotify/internal/repository"
	tokenIssuer "txnotify/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrIncorrectPassword error = errors.New("incorrect password")
	ErrUserNotFound      error = errors.New("user not found")
	ErrUnknownEvent      error = errors.New("unknown event code")
	ErrNoMessage         error = errors.New("no message for transaction")
)

const tokenTTL = 24 * time.Hour

// Service ties operator auth, message formatting and transaction tracking
// together for the HTTP layer.
type Service struct {
	logs       *zap.SugaredLogger
	repo       Repository
	jwtIssuer  JWTIssuer
	ethService EthereumService
	assistant  Assistant
	provider   ethereum.EthClient
	table      *addresses.Table
}

func NewService(
	logger *zap.SugaredLogger,
	repo Repository,
	jwt JWTIssuer,
	ethereumService EthereumService,
	assistant Assistant,
	provider ethereum.EthClient,
	table *addresses.Table,
) *Service {
	return &Service{
		logs:       logger,
		repo:       repo,
		jwtIssuer:  jwt,
		ethService: ethereumService,
		assistant:  assistant,
		provider:   provider,
		table:      table,
	}
}

// Authenticate checks the operator credentials and returns a signed token.
func (s *Service) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := s.repo.GetUserFromDB(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	token := s.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		Username: user.Username,
		Subject:  user.ID,
		TTL:      tokenTTL,
	})
	signed, err := s.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// FormatMessage renders the message of req.EventCode for the descriptor.
func (s *Service) FormatMessage(req FormatRequest) (string, error) {
	code, ok := message.ParseEventCode(req.EventCode)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEvent, req.EventCode)
	}

	text, ok := message.Format(req.Descriptor.Contract.MethodName, code, req.Descriptor, s.table)
	if !ok {
		return "", ErrNoMessage
	}
	return text, nil
}

// Onboard initialises the tracking library against the node.
func (s *Service) Onboard(ctx context.Context) error {
	if err := s.assistant.OnboardUser(ctx, s.provider); err != nil {
		return err
	}
	s.logs.Infow("onboarding complete")
	return nil
}

// Track starts watching a transaction on behalf of the token's operator.
func (s *Service) Track(ctx context.Context, token string, req TrackRequest) error {
	claims, err := s.jwtIssuer.Validate(token)
	if err != nil {
		return fmt.Errorf("validate jwt token: %w", err)
	}
	userID, err := tokenIssuer.Subject(claims)
	if err != nil {
		return fmt.Errorf("validate jwt token: %w", err)
	}

	if req.Contract != "" {
		contract, err := s.assistant.DecorateContract(req.Contract)
		if err != nil {
			return fmt.Errorf("decorate contract: %w", err)
		}
		if err := contract.Track(ctx, req.TransactionHash); err != nil {
			return fmt.Errorf("track contract transaction: %w", err)
		}
	} else if err := s.assistant.DecorateTransaction(ctx, req.TransactionHash); err != nil {
		return err
	}

	s.logs.Infow("tracking transaction",
		"userId", userID,
		"tx_hash", req.TransactionHash,
		"contract", req.Contract)
	return nil
}

func (s *Service) GetNotifications(ctx context.Context, txHash string) ([]NotificationRecord, error) {
	notifications, err := s.repo.GetNotifications(ctx, txHash)
	if err != nil {
		return nil, fmt.Errorf("get notifications: %w", err)
	}

	records := make([]NotificationRecord, len(notifications))
	for i, n := range notifications {
		records[i] = NotificationRecord{
			TransactionHash: n.TransactionHash,
			MethodName:      n.MethodName,
			EventCode:       n.EventCode,
			Message:         n.Message,
			Network:         n.Network,
			CreatedAt:       n.CreatedAt,
		}
	}
	return records, nil
}

// Inspect fetches transactions from the node and pairs each with the
// message for its current status, in the order the hashes were given.
// Lookup failures are logged; an error is returned only when nothing
// could be fetched.
func (s *Service) Inspect(ctx context.Context, hashes []string) ([]TransactionReport, error) {
	txs, err := s.ethService.FetchTransactions(ctx, hashes)
	if err != nil {
		if len(txs) == 0 {
			return nil, fmt.Errorf("fetch transactions: %w", err)
		}
		s.logs.Errorw("getting transactions from node", "error", err)
	}

	byHash := make(map[string]*ethereum.Transaction, len(txs))
	for _, tx := range txs {
		byHash[strings.ToLower(tx.TransactionHash)] = tx
	}

	reports := make([]TransactionReport, 0, len(txs))
	for _, hash := range hashes {
		tx, ok := byHash[strings.ToLower(hash)]
		if !ok {
			continue
		}
		delete(byHash, strings.ToLower(hash))

		code := tx.Status.EventCode()
		text, _ := message.Format(tx.Descriptor.Contract.MethodName, code, tx.Descriptor, s.table)
		reports = append(reports, TransactionReport{
			Transaction: tx,
			EventCode:   code,
			Message:     text,
		})
	}

	s.logs.Infow("transactions inspected", "requested", len(hashes), "found", len(reports))
	return reports, nil
}
