package core

import (
	"context"

	"txnotify/internal/assist"
	"txnotify/internal/ethereum"
	"txnotify/internal/repository"
	tokenIssuer "txnotify/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetUserFromDB(ctx context.Context, username string) (repository.User, error)
	GetNotifications(ctx context.Context, txHash string) ([]repository.Notification, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name EthereumService . EthereumService
type EthereumService interface {
	FetchTransactions(ctx context.Context, hashes []string) ([]*ethereum.Transaction, error)
}

//counterfeiter:generate -o fake -fake-name Assistant . Assistant
type Assistant interface {
	OnboardUser(ctx context.Context, provider ethereum.EthClient) error
	DecorateContract(address string) (assist.Contract, error)
	DecorateTransaction(ctx context.Context, hash string) error
}
