package core

import (
	"context"
	"math/big"
	"usdcdash/internal/cache"
	"usdcdash/internal/ethereum"
	"usdcdash/internal/explorer"
	"usdcdash/internal/repository"
	tokenIssuer "usdcdash/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetOperator(ctx context.Context, username string) (repository.Operator, error)
	CreateTransfer(ctx context.Context, transfer repository.Transfer) error
	UpdateTransfer(ctx context.Context, transfer repository.Transfer) error
	GetTransfer(ctx context.Context, id string) (repository.Transfer, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name LiveSource . LiveSource
type LiveSource interface {
	FetchTransferLogs(ctx context.Context, address string, fromBlock uint64, toBlock *uint64) ([]ethereum.TransferLog, error)
}

//counterfeiter:generate -o fake -fake-name RemoteSource . RemoteSource
type RemoteSource interface {
	TokenBalance(ctx context.Context, address string) (string, error)
	TokenTransfers(ctx context.Context, q explorer.Query) ([]explorer.TokenTransfer, error)
}

//counterfeiter:generate -o fake -fake-name ChainReader . ChainReader
type ChainReader interface {
	BalanceOf(ctx context.Context, address string) (*big.Int, error)
	LookupTransaction(ctx context.Context, hash string) (ethereum.TransactionLookup, error)
}

//counterfeiter:generate -o fake -fake-name TransferSender . TransferSender
type TransferSender interface {
	From() string
	SendTransfer(ctx context.Context, recipient string, amount *big.Int) (string, error)
	WaitReceipt(ctx context.Context, txHash string) (uint64, error)
}

//counterfeiter:generate -o fake -fake-name CacheInvalidator . CacheInvalidator
type CacheInvalidator interface {
	Invalidate(ctx context.Context, p cache.Predicate) error
}
