package handler

import (
	"context"
	"net/http"
	"usdcdash/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name DashboardService . DashboardService
type DashboardService interface {
	Transactions(ctx context.Context, address string, filter core.Filter) ([]core.Transaction, error)
	Stats(ctx context.Context, address string) (core.Stats, error)
	Volume(ctx context.Context, address string) ([]core.VolumePoint, error)
	Balance(ctx context.Context, address string) (core.Balance, error)
	TransactionDetails(ctx context.Context, hash string) (core.TransactionDetails, error)
	Refresh(ctx context.Context, address string) error
}

//counterfeiter:generate -o fake -fake-name TransferService . TransferService
type TransferService interface {
	Submit(ctx context.Context, req core.TransferRequest) (core.Transfer, error)
	Get(ctx context.Context, id string) (core.Transfer, error)
}

//counterfeiter:generate -o fake -fake-name AuthService . AuthService
type AuthService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	Authorize(token string) (string, error)
}
