package core

import "errors"

var (
	ErrInvalidFilter       = errors.New("invalid transaction filter")
	ErrInvalidTransfer     = errors.New("invalid transfer request")
	ErrSourceUnavailable   = errors.New("transaction source unavailable")
	ErrRateLimited         = errors.New("transaction source rate limited")
	ErrMalformedRecord     = errors.New("malformed transaction record")
	ErrUnknownSource       = errors.New("unknown source record")
	ErrSignatureRejected   = errors.New("signature rejected")
	ErrBroadcastFailed     = errors.New("broadcast failed")
	ErrTransferNotFound    = errors.New("transfer not found")
	ErrTransfersDisabled   = errors.New("transfers are disabled")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrIncorrectPassword   = errors.New("incorrect password")
	ErrUserNotFound        = errors.New("user not found")
	ErrUnauthorized        = errors.New("unauthorized")
)
