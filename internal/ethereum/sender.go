package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

var (
	ErrSignatureRejected = errors.New("signature rejected")
	ErrBroadcastFailed   = errors.New("broadcast failed")
	ErrReceiptTimeout    = errors.New("receipt wait timed out")
)

// gasLimitFactor pads the node's estimate by 10%.
const gasLimitFactor = 110

// TransferSender builds, signs and broadcasts token transfer calls.
type TransferSender struct {
	logs         *zap.SugaredLogger
	client       EthClient
	signer       Signer
	token        common.Address
	pollInterval time.Duration
}

func NewTransferSender(logger *zap.SugaredLogger, ethClient EthClient, signer Signer, tokenAddress string, pollInterval time.Duration) *TransferSender {
	return &TransferSender{
		logs:         logger,
		client:       ethClient,
		signer:       signer,
		token:        common.HexToAddress(tokenAddress),
		pollInterval: pollInterval,
	}
}

// From is the lower-cased address of the wallet that signs transfers.
func (s *TransferSender) From() string {
	return strings.ToLower(s.signer.Address().Hex())
}

// SendTransfer submits transfer(recipient, amount) to the token contract and returns the tx hash.
func (s *TransferSender) SendTransfer(ctx context.Context, recipient string, amount *big.Int) (string, error) {
	data, err := packTransfer(common.HexToAddress(recipient), amount)
	if err != nil {
		return "", err
	}

	from := s.signer.Address()

	nonce, err := s.client.PendingNonceAt(ctx, from)
	if err != nil {
		return "", fmt.Errorf("%w: get nonce: %w", ErrBroadcastFailed, err)
	}

	gasPrice, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: suggest gas price: %w", ErrBroadcastFailed, err)
	}

	gasLimit, err := s.client.EstimateGas(ctx, geth.CallMsg{
		From: from,
		To:   &s.token,
		Data: data,
	})
	if err != nil {
		return "", fmt.Errorf("%w: estimate gas: %w", ErrBroadcastFailed, err)
	}
	gasLimit = gasLimit * gasLimitFactor / 100

	chainID, err := s.client.ChainID(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: get chain id: %w", ErrBroadcastFailed, err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gasLimit,
		To:       &s.token,
		Value:    big.NewInt(0),
		Data:     data,
	})

	signed, err := s.signer.SignTx(tx, chainID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSignatureRejected, err)
	}

	if err := s.client.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("%w: %w", ErrBroadcastFailed, err)
	}

	hash := strings.ToLower(signed.Hash().Hex())
	s.logs.Infow("transfer broadcast",
		"tx_hash", hash,
		"nonce", nonce,
		"gas_limit", gasLimit)

	return hash, nil
}

// WaitReceipt polls for the receipt until it is mined or ctx ends and returns its status.
func (s *TransferSender) WaitReceipt(ctx context.Context, txHash string) (uint64, error) {
	hash := common.HexToHash(txHash)

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := s.client.TransactionReceipt(ctx, hash)
		switch {
		case err == nil:
			return receipt.Status, nil
		case errors.Is(err, geth.NotFound):
		default:
			s.logs.Warnw("receipt lookup failed",
				"tx_hash", txHash,
				"error", err)
		}

		select {
		case <-ctx.Done():
			return 0, fmt.Errorf("%w: %w", ErrReceiptTimeout, ctx.Err())
		case <-ticker.C:
		}
	}
}
