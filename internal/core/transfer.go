package core

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"sync"
	"time"
	"usdcdash/internal/cache"
	"usdcdash/internal/ethereum"
	"usdcdash/internal/format"
	"usdcdash/internal/metrics"
	"usdcdash/internal/repository"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/jellydator/validation"
	"go.uber.org/zap"
)

type TransferState string

const (
	TransferIdle      TransferState = "idle"
	TransferPending   TransferState = "pending"
	TransferSubmitted TransferState = "submitted"
	TransferConfirmed TransferState = "confirmed"
	TransferFailed    TransferState = "failed"
)

// MaxTransferAmount is the largest amount accepted in one transfer, in whole tokens.
const MaxTransferAmount = 1_000_000

var addressRegexp = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

type TransferRequest struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

func (r TransferRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Recipient, validation.Required, validation.Match(addressRegexp)),
		validation.Field(&r.Amount, validation.Required, validation.By(validAmount)),
	)
}

func validAmount(value any) error {
	amount, _ := value.(string)
	raw, ok := format.ParseUnits(amount, format.TokenDecimals)
	if !ok {
		return fmt.Errorf("must be a decimal number with at most %d fraction digits", format.TokenDecimals)
	}
	if raw.Sign() <= 0 {
		return errors.New("must be greater than zero")
	}
	if raw.Cmp(maxTransferRaw) > 0 {
		return fmt.Errorf("must not exceed %d", MaxTransferAmount)
	}
	return nil
}

var maxTransferRaw = new(big.Int).Mul(
	big.NewInt(MaxTransferAmount),
	new(big.Int).Exp(big.NewInt(10), big.NewInt(format.TokenDecimals), nil),
)

type Transfer struct {
	ID        string        `json:"id"`
	From      string        `json:"from"`
	Recipient string        `json:"recipient"`
	Amount    string        `json:"amount"`
	AmountRaw string        `json:"amountRaw"`
	State     TransferState `json:"state"`
	TxHash    string        `json:"txHash,omitempty"`
	Error     string        `json:"error,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// TransferWorkflow signs and broadcasts token transfers and tracks them to confirmation.
type TransferWorkflow struct {
	logs           *zap.SugaredLogger
	repo           Repository
	sender         TransferSender
	cache          CacheInvalidator
	confirmTimeout time.Duration

	base   context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewTransferWorkflow is a constructor function for the TransferWorkflow type.
// A nil sender leaves the workflow readable but refusing submissions.
func NewTransferWorkflow(logger *zap.SugaredLogger, repo Repository, sender TransferSender, invalidator CacheInvalidator, confirmTimeout time.Duration) *TransferWorkflow {
	base, cancel := context.WithCancel(context.Background())
	return &TransferWorkflow{
		logs:           logger,
		repo:           repo,
		sender:         sender,
		cache:          invalidator,
		confirmTimeout: confirmTimeout,
		base:           base,
		cancel:         cancel,
	}
}

// Submit validates req, records the transfer as pending, then signs and broadcasts it.
// On success the transfer is returned as submitted while confirmation is awaited in the background.
// A signing or broadcast failure is recorded and returned alongside the failed transfer.
func (w *TransferWorkflow) Submit(ctx context.Context, req TransferRequest) (Transfer, error) {
	if err := req.Validate(); err != nil {
		return Transfer{}, fmt.Errorf("%w: %w", ErrInvalidTransfer, err)
	}

	if w.sender == nil {
		return Transfer{}, ErrTransfersDisabled
	}
	if w.isClosed() {
		return Transfer{}, fmt.Errorf("%w: shutting down", ErrTransfersDisabled)
	}

	raw, _ := format.ParseUnits(req.Amount, format.TokenDecimals)
	now := TimeNow().UTC()
	transfer := Transfer{
		ID:        uuid.NewString(),
		From:      strings.ToLower(w.sender.From()),
		Recipient: strings.ToLower(req.Recipient),
		Amount:    strings.TrimSpace(req.Amount),
		AmountRaw: raw.String(),
		State:     TransferPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := w.repo.CreateTransfer(ctx, toRepoTransfer(transfer)); err != nil {
		return Transfer{}, fmt.Errorf("create transfer: %w", err)
	}
	metrics.ObserveTransfer(string(TransferPending))

	w.logs.Infow("transfer pending",
		"transfer_id", transfer.ID,
		"recipient", transfer.Recipient,
		"amount", transfer.Amount)

	txHash, err := w.sender.SendTransfer(ctx, transfer.Recipient, raw)
	if err != nil {
		cause := ErrBroadcastFailed
		if errors.Is(err, ethereum.ErrSignatureRejected) {
			cause = ErrSignatureRejected
		}
		transfer = w.transition(ctx, transfer, TransferFailed, "", err.Error())
		return transfer, fmt.Errorf("%w: %w", cause, err)
	}

	transfer = w.transition(ctx, transfer, TransferSubmitted, txHash, "")

	if !w.track() {
		w.logs.Warnw("shutting down, confirmation not awaited",
			"transfer_id", transfer.ID,
			"tx_hash", transfer.TxHash)
		return transfer, nil
	}
	go w.awaitConfirmation(transfer)

	return transfer, nil
}

// track registers a confirmation wait unless Close has started.
func (w *TransferWorkflow) track() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return false
	}
	w.wg.Add(1)
	return true
}

func (w *TransferWorkflow) isClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

func (w *TransferWorkflow) Get(ctx context.Context, id string) (Transfer, error) {
	t, err := w.repo.GetTransfer(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTransferNotFound) {
			return Transfer{}, fmt.Errorf("%w: %s", ErrTransferNotFound, id)
		}
		return Transfer{}, fmt.Errorf("get transfer: %w", err)
	}
	return fromRepoTransfer(t), nil
}

// Close stops waiting on outstanding receipts and returns once every wait has ended.
// Transfers still waiting are left submitted.
func (w *TransferWorkflow) Close() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()

	w.cancel()
	w.wg.Wait()
}

func (w *TransferWorkflow) awaitConfirmation(transfer Transfer) {
	defer w.wg.Done()

	ctx, cancel := context.WithTimeout(w.base, w.confirmTimeout)
	defer cancel()

	status, err := w.sender.WaitReceipt(ctx, transfer.TxHash)
	if err != nil {
		if errors.Is(err, context.Canceled) && w.base.Err() != nil {
			w.logs.Warnw("confirmation wait abandoned on shutdown",
				"transfer_id", transfer.ID,
				"tx_hash", transfer.TxHash)
			return
		}
		w.transition(w.base, transfer, TransferFailed, transfer.TxHash, err.Error())
		return
	}

	if status != types.ReceiptStatusSuccessful {
		w.transition(w.base, transfer, TransferFailed, transfer.TxHash, "transaction reverted")
		return
	}

	w.transition(w.base, transfer, TransferConfirmed, transfer.TxHash, "")

	for _, address := range []string{transfer.From, transfer.Recipient} {
		err := w.cache.Invalidate(w.base, cache.Predicate{Address: address})
		if err != nil {
			w.logs.Errorw("invalidate cached reads after confirmation",
				"transfer_id", transfer.ID,
				"address", address,
				"error", err)
		}
	}
}

// transition moves the transfer to state and persists it. A persistence failure is logged;
// the in-memory transition still stands so callers see the chain outcome.
func (w *TransferWorkflow) transition(ctx context.Context, t Transfer, state TransferState, txHash, reason string) Transfer {
	t.State = state
	t.TxHash = txHash
	t.Error = reason
	t.UpdatedAt = TimeNow().UTC()

	if err := w.repo.UpdateTransfer(ctx, toRepoTransfer(t)); err != nil {
		w.logs.Errorw("persist transfer state",
			"transfer_id", t.ID,
			"state", state,
			"error", err)
	}
	metrics.ObserveTransfer(string(state))

	w.logs.Infow("transfer state changed",
		"transfer_id", t.ID,
		"state", state,
		"tx_hash", txHash,
		"reason", reason)

	return t
}

func toRepoTransfer(t Transfer) repository.Transfer {
	return repository.Transfer{
		ID:        t.ID,
		From:      t.From,
		Recipient: t.Recipient,
		Amount:    t.Amount,
		AmountRaw: t.AmountRaw,
		State:     string(t.State),
		TxHash:    t.TxHash,
		Error:     t.Error,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func fromRepoTransfer(t repository.Transfer) Transfer {
	return Transfer{
		ID:        t.ID,
		From:      t.From,
		Recipient: t.Recipient,
		Amount:    t.Amount,
		AmountRaw: t.AmountRaw,
		State:     TransferState(t.State),
		TxHash:    t.TxHash,
		Error:     t.Error,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
