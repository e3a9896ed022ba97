package core

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
	"usdcdash/internal/cache"
	"usdcdash/internal/ethereum"
	"usdcdash/internal/explorer"
	"usdcdash/internal/format"
	"usdcdash/internal/metrics"

	"github.com/jellydator/validation"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	sourceLive   = "live"
	sourceRemote = "remote"
)

// Dashboard serves the read side: balances, reconciled transfer history, stats and details.
type Dashboard struct {
	logs   *zap.SugaredLogger
	live   LiveSource
	remote RemoteSource
	chain  ChainReader
	loader *cache.Loader
	token  string
	tracer trace.Tracer
}

// NewDashboard is a constructor function for the Dashboard type.
func NewDashboard(logger *zap.SugaredLogger, live LiveSource, remote RemoteSource, chain ChainReader, loader *cache.Loader, tokenAddress string) *Dashboard {
	return &Dashboard{
		logs:   logger,
		live:   live,
		remote: remote,
		chain:  chain,
		loader: loader,
		token:  strings.ToLower(tokenAddress),
		tracer: otel.Tracer("usdcdash/core"),
	}
}

// Transactions returns the reconciled transfer history of address. The live chain source is
// tried first; the explorer is only asked when the live source fails or finds nothing.
func (d *Dashboard) Transactions(ctx context.Context, address string, filter Filter) ([]Transaction, error) {
	filter = filter.Normalize()
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}

	address = strings.ToLower(address)
	if address == "" {
		return []Transaction{}, nil
	}

	key := cache.NewKey(cache.KindTransactions, address, filter.CacheKey())
	return cache.Fetch(ctx, d.loader, key, func(ctx context.Context) ([]Transaction, error) {
		return d.reconcile(ctx, address, filter)
	})
}

// Stats aggregates the default listing of address.
func (d *Dashboard) Stats(ctx context.Context, address string) (Stats, error) {
	txs, err := d.Transactions(ctx, address, StatsFilter())
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(txs, address), nil
}

// Volume groups the default listing of address per day.
func (d *Dashboard) Volume(ctx context.Context, address string) ([]VolumePoint, error) {
	txs, err := d.Transactions(ctx, address, StatsFilter())
	if err != nil {
		return nil, err
	}
	return VolumeSeries(txs, address, VolumeDays), nil
}

// Balance reads balanceOf from the chain and falls back to the explorer when the node fails.
func (d *Dashboard) Balance(ctx context.Context, address string) (Balance, error) {
	address = strings.ToLower(address)

	key := cache.NewKey(cache.KindBalance, address, "")
	return cache.Fetch(ctx, d.loader, key, func(ctx context.Context) (Balance, error) {
		ctx, span := d.tracer.Start(ctx, "dashboard.balance", trace.WithAttributes(attribute.String("address", address)))
		defer span.End()

		raw, err := d.chainBalance(ctx, address)
		if err != nil {
			d.logs.Warnw("chain balance failed, falling back to explorer",
				"address", address,
				"error", err)

			raw, err = d.remoteBalance(ctx, address)
			if err != nil {
				span.SetStatus(codes.Error, err.Error())
				return Balance{}, err
			}
		}

		return Balance{
			Address:          address,
			Balance:          raw,
			BalanceFormatted: format.Balance(raw, format.TokenDecimals),
		}, nil
	})
}

func (d *Dashboard) chainBalance(ctx context.Context, address string) (raw string, err error) {
	started := time.Now()
	defer func() {
		metrics.ObserveSource(sourceLive, err, started)
	}()

	balance, err := d.chain.BalanceOf(ctx, address)
	if err != nil {
		return "", fmt.Errorf("balance of: %w", err)
	}
	return balance.String(), nil
}

func (d *Dashboard) remoteBalance(ctx context.Context, address string) (raw string, err error) {
	started := time.Now()
	defer func() {
		metrics.ObserveSource(sourceRemote, err, started)
	}()

	balance, err := d.remote.TokenBalance(ctx, address)
	if err != nil {
		if errors.Is(err, explorer.ErrRateLimited) {
			return "", fmt.Errorf("%w: balance: %w", ErrRateLimited, err)
		}
		return "", fmt.Errorf("%w: balance: %w", ErrSourceUnavailable, err)
	}

	if _, ok := new(big.Int).SetString(balance, 10); !ok {
		return "", fmt.Errorf("%w: %w: balance %q", ErrSourceUnavailable, ErrMalformedRecord, balance)
	}
	return balance, nil
}

func (d *Dashboard) TransactionDetails(ctx context.Context, hash string) (TransactionDetails, error) {
	hash = strings.ToLower(hash)

	key := cache.NewKey(cache.KindDetails, "", hash)
	return cache.Fetch(ctx, d.loader, key, func(ctx context.Context) (TransactionDetails, error) {
		ctx, span := d.tracer.Start(ctx, "dashboard.details", trace.WithAttributes(attribute.String("hash", hash)))
		defer span.End()

		lookup, err := d.chain.LookupTransaction(ctx, hash)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			if errors.Is(err, ethereum.ErrTransactionNotFound) {
				return TransactionDetails{}, fmt.Errorf("%w: %s", ErrTransactionNotFound, hash)
			}
			return TransactionDetails{}, fmt.Errorf("%w: details: %w", ErrSourceUnavailable, err)
		}

		return MergeDetails(lookup, d.token), nil
	})
}

// Refresh drops every cached read of address.
func (d *Dashboard) Refresh(ctx context.Context, address string) error {
	if err := d.loader.Invalidate(ctx, cache.Predicate{Address: strings.ToLower(address)}); err != nil {
		return fmt.Errorf("invalidate cache: %w", err)
	}

	d.logs.Infow("cached reads invalidated", "address", address)
	return nil
}

func (d *Dashboard) reconcile(ctx context.Context, address string, filter Filter) ([]Transaction, error) {
	ctx, span := d.tracer.Start(ctx, "dashboard.reconcile", trace.WithAttributes(
		attribute.String("address", address),
		attribute.String("filter", filter.CacheKey()),
	))
	defer span.End()

	txs, err := d.fetchLive(ctx, address, filter)
	if err != nil {
		d.logs.Warnw("live source failed, falling back to explorer",
			"address", address,
			"error", err)
	}

	source := sourceLive
	if len(txs) == 0 {
		source = sourceRemote
		records, err := d.fetchRemote(ctx, address, filter)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		txs, err = NormalizeAll(records)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, source, err)
		}
	}
	txs = Order(txs, filter.Sort)

	span.SetAttributes(attribute.String("source", source), attribute.Int("count", len(txs)))
	d.logs.Infow("transactions reconciled",
		"address", address,
		"source", source,
		"count", len(txs))

	return txs, nil
}

// fetchLive returns the normalized live records. A log that does not normalize fails the
// whole live read.
func (d *Dashboard) fetchLive(ctx context.Context, address string, filter Filter) (txs []Transaction, err error) {
	started := time.Now()
	defer func() {
		metrics.ObserveSource(sourceLive, err, started)
	}()

	var fromBlock uint64
	if filter.StartBlock != nil {
		fromBlock = *filter.StartBlock
	}

	logs, err := d.live.FetchTransferLogs(ctx, address, fromBlock, filter.EndBlock)
	if err != nil {
		return nil, fmt.Errorf("fetch transfer logs: %w", err)
	}

	records := make([]SourceRecord, 0, len(logs))
	for _, lg := range logs {
		records = append(records, FromLog{Log: lg})
	}

	return NormalizeAll(records)
}

func (d *Dashboard) fetchRemote(ctx context.Context, address string, filter Filter) (records []SourceRecord, err error) {
	started := time.Now()
	defer func() {
		metrics.ObserveSource(sourceRemote, err, started)
	}()

	transfers, err := d.remote.TokenTransfers(ctx, explorer.Query{
		Address:    address,
		Page:       filter.Page,
		Offset:     filter.Offset,
		Sort:       filter.Sort,
		StartBlock: filter.StartBlock,
		EndBlock:   filter.EndBlock,
	})
	if err != nil {
		if errors.Is(err, explorer.ErrRateLimited) {
			return nil, fmt.Errorf("%w: %w", ErrRateLimited, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	records = make([]SourceRecord, 0, len(transfers))
	for _, t := range transfers {
		records = append(records, FromRestAPI{Record: t})
	}

	return records, nil
}

// FieldErrors extracts per-field validation messages, if err carries them.
func FieldErrors(err error) (map[string]string, bool) {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	fields := make(map[string]string, len(verrs))
	for field, ferr := range verrs {
		fields[field] = ferr.Error()
	}
	return fields, true
}
