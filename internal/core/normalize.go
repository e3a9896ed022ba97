package core

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
	"usdcdash/internal/ethereum"
	"usdcdash/internal/explorer"
	"usdcdash/internal/format"
)

// TimeNow stamps records read from live logs, which carry no block time.
var TimeNow = time.Now

// SourceRecord is a raw record from one of the transaction sources. The set of variants is
// closed: FromLog and FromRestAPI.
type SourceRecord interface {
	sourceRecord()
}

// FromLog is a Transfer event read from the chain.
type FromLog struct {
	Log ethereum.TransferLog
}

// FromRestAPI is a row returned by the block explorer.
type FromRestAPI struct {
	Record explorer.TokenTransfer
}

func (FromLog) sourceRecord()     {}
func (FromRestAPI) sourceRecord() {}

// Normalize maps a source record into the canonical shape. Fields a source cannot provide
// get explicit sentinels.
func Normalize(rec SourceRecord) (Transaction, error) {
	switch r := rec.(type) {
	case FromLog:
		return fromLog(r.Log)
	case FromRestAPI:
		return fromRestAPI(r.Record)
	default:
		return Transaction{}, fmt.Errorf("%w: %T", ErrUnknownSource, rec)
	}
}

// NormalizeAll stops at the first record that cannot be normalized.
func NormalizeAll(records []SourceRecord) ([]Transaction, error) {
	txs := make([]Transaction, 0, len(records))
	for i, rec := range records {
		tx, err := Normalize(rec)
		if err != nil {
			return nil, fmt.Errorf("normalize record %d: %w", i, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func fromLog(lg ethereum.TransferLog) (Transaction, error) {
	if lg.TxHash == "" || lg.Value == nil || lg.Value.Sign() < 0 {
		return Transaction{}, fmt.Errorf("%w: log %q without hash or value", ErrMalformedRecord, lg.TxHash)
	}

	value := lg.Value.String()
	return Transaction{
		Hash:              strings.ToLower(lg.TxHash),
		BlockNumber:       lg.BlockNumber,
		TimeStamp:         TimeNow().UTC(),
		From:              strings.ToLower(lg.From),
		To:                strings.ToLower(lg.To),
		Value:             value,
		ValueFormatted:    format.Balance(value, format.TokenDecimals),
		ContractAddress:   strings.ToLower(lg.Token),
		TokenName:         TokenName,
		TokenSymbol:       TokenSymbol,
		TransactionIndex:  lg.TxIndex,
		Gas:               "0",
		GasPrice:          "0",
		GasUsed:           "0",
		CumulativeGasUsed: "0",
		Input:             "0x",
		Confirmations:     "0",
	}, nil
}

func fromRestAPI(r explorer.TokenTransfer) (Transaction, error) {
	if r.Hash == "" {
		return Transaction{}, fmt.Errorf("%w: record without hash", ErrMalformedRecord)
	}

	blockNumber, err := strconv.ParseUint(r.BlockNumber, 10, 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %s: block number %q", ErrMalformedRecord, r.Hash, r.BlockNumber)
	}

	txIndex, err := strconv.ParseUint(r.TransactionIndex, 10, 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %s: transaction index %q", ErrMalformedRecord, r.Hash, r.TransactionIndex)
	}

	seconds, err := strconv.ParseInt(r.TimeStamp, 10, 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %s: timestamp %q", ErrMalformedRecord, r.Hash, r.TimeStamp)
	}

	value, ok := new(big.Int).SetString(r.Value, 10)
	if !ok || value.Sign() < 0 {
		return Transaction{}, fmt.Errorf("%w: %s: value %q", ErrMalformedRecord, r.Hash, r.Value)
	}

	tokenName, tokenSymbol := r.TokenName, r.TokenSymbol
	if tokenName == "" {
		tokenName = TokenName
	}
	if tokenSymbol == "" {
		tokenSymbol = TokenSymbol
	}

	return Transaction{
		Hash:              strings.ToLower(r.Hash),
		BlockNumber:       blockNumber,
		TimeStamp:         time.Unix(seconds, 0).UTC(),
		From:              strings.ToLower(r.From),
		To:                strings.ToLower(r.To),
		Value:             value.String(),
		ValueFormatted:    format.Balance(value.String(), format.TokenDecimals),
		ContractAddress:   strings.ToLower(r.ContractAddress),
		TokenName:         tokenName,
		TokenSymbol:       tokenSymbol,
		TransactionIndex:  uint(txIndex),
		Gas:               orZero(r.Gas),
		GasPrice:          orZero(r.GasPrice),
		GasUsed:           orZero(r.GasUsed),
		CumulativeGasUsed: orZero(r.CumulativeGasUsed),
		Input:             orDefault(r.Input, "0x"),
		Confirmations:     orZero(r.Confirmations),
	}, nil
}

func orZero(s string) string {
	return orDefault(s, "0")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
