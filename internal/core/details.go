package core

import (
	"strconv"
	"strings"
	"time"
	"usdcdash/internal/ethereum"
	"usdcdash/internal/format"
)

const transferSelector = "0xa9059cbb"

// MergeDetails builds the detail view of one transaction. A token Transfer event in the
// receipt replaces the raw from, to and value, which describe the native-currency call.
func MergeDetails(lookup ethereum.TransactionLookup, tokenAddress string) TransactionDetails {
	token := strings.ToLower(tokenAddress)

	from, to := lookup.From, lookup.To
	value := "0"
	if lookup.Value != nil {
		value = lookup.Value.String()
	}

	isToken := strings.ToLower(lookup.To) == token
	for _, lg := range lookup.Transfers {
		if strings.ToLower(lg.Token) != token || lg.Value == nil {
			continue
		}
		from, to, value = lg.From, lg.To, lg.Value.String()
		isToken = true
		break
	}

	details := TransactionDetails{
		Transaction: Transaction{
			Hash:              strings.ToLower(lookup.Hash),
			BlockNumber:       lookup.BlockNumber,
			TimeStamp:         unixTime(lookup.Timestamp),
			From:              strings.ToLower(from),
			To:                strings.ToLower(to),
			Value:             value,
			TransactionIndex:  lookup.TxIndex,
			Gas:               strconv.FormatUint(lookup.Gas, 10),
			GasPrice:          "0",
			GasUsed:           strconv.FormatUint(lookup.GasUsed, 10),
			CumulativeGasUsed: strconv.FormatUint(lookup.CumulativeGasUsed, 10),
			Input:             orDefault(lookup.Input, "0x"),
			Confirmations:     confirmations(lookup.Head, lookup.BlockNumber),
		},
		Status:  lookup.Status,
		IsError: "0",
	}
	if lookup.GasPrice != nil {
		details.GasPrice = lookup.GasPrice.String()
	}
	if lookup.Status == 0 {
		details.IsError = "1"
	}

	decimals := format.EtherDecimals
	if isToken {
		decimals = format.TokenDecimals
		details.ContractAddress = token
		details.TokenName = TokenName
		details.TokenSymbol = TokenSymbol
	}
	details.ValueFormatted = format.Balance(value, decimals)
	details.Display = DetailsDisplay{
		Hash:      format.TransactionHash(details.Hash),
		From:      format.Address(details.From, 0),
		To:        format.Address(details.To, 0),
		Amount:    format.Units(value, decimals),
		TimeStamp: format.DateTime(details.TimeStamp),
		GasPrice:  format.GasPrice(details.GasPrice),
		GasUsed:   format.GasUsed(details.GasUsed),
	}

	if len(details.Input) >= 10 {
		details.MethodID = details.Input[:10]
	}
	if isToken && strings.HasPrefix(details.Input, transferSelector) {
		details.FunctionName = "transfer"
	}

	return details
}

func confirmations(head, block uint64) string {
	if head <= block {
		return "0"
	}
	return strconv.FormatUint(head-block, 10)
}

func unixTime(seconds uint64) time.Time {
	if seconds == 0 {
		return time.Time{}
	}
	return time.Unix(int64(seconds), 0).UTC()
}
