package ethereum

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var ErrMalformedLog = errors.New("malformed transfer log")

const erc20ABI = `[
	{"constant":true,"inputs":[{"name":"account","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":false,"inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"from","type":"address"},{"indexed":true,"name":"to","type":"address"},{"indexed":false,"name":"value","type":"uint256"}],"name":"Transfer","type":"event"}
]`

var tokenABI = mustParseABI(erc20ABI)

// TransferTopic is the keccak256 id of Transfer(address,address,uint256).
var TransferTopic = tokenABI.Events["Transfer"].ID

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("parse erc20 abi: %s", err))
	}
	return parsed
}

func isTransferLog(lg types.Log) bool {
	return len(lg.Topics) > 0 && lg.Topics[0] == TransferTopic
}

func decodeTransferLog(lg types.Log) (TransferLog, error) {
	if !isTransferLog(lg) || len(lg.Topics) != 3 {
		return TransferLog{}, fmt.Errorf("%w: tx %s index %d: unexpected topics", ErrMalformedLog, lg.TxHash.Hex(), lg.Index)
	}

	values, err := tokenABI.Unpack("Transfer", lg.Data)
	if err != nil {
		return TransferLog{}, fmt.Errorf("%w: tx %s index %d: %w", ErrMalformedLog, lg.TxHash.Hex(), lg.Index, err)
	}
	if len(values) != 1 {
		return TransferLog{}, fmt.Errorf("%w: tx %s index %d: unexpected data", ErrMalformedLog, lg.TxHash.Hex(), lg.Index)
	}
	value, ok := values[0].(*big.Int)
	if !ok {
		return TransferLog{}, fmt.Errorf("%w: tx %s index %d: value is %T", ErrMalformedLog, lg.TxHash.Hex(), lg.Index, values[0])
	}

	return TransferLog{
		TxHash:      strings.ToLower(lg.TxHash.Hex()),
		BlockNumber: lg.BlockNumber,
		TxIndex:     lg.TxIndex,
		LogIndex:    lg.Index,
		Token:       strings.ToLower(lg.Address.Hex()),
		From:        strings.ToLower(common.BytesToAddress(lg.Topics[1].Bytes()).Hex()),
		To:          strings.ToLower(common.BytesToAddress(lg.Topics[2].Bytes()).Hex()),
		Value:       value,
	}, nil
}

func packBalanceOf(account common.Address) ([]byte, error) {
	data, err := tokenABI.Pack("balanceOf", account)
	if err != nil {
		return nil, fmt.Errorf("pack balanceOf: %w", err)
	}
	return data, nil
}

func unpackBalance(data []byte) (*big.Int, error) {
	values, err := tokenABI.Unpack("balanceOf", data)
	if err != nil {
		return nil, fmt.Errorf("unpack balanceOf: %w", err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("unpack balanceOf: got %d values", len(values))
	}
	balance, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unpack balanceOf: value is %T", values[0])
	}
	return balance, nil
}

func packTransfer(to common.Address, amount *big.Int) ([]byte, error) {
	data, err := tokenABI.Pack("transfer", to, amount)
	if err != nil {
		return nil, fmt.Errorf("pack transfer: %w", err)
	}
	return data, nil
}
