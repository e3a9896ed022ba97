package ethereum

import "math/big"

// TransferLog is a decoded ERC-20 Transfer event.
type TransferLog struct {
	TxHash      string
	BlockNumber uint64
	TxIndex     uint
	LogIndex    uint
	Token       string
	From        string
	To          string
	Value       *big.Int
}

// TransactionLookup gathers everything the node knows about one mined transaction.
type TransactionLookup struct {
	Hash              string
	BlockNumber       uint64
	TxIndex           uint
	From              string
	To                string
	Value             *big.Int
	Input             string
	Gas               uint64
	GasPrice          *big.Int
	GasUsed           uint64
	CumulativeGasUsed uint64
	Status            uint64
	Timestamp         uint64
	Head              uint64
	Transfers         []TransferLog
}

type logsResult struct {
	logs []TransferLog
	err  error
}
