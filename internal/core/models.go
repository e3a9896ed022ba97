package core

import "time"

const (
	TokenName   = "USD Coin"
	TokenSymbol = "USDC"
)

// Transaction is the canonical token transfer record, whichever source it came from.
// Numeric chain values stay base-10 strings so no precision is lost.
type Transaction struct {
	Hash              string    `json:"hash"`
	BlockNumber       uint64    `json:"blockNumber"`
	TimeStamp         time.Time `json:"timeStamp"`
	From              string    `json:"from"`
	To                string    `json:"to"`
	Value             string    `json:"value"`
	ValueFormatted    string    `json:"valueFormatted"`
	ContractAddress   string    `json:"contractAddress"`
	TokenName         string    `json:"tokenName"`
	TokenSymbol       string    `json:"tokenSymbol"`
	TransactionIndex  uint      `json:"transactionIndex"`
	Gas               string    `json:"gas"`
	GasPrice          string    `json:"gasPrice"`
	GasUsed           string    `json:"gasUsed"`
	CumulativeGasUsed string    `json:"cumulativeGasUsed"`
	Input             string    `json:"input"`
	Confirmations     string    `json:"confirmations"`
}

type TransactionDetails struct {
	Transaction
	MethodID     string         `json:"methodId"`
	FunctionName string         `json:"functionName"`
	Status       uint64         `json:"status"`
	IsError      string         `json:"isError"`
	Display      DetailsDisplay `json:"display"`
}

// DetailsDisplay holds the human-readable renderings of a transaction's fields.
type DetailsDisplay struct {
	Hash      string  `json:"hash"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Amount    float64 `json:"amount"`
	TimeStamp string  `json:"timeStamp"`
	GasPrice  string  `json:"gasPrice"`
	GasUsed   string  `json:"gasUsed"`
}

type Stats struct {
	TotalTransactions int     `json:"totalTransactions"`
	TotalSent         float64 `json:"totalSent"`
	TotalReceived     float64 `json:"totalReceived"`
	TotalSentRaw      string  `json:"totalSentRaw"`
	TotalReceivedRaw  string  `json:"totalReceivedRaw"`
}

type VolumePoint struct {
	Date     string  `json:"date"`
	Sent     float64 `json:"sent"`
	Received float64 `json:"received"`
	Count    int     `json:"count"`
}

type Balance struct {
	Address          string `json:"address"`
	Balance          string `json:"balance"`
	BalanceFormatted string `json:"balanceFormatted"`
}

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
