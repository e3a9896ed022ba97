package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/sync/errgroup"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// EthService reads token state and history from an Ethereum node.
type EthService struct {
	client EthClient
	token  common.Address
}

func NewEthService(ethClient EthClient, tokenAddress string) *EthService {
	return &EthService{
		client: ethClient,
		token:  common.HexToAddress(tokenAddress),
	}
}

// FetchTransferLogs returns the token Transfer events where address is the sender or the
// recipient, in the block range [fromBlock, toBlock]. A nil toBlock means the current head.
func (s *EthService) FetchTransferLogs(ctx context.Context, address string, fromBlock uint64, toBlock *uint64) ([]TransferLog, error) {
	var head uint64
	if toBlock != nil {
		head = *toBlock
	} else {
		var err error
		head, err = s.client.BlockNumber(ctx)
		if err != nil {
			return nil, fmt.Errorf("get block number: %w", err)
		}
	}
	if fromBlock > head {
		return []TransferLog{}, nil
	}

	account := common.BytesToHash(common.HexToAddress(address).Bytes())
	queries := []geth.FilterQuery{
		s.transferQuery(fromBlock, head, []common.Hash{account}, nil),
		s.transferQuery(fromBlock, head, nil, []common.Hash{account}),
	}

	resultsChan := make(chan logsResult)

	var wg sync.WaitGroup
	for i, q := range queries {
		wg.Add(1)
		go func(i int, q geth.FilterQuery) {
			defer wg.Done()
			res := s.filterTransfers(ctx, q)
			if res.err != nil {
				res.err = fmt.Errorf("filter logs query %d: %w", i, res.err)
			}
			resultsChan <- res
		}(i, q)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var aggrErr error
	var collected []TransferLog
	for result := range resultsChan {
		if result.err != nil {
			aggrErr = errors.Join(aggrErr, result.err)
			continue
		}
		collected = append(collected, result.logs...)
	}
	if aggrErr != nil {
		return nil, aggrErr
	}

	// a self-transfer matches both queries
	seen := make(map[string]struct{}, len(collected))
	logs := make([]TransferLog, 0, len(collected))
	for _, lg := range collected {
		id := fmt.Sprintf("%s/%d", lg.TxHash, lg.LogIndex)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		logs = append(logs, lg)
	}

	return logs, nil
}

// BalanceOf calls balanceOf on the token contract.
func (s *EthService) BalanceOf(ctx context.Context, address string) (*big.Int, error) {
	data, err := packBalanceOf(common.HexToAddress(address))
	if err != nil {
		return nil, err
	}

	out, err := s.client.CallContract(ctx, geth.CallMsg{To: &s.token, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call balanceOf: %w", err)
	}

	return unpackBalance(out)
}

// LookupTransaction runs the transaction, receipt, head and chain id lookups concurrently and
// then reads the block header for the timestamp.
func (s *EthService) LookupTransaction(ctx context.Context, hashStr string) (TransactionLookup, error) {
	hash := common.HexToHash(hashStr)

	var (
		tx      *types.Transaction
		receipt *types.Receipt
		head    uint64
		chainID *big.Int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tx, _, err = s.client.TransactionByHash(gctx, hash)
		if err != nil {
			return fmt.Errorf("get transaction: %w", notFound(err))
		}
		return nil
	})
	g.Go(func() error {
		var err error
		receipt, err = s.client.TransactionReceipt(gctx, hash)
		if err != nil {
			return fmt.Errorf("get receipt: %w", notFound(err))
		}
		return nil
	})
	g.Go(func() error {
		var err error
		head, err = s.client.BlockNumber(gctx)
		if err != nil {
			return fmt.Errorf("get block number: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		chainID, err = s.client.ChainID(gctx)
		if err != nil {
			return fmt.Errorf("get chain id: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return TransactionLookup{}, err
	}

	from, err := types.Sender(types.LatestSignerForChainID(chainID), tx)
	if err != nil {
		return TransactionLookup{}, fmt.Errorf("recover sender: %w", err)
	}

	header, err := s.client.HeaderByNumber(ctx, receipt.BlockNumber)
	if err != nil {
		return TransactionLookup{}, fmt.Errorf("get block header: %w", err)
	}

	var to string
	if tx.To() != nil {
		to = strings.ToLower(tx.To().Hex())
	}

	transfers := make([]TransferLog, 0, len(receipt.Logs))
	for _, lg := range receipt.Logs {
		if lg == nil || !isTransferLog(*lg) {
			continue
		}
		decoded, err := decodeTransferLog(*lg)
		if err != nil {
			// other contracts may emit Transfer with a different layout
			continue
		}
		transfers = append(transfers, decoded)
	}

	return TransactionLookup{
		Hash:              strings.ToLower(tx.Hash().Hex()),
		BlockNumber:       receipt.BlockNumber.Uint64(),
		TxIndex:           receipt.TransactionIndex,
		From:              strings.ToLower(from.Hex()),
		To:                to,
		Value:             tx.Value(),
		Input:             fmt.Sprintf("0x%x", tx.Data()),
		Gas:               tx.Gas(),
		GasPrice:          effectiveGasPrice(tx, receipt),
		GasUsed:           receipt.GasUsed,
		CumulativeGasUsed: receipt.CumulativeGasUsed,
		Status:            receipt.Status,
		Timestamp:         header.Time,
		Head:              head,
		Transfers:         transfers,
	}, nil
}

func (s *EthService) transferQuery(fromBlock, toBlock uint64, from, to []common.Hash) geth.FilterQuery {
	return geth.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{s.token},
		Topics:    [][]common.Hash{{TransferTopic}, from, to},
	}
}

func (s *EthService) filterTransfers(ctx context.Context, q geth.FilterQuery) logsResult {
	raw, err := s.client.FilterLogs(ctx, q)
	if err != nil {
		return logsResult{nil, err}
	}

	logs := make([]TransferLog, 0, len(raw))
	for _, lg := range raw {
		if lg.Removed {
			continue
		}
		decoded, err := decodeTransferLog(lg)
		if err != nil {
			return logsResult{nil, err}
		}
		logs = append(logs, decoded)
	}

	return logsResult{logs, nil}
}

func effectiveGasPrice(tx *types.Transaction, receipt *types.Receipt) *big.Int {
	if receipt.EffectiveGasPrice != nil {
		return receipt.EffectiveGasPrice
	}
	return tx.GasPrice()
}

func notFound(err error) error {
	if errors.Is(err, geth.NotFound) {
		return fmt.Errorf("%w: %w", ErrTransactionNotFound, err)
	}
	return err
}
