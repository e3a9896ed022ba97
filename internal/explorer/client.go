package explorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

var (
	ErrRateLimited   = errors.New("explorer rate limit reached")
	ErrRequestFailed = errors.New("explorer request failed")
)

const noTransactions = "No transactions found"

type Config struct {
	BaseURL      string
	APIKey       string
	ChainID      int64
	TokenAddress string
	Timeout      time.Duration
	// MinInterval is the minimum spacing between two calls.
	MinInterval time.Duration
}

// Client talks to an Etherscan-compatible REST API.
type Client struct {
	logs    *zap.SugaredLogger
	http    *http.Client
	limiter ratelimit.Limiter
	cfg     Config
}

func NewClient(logger *zap.SugaredLogger, cfg Config) *Client {
	limiter := ratelimit.NewUnlimited()
	if cfg.MinInterval > 0 {
		limiter = ratelimit.New(1, ratelimit.Per(cfg.MinInterval), ratelimit.WithoutSlack)
	}

	return &Client{
		logs:    logger,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: limiter,
		cfg:     cfg,
	}
}

// TokenTransfers lists token transfers of the configured contract for q.Address.
// An explorer answer of "no transactions" is an empty result, not an error.
func (c *Client) TokenTransfers(ctx context.Context, q Query) ([]TokenTransfer, error) {
	params := url.Values{}
	params.Set("module", "account")
	params.Set("action", "tokentx")
	params.Set("contractaddress", c.cfg.TokenAddress)
	params.Set("address", q.Address)
	params.Set("sort", q.Sort)
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("offset", strconv.Itoa(q.Offset))
	params.Set("startblock", optionalBlock(q.StartBlock))
	params.Set("endblock", optionalBlock(q.EndBlock))

	result, err := c.call(ctx, params)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return []TokenTransfer{}, nil
	}

	var transfers []TokenTransfer
	if err := json.Unmarshal(result, &transfers); err != nil {
		return nil, fmt.Errorf("%w: decode tokentx result: %w", ErrRequestFailed, err)
	}
	for i := range transfers {
		if transfers[i].Confirmations == "" {
			transfers[i].Confirmations = "0"
		}
	}

	return transfers, nil
}

// TokenBalance returns the raw token balance of address as reported by the explorer.
func (c *Client) TokenBalance(ctx context.Context, address string) (string, error) {
	params := url.Values{}
	params.Set("module", "account")
	params.Set("action", "tokenbalance")
	params.Set("contractaddress", c.cfg.TokenAddress)
	params.Set("address", address)
	params.Set("tag", "latest")

	result, err := c.call(ctx, params)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "0", nil
	}

	var balance string
	if err := json.Unmarshal(result, &balance); err != nil {
		return "", fmt.Errorf("%w: decode tokenbalance result: %w", ErrRequestFailed, err)
	}

	return balance, nil
}

// call returns the raw result, or nil when the explorer reports that nothing was found.
func (c *Client) call(ctx context.Context, params url.Values) (json.RawMessage, error) {
	params.Set("apikey", c.cfg.APIKey)
	if c.cfg.ChainID > 0 {
		params.Set("chainid", strconv.FormatInt(c.cfg.ChainID, 10))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.limiter.Take()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRequestFailed, params.Get("action"), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: http status %d", ErrRateLimited, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: http status %d", ErrRequestFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrRequestFailed, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: decode envelope: %w", ErrRequestFailed, err)
	}

	if env.Status != "0" {
		return env.Result, nil
	}

	resultText := resultString(env.Result)
	switch {
	case env.Message == noTransactions || resultText == noTransactions || isEmptyArray(env.Result):
		return nil, nil
	case isThrottled(env.Message) || isThrottled(resultText):
		c.logs.Warnw("explorer throttled request",
			"action", params.Get("action"),
			"message", env.Message,
			"result", resultText)
		return nil, fmt.Errorf("%w: %s", ErrRateLimited, firstNonEmpty(resultText, env.Message))
	default:
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, firstNonEmpty(env.Message, resultText, "API request failed"))
	}
}

func optionalBlock(block *uint64) string {
	if block == nil {
		return ""
	}
	return strconv.FormatUint(*block, 10)
}

func resultString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func isEmptyArray(raw json.RawMessage) bool {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return false
	}
	return len(items) == 0
}

func isThrottled(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "rate limit") || strings.Contains(lower, "max calls per sec")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
