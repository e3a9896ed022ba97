package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/jellydator/validation"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

const (
	NetworkSepolia = "sepolia"
	NetworkMainnet = "mainnet"
)

var errMalformedOperator = errors.New("operator must be username:bcrypt-hash")

// Network holds the endpoints and contract of one supported chain.
type Network struct {
	ExplorerURL  string
	ChainID      int64
	TokenAddress string
}

var networks = map[string]Network{
	NetworkSepolia: {
		ExplorerURL:  "https://api-sepolia.etherscan.io/api",
		ChainID:      11155111,
		TokenAddress: "0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238",
	},
	NetworkMainnet: {
		ExplorerURL:  "https://api.etherscan.io/v2/api",
		ChainID:      1,
		TokenAddress: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
	},
}

var addressRegexp = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

type App struct {
	Port     string `long:"port" env:"API_PORT" description:"http listen port" default:"8080"`
	LogLevel string `long:"log-level" env:"LOG_LEVEL" description:"debug, info, warn or error" default:"info"`
	Network  string `long:"network" env:"NETWORK" description:"sepolia or mainnet" default:"sepolia"`

	NodeURL         string `long:"node-url" env:"ETH_NODE_URL" description:"ethereum json-rpc endpoint"`
	DBConnectionURL string `long:"db-url" env:"DB_CONNECTION_URL" description:"postgres dsn"`
	JWTSecret       string `long:"jwt-secret" env:"JWT_SECRET" description:"operator token signing secret"`

	ExplorerURL         string        `long:"explorer-url" env:"EXPLORER_API_URL" description:"explorer api base url, network default when empty"`
	ExplorerAPIKey      string        `long:"explorer-api-key" env:"EXPLORER_API_KEY" description:"explorer api key"`
	ExplorerMinInterval time.Duration `long:"explorer-min-interval" env:"EXPLORER_MIN_INTERVAL" description:"minimum delay between explorer calls" default:"600ms"`
	HTTPTimeout         time.Duration `long:"http-timeout" env:"HTTP_TIMEOUT" description:"upstream http timeout" default:"10s"`
	ChainID             int64         `long:"chain-id" env:"CHAIN_ID" description:"chain id, network default when zero"`
	TokenAddress        string        `long:"token-address" env:"USDC_CONTRACT_ADDRESS" description:"token contract, network default when empty"`

	WalletPrivateKey    string        `long:"wallet-key" env:"WALLET_PRIVATE_KEY" description:"hex key of the sending wallet, transfers disabled when empty"`
	ReceiptPollInterval time.Duration `long:"receipt-poll-interval" env:"RECEIPT_POLL_INTERVAL" default:"4s"`
	ConfirmTimeout      time.Duration `long:"confirm-timeout" env:"CONFIRM_TIMEOUT" default:"3m"`

	CacheTTL     time.Duration `long:"cache-ttl" env:"CACHE_TTL" default:"30s"`
	CacheEntries int           `long:"cache-entries" env:"CACHE_ENTRIES" default:"1024"`
	LoadTimeout  time.Duration `long:"load-timeout" env:"LOAD_TIMEOUT" description:"bound on one shared upstream load" default:"20s"`
	RedisURL     string        `long:"redis-url" env:"REDIS_URL" description:"redis cache, in-memory cache when empty"`

	Operators    []string `long:"operator" env:"OPERATORS" env-delim:"," description:"username:bcrypt-hash"`
	CORSOrigins  []string `long:"cors-origin" env:"CORS_ORIGINS" env-delim:"," default:"*"`
	OtelEndpoint string   `long:"otel-endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Operator is a seeded operator account.
type Operator struct {
	Username     string
	PasswordHash string
}

// NewApp reads .env when present, then flags and environment, and fills network defaults.
func NewApp(args []string) (App, error) {
	if err := loadDotEnv(".env"); err != nil {
		return App{}, fmt.Errorf("load .env: %w", err)
	}

	var app App
	parser := flags.NewParser(&app, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return App{}, fmt.Errorf("parse config: %w", err)
	}

	app.applyNetworkDefaults()

	if err := app.Validate(); err != nil {
		return App{}, fmt.Errorf("validate config: %w", err)
	}

	return app, nil
}

func (a *App) applyNetworkDefaults() {
	network, ok := networks[a.Network]
	if !ok {
		return
	}
	if a.ExplorerURL == "" {
		a.ExplorerURL = network.ExplorerURL
	}
	if a.ChainID == 0 {
		a.ChainID = network.ChainID
	}
	if a.TokenAddress == "" {
		a.TokenAddress = network.TokenAddress
	}
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Port, validation.Required),
		validation.Field(&a.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&a.Network, validation.Required, validation.In(NetworkSepolia, NetworkMainnet)),
		validation.Field(&a.NodeURL, validation.Required),
		validation.Field(&a.DBConnectionURL, validation.Required),
		validation.Field(&a.JWTSecret, validation.Required),
		validation.Field(&a.TokenAddress, validation.Required, validation.Match(addressRegexp)),
		validation.Field(&a.ChainID, validation.Required),
		validation.Field(&a.ExplorerMinInterval, validation.Min(time.Duration(0))),
		validation.Field(&a.ConfirmTimeout, validation.Required),
		validation.Field(&a.ReceiptPollInterval, validation.Required),
		validation.Field(&a.Operators, validation.Each(validation.By(func(value any) error {
			_, err := parseOperator(value.(string))
			return err
		}))),
	)
}

// OperatorSeeds parses the configured username:hash pairs.
func (a App) OperatorSeeds() ([]Operator, error) {
	operators := make([]Operator, 0, len(a.Operators))
	for _, raw := range a.Operators {
		op, err := parseOperator(raw)
		if err != nil {
			return nil, err
		}
		operators = append(operators, op)
	}
	return operators, nil
}

// TransfersEnabled reports whether a sending wallet is configured.
func (a App) TransfersEnabled() bool {
	return strings.TrimSpace(a.WalletPrivateKey) != ""
}

func parseOperator(raw string) (Operator, error) {
	username, hash, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok || username == "" || hash == "" {
		return Operator{}, fmt.Errorf("%w: %q", errMalformedOperator, username)
	}
	return Operator{Username: username, PasswordHash: hash}, nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}
