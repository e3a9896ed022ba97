package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"usdcdash/internal/cache"
	"usdcdash/internal/config"
	"usdcdash/internal/core"
	"usdcdash/internal/db"
	"usdcdash/internal/ethereum"
	"usdcdash/internal/explorer"
	"usdcdash/internal/http/handler"
	"usdcdash/internal/http/handler/middleware"
	"usdcdash/internal/http/payload"
	"usdcdash/internal/http/server"
	"usdcdash/internal/repository"
	"usdcdash/internal/telemetry"
	"usdcdash/pkg/jwt"
	"usdcdash/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const serviceName = "usdcdash"

func Start() error {
	cfg, err := config.NewApp(os.Args[1:])
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.NewZapLogger(serviceName, log.ParseLevel(cfg.LogLevel))
	defer func() { _ = logger.Sync() }()

	shutdownTracer, err := telemetry.InitTracer(context.Background(), serviceName, cfg.OtelEndpoint)
	if err != nil {
		logger.Errorw("failed to init tracer", "error", err)
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(ctx); err != nil {
			logger.Warnw("tracer shutdown", "error", err)
		}
	}()

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer func() { _ = dbConn.Close() }()

	// repository
	repo := repository.NewDashboardRepository(dbConn)
	if err = repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	operators, err := cfg.OperatorSeeds()
	if err != nil {
		logger.Errorw("failed to parse operators", "error", err)
		return err
	}
	seeds := make([]repository.OperatorSeed, 0, len(operators))
	for _, op := range operators {
		seeds = append(seeds, repository.OperatorSeed{Username: op.Username, PasswordHash: op.PasswordHash})
	}
	if err = repo.SeedOperators(context.Background(), seeds); err != nil {
		logger.Errorw("failed to seed operators", "error", err)
		return err
	}

	client, err := ethclient.Dial(cfg.NodeURL)
	if err != nil {
		logger.Errorw("node connection failed", "error", err)
		return err
	}
	defer client.Close()

	ethService := ethereum.NewEthService(client, cfg.TokenAddress)
	explorerClient := explorer.NewClient(logger, explorer.Config{
		BaseURL:      cfg.ExplorerURL,
		APIKey:       cfg.ExplorerAPIKey,
		ChainID:      cfg.ChainID,
		TokenAddress: cfg.TokenAddress,
		Timeout:      cfg.HTTPTimeout,
		MinInterval:  cfg.ExplorerMinInterval,
	})

	store, err := newCacheStore(cfg)
	if err != nil {
		logger.Errorw("failed to create cache store", "error", err)
		return err
	}
	loader := cache.NewLoader(logger, store, cfg.LoadTimeout)

	dashboard := core.NewDashboard(
		logger,
		ethService,
		explorerClient,
		ethService,
		loader,
		cfg.TokenAddress)

	var sender core.TransferSender
	if cfg.TransfersEnabled() {
		signer, err := ethereum.NewKeySigner(cfg.WalletPrivateKey)
		if err != nil {
			logger.Errorw("failed to load wallet key", "error", err)
			return err
		}
		sender = ethereum.NewTransferSender(logger, client, signer, cfg.TokenAddress, cfg.ReceiptPollInterval)
		logger.Infow("transfers enabled", "from", signer.Address().Hex())
	} else {
		logger.Warnw("no wallet key configured, transfers disabled")
	}

	workflow := core.NewTransferWorkflow(logger, repo, sender, loader, cfg.ConfirmTimeout)
	defer workflow.Close()

	authenticator := core.NewAuthenticator(logger, repo, jwt.NewJWTService([]byte(cfg.JWTSecret), serviceName))

	// handler
	dashHlr := handler.NewDashboardHandler(
		logger,
		payload.Decoder{},
		dashboard,
		workflow,
		authenticator)

	// register routes
	mux := http.NewServeMux()
	dashHlr.Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	// middleware
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
	hdlr = middleware.NewCORSMiddleware(cfg.CORSOrigins).CORS(hdlr)

	logger.Infow("starting server",
		"port", cfg.Port,
		"network", cfg.Network,
		"token", cfg.TokenAddress)

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(logger, srv)
}

func newCacheStore(cfg config.App) (cache.Store, error) {
	if cfg.RedisURL == "" {
		return cache.NewMemoryStore(cfg.CacheEntries, cfg.CacheTTL), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return cache.NewRedisStore(redis.NewClient(opts), serviceName, cfg.CacheTTL), nil
}

func run(logger *zap.SugaredLogger, server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case s := <-sig:
		logger.Infow("shutting down", "signal", s.String())
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
