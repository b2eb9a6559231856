package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-governance/internal/eip712"
	"github.com/sbilibin2017/gw-governance/internal/facades"
	"github.com/sbilibin2017/gw-governance/internal/handlers"
	"github.com/sbilibin2017/gw-governance/internal/jwt"
	"github.com/sbilibin2017/gw-governance/internal/logger"
	"github.com/sbilibin2017/gw-governance/internal/middlewares"
	"github.com/sbilibin2017/gw-governance/internal/repositories"
	"github.com/sbilibin2017/gw-governance/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every setting read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	AppName  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisBalanceTTL   time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey  string
	JWTExpiration time.Duration

	RPCURL        string
	TokenAddress  string
	TokenDecimals int32
	ChainID       int64

	NonceTTL time.Duration

	EIP712DomainName        string
	EIP712DomainVersion     string
	EIP712ChainID           int64
	EIP712VerifyingContract string

	ProposalMinBalance      string // Human units
	ProposalDefaultDuration time.Duration

	IPFSRPCURL string
	IPFSAPIKey string

	SnapshotGraphQLURL string
	SnapshotSpace      string

	AdminAPIKey       string
	AuthRatePerMinute int
}

// @title gw-governance API
// @version 1.0.0
// @description Wallet-authenticated governance: signed proposals, token-weighted votes, pinned results
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file, letting the process
// environment win, and returns the application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getInt64 := func(key, defaultValue string) (int64, error) {
		v, err := strconv.ParseInt(getEnv(key, defaultValue), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.AppName = getEnv("APP_NAME", "Parallel Society Governance")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	var balanceTTL int
	if balanceTTL, err = getInt("REDIS_BALANCE_TTL_SECOND", "86400"); err != nil {
		return
	}
	cfg.RedisBalanceTTL = time.Duration(balanceTTL) * time.Second

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "governance-events")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	var jwtExp int
	if jwtExp, err = getInt("JWT_EXP_SECOND", "86400"); err != nil {
		return
	}
	cfg.JWTExpiration = time.Duration(jwtExp) * time.Second

	// Chain config
	cfg.RPCURL = getEnv("RPC_URL", "https://public-node.rsk.co")
	cfg.TokenAddress = getEnv("TOKEN_ADDRESS", "0x0000000000000000000000000000000000000000")
	var decimals int
	if decimals, err = getInt("TOKEN_DECIMALS", "18"); err != nil {
		return
	}
	cfg.TokenDecimals = int32(decimals)
	if cfg.ChainID, err = getInt64("CHAIN_ID", "30"); err != nil {
		return
	}

	// Auth config
	var nonceTTL int64
	if nonceTTL, err = getInt64("NONCE_EXPIRATION_MS", "300000"); err != nil {
		return
	}
	cfg.NonceTTL = time.Duration(nonceTTL) * time.Millisecond
	if cfg.AuthRatePerMinute, err = getInt("AUTH_RATE_PER_MINUTE", "30"); err != nil {
		return
	}

	// Typed-data domain config
	cfg.EIP712DomainName = getEnv("EIP712_DOMAIN_NAME", "parallel")
	cfg.EIP712DomainVersion = getEnv("EIP712_DOMAIN_VERSION", "1")
	if cfg.EIP712ChainID, err = getInt64("EIP712_CHAIN_ID", "0"); err != nil {
		return
	}
	cfg.EIP712VerifyingContract = getEnv("EIP712_VERIFYING_CONTRACT", "")

	// Proposal config
	cfg.ProposalMinBalance = getEnv("PROPOSAL_MIN_BALANCE", "2000")
	if _, err = decimal.NewFromString(cfg.ProposalMinBalance); err != nil {
		err = fmt.Errorf("PROPOSAL_MIN_BALANCE: %w", err)
		return
	}
	var durationHours int
	if durationHours, err = getInt("PROPOSAL_DEFAULT_DURATION_HOURS", "72"); err != nil {
		return
	}
	cfg.ProposalDefaultDuration = time.Duration(durationHours) * time.Hour

	// Archive and import config
	cfg.IPFSRPCURL = getEnv("IPFS_RPC_URL", "https://rpc.filebase.io")
	cfg.IPFSAPIKey = getEnv("IPFS_API_KEY", "")
	cfg.SnapshotGraphQLURL = getEnv("SNAPSHOT_GRAPHQL_URL", "https://hub.snapshot.org/graphql")
	cfg.SnapshotSpace = getEnv("SNAPSHOT_SPACE", "")
	cfg.AdminAPIKey = getEnv("ADMIN_API_KEY", "")

	return
}

// authAPI is everything the /auth routes need.
type authAPI interface {
	handlers.NonceRequester
	handlers.SignatureVerifier
	handlers.UsernameChecker
	handlers.ProfileReader
}

// proposalAPI is everything the /proposals routes need.
type proposalAPI interface {
	handlers.ProposalLister
	handlers.ProposalGetter
	handlers.ProposalCreator
	handlers.ProposalDeleter
}

// newRouter mounts every route with its middleware chain.
func newRouter(
	cfg config,
	tokener middlewares.Tokener,
	auth authAPI,
	proposals proposalAPI,
	votes handlers.VoteCaster,
	updates handlers.UpdateManager,
	importer handlers.SnapshotImporter,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", middlewares.AdminKeyHeader},
	}).Handler)

	authMiddleware := middlewares.AuthMiddleware(tokener)

	// Auth routes
	r.Route("/auth", func(r chi.Router) {
		r.Use(middlewares.RateLimitMiddleware(cfg.AuthRatePerMinute))
		r.Post("/nonce", handlers.NewRequestNonceHandler(auth))
		r.Post("/verify", handlers.NewVerifyHandler(auth))
		r.Get("/username", handlers.NewCheckUsernameHandler(auth))
		r.With(authMiddleware).Get("/me", handlers.NewProfileHandler(auth))
	})

	// Public reads
	r.Get("/proposals", handlers.NewListProposalsHandler(proposals))
	r.With(middlewares.OptionalAuthMiddleware(tokener)).Get("/proposals/{id}", handlers.NewGetProposalHandler(proposals))
	r.Get("/proposals/{id}/updates", handlers.NewListUpdatesHandler(updates))

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/proposals", handlers.NewCreateProposalHandler(proposals))
		r.Delete("/proposals/{id}", handlers.NewDeleteProposalHandler(proposals))
		r.Post("/proposals/{id}/votes", handlers.NewCastVoteHandler(votes))
		r.Post("/proposals/{id}/updates", handlers.NewCreateUpdateHandler(updates))
		r.Put("/updates/{id}", handlers.NewEditUpdateHandler(updates))
		r.Delete("/updates/{id}", handlers.NewDeleteUpdateHandler(updates))
	})

	// Admin routes
	r.With(middlewares.AdminKeyMiddleware(cfg.AdminAPIKey)).
		Post("/admin/import/snapshot", handlers.NewImportSnapshotHandler(importer))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}

// run initializes the logger, database, Redis, Kafka, chain and archive
// clients, and the HTTP server. It blocks until ctx is cancelled or a
// shutdown signal arrives, then stops the server gracefully.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}
	if err := repositories.ApplyMigrations(db); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer, optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
	} else {
		logger.Log.Warn("KAFKA_BROKERS not set, governance events will not be published")
	}

	// Connect to the token chain
	evm, err := facades.DialEVMClient(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("RPC connection error: %w", err)
	}
	defer evm.Close()

	oracle, err := facades.NewBalanceOracle(evm, cfg.TokenAddress)
	if err != nil {
		return err
	}

	// Initialize JWT service
	sessions := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExpiration),
	)

	// Initialize signature verifier
	verifierOpts := []eip712.Opt{
		eip712.WithAppName(cfg.AppName),
		eip712.WithDomain(cfg.EIP712DomainName, cfg.EIP712DomainVersion),
	}
	if cfg.EIP712ChainID != 0 {
		verifierOpts = append(verifierOpts, eip712.WithChainID(cfg.EIP712ChainID))
	}
	if cfg.EIP712VerifyingContract != "" {
		verifierOpts = append(verifierOpts, eip712.WithVerifyingContract(cfg.EIP712VerifyingContract))
	}
	verifier := eip712.New(verifierOpts...)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	nonceReadRepo := repositories.NewNonceReadRepository(db)
	nonceWriteRepo := repositories.NewNonceWriteRepository(db)
	proposalReadRepo := repositories.NewProposalReadRepository(db)
	proposalWriteRepo := repositories.NewProposalWriteRepository(db)
	voteReadRepo := repositories.NewVoteReadRepository(db)
	voteWriteRepo := repositories.NewVoteWriteRepository(db)
	updateReadRepo := repositories.NewProposalUpdateReadRepository(db)
	updateWriteRepo := repositories.NewProposalUpdateWriteRepository(db)
	balanceCache := repositories.NewBalanceCacheRepository(rdb, cfg.RedisBalanceTTL)

	// Initialize services
	minBalanceRaw := services.ToRawUnits(decimal.RequireFromString(cfg.ProposalMinBalance), cfg.TokenDecimals)

	events := services.NewEventPublisher(kafkaWriter, nil)
	nonceService := services.NewNonceService(nonceReadRepo, nonceWriteRepo, cfg.NonceTTL, nil)
	authService := services.NewAuthService(nonceService, verifier, userReadRepo, userWriteRepo, sessions, nil)
	votingPower := services.NewVotingPowerService(oracle, balanceCache)
	tallyService := services.NewTallyService(voteReadRepo)
	archiveService := services.NewArchiveService(facades.NewIPFSClient(cfg.IPFSRPCURL, cfg.IPFSAPIKey), proposalWriteRepo)
	proposalService := services.NewProposalService(
		proposalReadRepo,
		proposalWriteRepo,
		voteReadRepo,
		verifier,
		votingPower,
		archiveService,
		events,
		services.ProposalConfig{
			MinBalanceRaw:   minBalanceRaw,
			Decimals:        cfg.TokenDecimals,
			ChainID:         cfg.ChainID,
			DefaultDuration: cfg.ProposalDefaultDuration,
		},
		nil,
	)
	voteService := services.NewVoteService(
		proposalReadRepo,
		proposalWriteRepo,
		voteWriteRepo,
		verifier,
		votingPower,
		tallyService,
		events,
		nil,
	)
	updateService := services.NewUpdateService(proposalService, updateReadRepo, updateWriteRepo, nil)
	importService := services.NewImportService(
		facades.NewSnapshotClient(cfg.SnapshotGraphQLURL, nil),
		proposalWriteRepo,
		services.ImportConfig{Space: cfg.SnapshotSpace, Decimals: cfg.TokenDecimals, ChainID: cfg.ChainID},
		nil,
	)

	// Setup router
	r := newRouter(cfg, sessions, authService, proposalService, voteService, updateService, importService)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
