package cmd

import (
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"txnotify/internal/assist"
	"txnotify/internal/config"
	"txnotify/internal/core"
	"txnotify/internal/db"
	"txnotify/internal/emitter"
	"txnotify/internal/ethereum"
	"txnotify/internal/http/handler"
	"txnotify/internal/http/handler/middleware"
	"txnotify/internal/http/payload"
	"txnotify/internal/http/server"
	"txnotify/internal/repository"
	"txnotify/internal/tracker"
	"txnotify/pkg/jwt"
	"txnotify/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Track transactions and serve the assist HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd)
		},
	}
}

func runServe(cmd *cobra.Command) error {
	cfg, err := config.NewApp()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := log.NewZapLogger(serviceName, level)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	book, err := cfg.AddressBook()
	if err != nil {
		logger.Errorw("failed to load address book", "error", err, "path", cfg.AddressBookPath)
		return err
	}
	table := book.Table(cfg.Network())

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	repo := repository.NewNotificationRepository(dbConn)

	var operators []repository.Operator
	if cfg.Operator.Password != "" {
		operators = append(operators, repository.Operator{
			Username: cfg.Operator.Username,
			Password: cfg.Operator.Password,
		})
	}
	if err := repo.MigrateAndSeed(ctx, operators); err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	client, err := ethclient.DialContext(ctx, cfg.NodeURL)
	if err != nil {
		logger.Errorw("eth node connection failed", "error", err)
		return err
	}
	defer client.Close()

	decoder, err := ethereum.NewDecoder()
	if err != nil {
		logger.Errorw("failed to load contract abi", "error", err)
		return err
	}
	ethService := ethereum.NewEthService(client, decoder)

	emitters := emitter.Multi{
		emitter.NewLogEmitter(logger),
		emitter.NewStoreEmitter(repo),
	}
	if cfg.Kafka.Enabled() {
		kafka := emitter.NewKafkaEmitter(logger, cfg.Kafka.BrokerAddress, cfg.Kafka.Topic)
		defer func() {
			if err := kafka.Close(); err != nil {
				logger.Errorw("failed to close kafka writer", "error", err)
			}
		}()
		emitters = append(emitters, kafka)
	}

	library := tracker.NewLibrary(ctx, logger, decoder, emitters, tracker.Options{
		PollInterval: cfg.Tracker.PollInterval,
		Timeout:      cfg.Tracker.Timeout,
	})
	assistClient := assist.NewClient(logger, library, assist.Settings{
		NetworkID: cfg.NetworkID,
		DappID:    cfg.DappID,
		Table:     table,
	})

	service := core.NewService(
		logger,
		repo,
		jwt.NewJWTService([]byte(cfg.JWTSecret), serviceName),
		ethService,
		assistClient,
		client,
		table)

	if err := service.Onboard(ctx); err != nil {
		logger.Errorw("onboarding failed", "error", err, "network_id", cfg.NetworkID)
		return err
	}

	mux := http.NewServeMux()
	handler.NewAssistHandler(logger, payload.Decoder{}, service).Register(mux)

	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, cfg.Port)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return <-srv.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		return srv.Shutdown()
	})

	err = g.Wait()

	stop()
	library.Wait()
	logger.Infow("stopped", "network", cfg.Network())

	return err
}
