package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"klusmarkt/internal/adapter/http/handlers"
	"klusmarkt/internal/adapter/http/routes"
	"klusmarkt/internal/adapter/persistence/repository"
	"klusmarkt/internal/bus"
	"klusmarkt/internal/config"
	"klusmarkt/internal/infrastructure/database"
	"klusmarkt/internal/infrastructure/identity"
	"klusmarkt/internal/infrastructure/payments"
	"klusmarkt/internal/infrastructure/profiles"
	"klusmarkt/internal/infrastructure/storage"
	"klusmarkt/internal/infrastructure/storage/dynamostore"
	"klusmarkt/internal/infrastructure/storage/filestore"
	"klusmarkt/internal/infrastructure/storage/redisstore"
	"klusmarkt/internal/infrastructure/storage/sqlitestore"
	"klusmarkt/internal/logging"
	"klusmarkt/internal/usecase"
	"klusmarkt/internal/usecase/interfaces"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(nil)
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.Env, cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = log.Sync() }()
			logging.Set(log)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, log)
		},
	}
}

// closers are released in reverse order on shutdown.
type closers []io.Closer

func (c closers) Close(log *zap.Logger) {
	for i := len(c) - 1; i >= 0; i-- {
		if err := c[i].Close(); err != nil {
			log.Warn("close failed", zap.Error(err))
		}
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func serve(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	var cleanup closers
	defer cleanup.Close(log)

	origin := newOrigin()
	store, watchers, err := openStore(ctx, cfg, origin, log)
	if err != nil {
		return err
	}
	adapter := storage.NewAdapter(store, log.Named("storage"))
	cleanup = append(cleanup, adapter)

	events := bus.New(log.Named("bus"))

	idp, profileStore, err := openIdentity(ctx, cfg, log, &cleanup)
	if err != nil {
		return err
	}

	var gateway interfaces.IPaymentGateway
	mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, log)
	if err != nil {
		log.Warn("payment gateway not configured, upgrades will not be charged", zap.Error(err))
	} else {
		gateway = mp
	}

	jobRepo := repository.NewJobRepository(adapter)
	quoteRepo := repository.NewQuoteRepository(adapter)
	agendaRepo := repository.NewAgendaRepository(adapter)
	accountRepo := repository.NewAccountRepository(adapter)

	stream := handlers.NewEventsHandler(events, log.Named("events"))
	h := routes.Handlers{
		Jobs:         handlers.NewJobHandler(usecase.NewJobUseCase(jobRepo, events, log.Named("jobs"), cfg.OwnerID)),
		Quotes:       handlers.NewQuoteHandler(usecase.NewQuoteUseCase(quoteRepo, accountRepo, events, log.Named("quotes"))),
		Agenda:       handlers.NewAgendaHandler(usecase.NewAgendaUseCase(agendaRepo, quoteRepo, events, log.Named("agenda"))),
		Availability: handlers.NewAvailabilityHandler(usecase.NewAvailabilityUseCase(repository.NewAvailabilityRepository(adapter), agendaRepo, events)),
		Chat:         handlers.NewChatHandler(usecase.NewChatUseCase(repository.NewChatRepository(adapter), events)),
		Account:      handlers.NewAccountHandler(usecase.NewAccountUseCase(accountRepo, idp, profileStore, gateway, events, log.Named("account"))),
		Projections:  handlers.NewProjectionHandler(),
		Events:       stream,
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := routes.NewServer(routes.NewRouter(h, log.Named("http")), cfg.AppPort)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server listening", zap.String("addr", srv.Addr), zap.String("storage", cfg.StorageBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	if len(watchers) > 0 {
		g.Go(func() error {
			return events.Run(gctx, watchers...)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		stream.Close()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newOrigin() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "klusmarkt"
	}
	return fmt.Sprintf("%s-%s", host, uuid.NewString()[:8])
}

// openStore returns the configured backend plus the watchers that report
// writes from other processes.
func openStore(ctx context.Context, cfg config.Config, origin string, log *zap.Logger) (storage.Store, []storage.Watcher, error) {
	switch cfg.StorageBackend {
	case config.BackendFile:
		s, err := filestore.New(cfg.StorageDir, origin, log.Named("filestore"))
		if err != nil {
			return nil, nil, err
		}
		return s, []storage.Watcher{s}, nil
	case config.BackendSQLite:
		s, err := sqlitestore.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, nil, nil
	case config.BackendRedis:
		client, err := database.ConnectRedis(ctx, database.RedisOptions{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err != nil {
			return nil, nil, err
		}
		s := redisstore.New(client, "klusmarkt:", cfg.RedisChannel, origin, log.Named("redisstore"))
		return s, []storage.Watcher{s}, nil
	case config.BackendDynamoDB:
		ddb, err := database.NewDynamoDBClient(ctx, database.DynamoDBOptions{Region: cfg.AWSRegion, Endpoint: cfg.DynamoDBEndpoint})
		if err != nil {
			return nil, nil, err
		}
		return dynamostore.New(ddb, cfg.KVTable, ""), nil, nil
	default:
		return storage.NewMemoryStore(), nil, nil
	}
}

// openIdentity returns nil collaborators when Supabase is not configured;
// sign-up and sign-in then report an external service error.
func openIdentity(ctx context.Context, cfg config.Config, log *zap.Logger, cleanup *closers) (interfaces.IIdentityProvider, interfaces.IProfileStore, error) {
	var (
		idp          interfaces.IIdentityProvider
		profileStore interfaces.IProfileStore
	)
	if cfg.SupabaseURL != "" {
		client, err := identity.New(nil, identity.Config{URL: cfg.SupabaseURL, AnonKey: cfg.SupabaseAnonKey})
		if err != nil {
			return nil, nil, err
		}
		idp = client
		profileStore = client.Profiles()
	} else {
		log.Warn("SUPABASE_URL not set, remote sign-up and sign-in are disabled")
	}

	if cfg.ProfileStore == config.ProfileStoreFirestore {
		fs, err := profiles.NewClient(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredsFile)
		if err != nil {
			return nil, nil, err
		}
		*cleanup = append(*cleanup, closerFunc(fs.Close))
		if err := profiles.Ping(ctx, fs); err != nil {
			log.Warn("firestore ping failed", zap.Error(err))
		}
		profileStore = profiles.NewFirestoreStore(fs)
	}
	return idp, profileStore, nil
}
