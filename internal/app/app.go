package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"runtime"
	"strings"
	"syscall"
	"time"

	"os/signal"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/project/bookshelf/config"
	"github.com/project/bookshelf/db"
	"github.com/project/bookshelf/internal/controller"
	"github.com/project/bookshelf/internal/usecase/catalog"
	"github.com/project/bookshelf/internal/usecase/llm"
	"github.com/project/bookshelf/internal/usecase/outbox"
	"github.com/project/bookshelf/internal/usecase/repository"
	"go.uber.org/zap"
)

const (
	shutDownSeconds        = 3
	dialerTimeoutSeconds   = 30
	dialerKeepAliveSeconds = 180
	transportMaxIdleConns  = 100
	transportMaxConnsPerHost
	transportIdleConnTimeoutSeconds       = 90
	transportTLSHandshakeTimeoutSeconds   = 15
	transportExpectContinueTimeoutSeconds = 2
)

func Run(logger *zap.Logger, cfg *config.Config) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	dbPool, err := pgxpool.New(ctx, cfg.PG.URL)
	if err != nil {
		logger.Error("can not create pgxpool", zap.Error(err))
		return
	}
	defer dbPool.Close()

	if err = db.SetupPostgres(cfg.PG.URL, logger); err != nil {
		logger.Error("can not run migrations", zap.Error(err))
		return
	}

	var logRepo *zap.Logger
	if cfg.Log.LogDBRepo {
		logRepo = logger
	}
	repo := repository.New(logRepo, dbPool)
	outboxRepository := repository.NewOutbox(dbPool, cfg.Outbox.AttemptsRetry)

	var logTransactor *zap.Logger
	if cfg.Log.LogTransactor {
		logTransactor = logger
	}
	transactor := repository.NewTransactor(logTransactor, dbPool)
	runOutbox(ctx, cfg, logger, outboxRepository, transactor)

	var generator catalog.Generator
	if cfg.LLM.APIURL != "" {
		generator = llm.NewClient(logger, llm.Config{
			APIURL:      cfg.LLM.APIURL,
			Model:       cfg.LLM.Model,
			MaxTokens:   cfg.LLM.MaxTokens,
			Temperature: cfg.LLM.Temperature,
			TopP:        cfg.LLM.TopP,
			Timeout:     cfg.LLM.Timeout,
		}, newTunedClient())
	}

	var logUseCase *zap.Logger
	if cfg.Log.LogUseCase {
		logUseCase = logger
	}

	// A disabled outbox gets no event sink at all, so the outbox table stays
	// empty while no workers drain it.
	var eventSink catalog.OutboxRepository
	if cfg.Outbox.Enabled {
		eventSink = outboxRepository
	}
	useCases := catalog.New(logUseCase, repo, repo, eventSink, transactor, generator)

	var logController *zap.Logger
	if cfg.Log.LogController {
		logController = logger
	}
	ctrl := controller.New(logController, useCases, useCases, useCases)

	go runMetrics(cfg, logger)
	go runHTTP(cfg, logger, ctrl.Router())

	<-ctx.Done()
	time.Sleep(time.Second * shutDownSeconds)
}

func newTunedClient() *http.Client {
	dialer := &net.Dialer{
		Timeout:   dialerTimeoutSeconds * time.Second,
		KeepAlive: dialerKeepAliveSeconds * time.Second,
	}

	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          transportMaxIdleConns,
		MaxConnsPerHost:       transportMaxConnsPerHost,
		IdleConnTimeout:       transportIdleConnTimeoutSeconds * time.Second,
		TLSHandshakeTimeout:   transportTLSHandshakeTimeoutSeconds * time.Second,
		ExpectContinueTimeout: transportExpectContinueTimeoutSeconds * time.Second,
		MaxIdleConnsPerHost:   runtime.GOMAXPROCS(0) + 1,
	}

	client := new(http.Client)
	client.Transport = transport

	return client
}

func runOutbox(
	ctx context.Context,
	cfg *config.Config,
	logger *zap.Logger,
	outboxRepository outbox.Repository,
	transactor repository.Transactor,
) {
	client := newTunedClient()

	globalHandler := globalOutboxHandler(client, cfg.Outbox.BookSendURL, cfg.Outbox.ReviewSendURL)

	var logOutbox *zap.Logger
	if cfg.Log.LogOutboxWorker {
		logOutbox = logger
	}
	outboxService := outbox.New(logOutbox, outboxRepository, globalHandler, cfg, transactor)

	outboxService.Start(
		ctx,
		cfg.Outbox.Workers,
		cfg.Outbox.BatchSize,
		cfg.Outbox.WaitTimeMS,
		cfg.Outbox.InProgressTTLMS,
	)
}

func globalOutboxHandler(
	client *http.Client,
	bookURL,
	reviewURL string,
) outbox.GlobalHandler {
	return func(kind repository.OutboxKind) (outbox.KindHandler, error) {
		switch kind {
		case repository.OutboxKindBook:
			return webhookOutboxHandler(client, bookURL), nil
		case repository.OutboxKindReview:
			return webhookOutboxHandler(client, reviewURL), nil
		default:
			return nil, fmt.Errorf("unsupported outbox kind: %d", kind)
		}
	}
}

const contentType = "application/json"

var errFailRequest = errors.New("Not 2xx response")

const statusOk = 2

func webhookOutboxHandler(client *http.Client, url string) outbox.KindHandler {
	return func(_ context.Context, data []byte) error {
		response, err := client.Post(url, contentType, strings.NewReader(string(data)))
		if err != nil {
			return fmt.Errorf("can not make post request to given url: %w", err)
		}

		defer response.Body.Close()

		if response.StatusCode/100 != statusOk {
			return errFailRequest
		}

		return nil
	}
}

func runHTTP(cfg *config.Config, logger *zap.Logger, handler http.Handler) {
	port := ":" + cfg.HTTP.Port
	logger.Info("http server listening at port", zap.String("port", port))

	if err := http.ListenAndServe(port, handler); err != nil {
		logger.Error("http server listen error", zap.Error(err))
	}
}

func runMetrics(cfg *config.Config, logger *zap.Logger) {
	if cfg.Observability.MetricsPort == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	port := ":" + cfg.Observability.MetricsPort
	logger.Info("metrics listening at port", zap.String("port", port))

	if err := http.ListenAndServe(port, mux); err != nil {
		logger.Error("metrics listen error", zap.Error(err))
	}
}
