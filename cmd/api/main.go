package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/bootstrap"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/config"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/gateway"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/infra/http/handler"
	internalMiddleware "github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/infra/http/middleware"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/infra/http/router"
	redisInfra "github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/infra/redis"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/infra/seed"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/usecase"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Configuração inválida")
	}
	cfg.SetupLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Record Store (mongo | postgres | memory)
	transactionRepository, closeStore, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.DataBackend).Msg("Não foi possível abrir o Record Store")
	}
	defer closeStore()

	// 2. Cache de respostas (opcional)
	var responseCache gateway.ResponseCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error().Err(err).Msg("Erro ao fechar conexão Redis")
			}
		}()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("Não foi possível conectar ao Redis (cache desabilitado)")
		} else {
			log.Info().Msg("✅ Conectado ao Redis!")
			responseCache = redisInfra.NewResponseCache(redisClient)
		}
	}

	// 3. Eventos de reload (opcional)
	var eventPublisher gateway.EventPublisher
	if cfg.RabbitMQURL != "" {
		publisher, closeRabbit, err := bootstrap.OpenPublisher(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("Falha ao conectar no RabbitMQ (eventos não serão enviados)")
		} else {
			defer closeRabbit()
			log.Info().Msg("✅ Conectado ao RabbitMQ!")
			eventPublisher = publisher
		}
	}

	// UseCases
	seedSource := seed.NewHTTPSource(&http.Client{Timeout: cfg.SeedTimeout}, cfg.SeedURL)
	initializeUseCase := usecase.NewInitializeTransactions(seedSource, transactionRepository, responseCache, eventPublisher, cfg.RabbitMQExchange)
	listUseCase := usecase.NewListTransactions(transactionRepository, cfg.Timezone)
	statisticsUseCase := usecase.NewGetStatistics(transactionRepository, cfg.Timezone)
	barChartUseCase := usecase.NewGetBarChart(transactionRepository, cfg.Timezone)
	pieChartUseCase := usecase.NewGetPieChart(transactionRepository, cfg.Timezone)
	combinedUseCase := usecase.NewGetCombined(transactionRepository, cfg.Timezone)

	// Handlers
	transactionHandler := handler.NewTransactionHandler(
		initializeUseCase,
		listUseCase,
		statisticsUseCase,
		barChartUseCase,
		pieChartUseCase,
		combinedUseCase,
	)
	healthHandler := handler.NewHealthHandler(transactionRepository)

	routerCfg := router.Config{
		Transactions:   transactionHandler,
		Health:         healthHandler,
		ResponseCache:  responseCache,
		CacheTTL:       cfg.CacheTTL,
		RequestTimeout: cfg.RequestTimeout,
	}
	if cfg.MetricsEnabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		routerCfg.Metrics = internalMiddleware.NewMetrics(registry)
		routerCfg.MetricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.New(routerCfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Msgf("🚀 Servidor rodando na porta %s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Desligando servidor HTTP...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Servidor HTTP encerrou com erro")
		closeStore()
		os.Exit(1)
	}
	log.Info().Msg("Servidor encerrado")
}
