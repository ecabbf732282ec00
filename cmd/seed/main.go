package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/bootstrap"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/config"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/gateway"
	redisInfra "github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/infra/redis"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/infra/seed"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/usecase"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Carga única do seed, sem subir o servidor (útil em job de deploy)
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Configuração inválida")
	}
	cfg.SetupLogger()

	if cfg.DataBackend == config.BackendMemory {
		log.Fatal().Msg("DATA_BACKEND=memory não persiste nada; use mongo ou postgres")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	transactionRepository, closeStore, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Não foi possível abrir o Record Store")
	}
	defer closeStore()

	var responseCache gateway.ResponseCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error().Err(err).Msg("Erro ao fechar conexão Redis")
			}
		}()
		responseCache = redisInfra.NewResponseCache(redisClient)
	}

	var eventPublisher gateway.EventPublisher
	if cfg.RabbitMQURL != "" {
		publisher, closeRabbit, err := bootstrap.OpenPublisher(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("Falha ao conectar no RabbitMQ (evento não será enviado)")
		} else {
			defer closeRabbit()
			eventPublisher = publisher
		}
	}

	source := seed.NewHTTPSource(&http.Client{Timeout: cfg.SeedTimeout}, cfg.SeedURL)
	initialize := usecase.NewInitializeTransactions(source, transactionRepository, responseCache, eventPublisher, cfg.RabbitMQExchange)

	output, err := initialize.Execute(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Falha ao carregar seed")
		closeStore()
		os.Exit(1)
	}
	log.Info().Int("count", output.Count).Msg(output.Message)
}
