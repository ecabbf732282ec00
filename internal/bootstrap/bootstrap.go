package bootstrap

import (
	"context"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/config"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/gateway"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/infra/memory"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/infra/mongodb"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/infra/postgres"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/infra/rabbitmq"
	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// OpenStore escolhe o Record Store pelo DATA_BACKEND e devolve a função de fechamento
func OpenStore(ctx context.Context, cfg *config.Config) (gateway.TransactionRepository, func(), error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	switch cfg.DataBackend {
	case config.BackendMongo:
		client, closeFn, err := ConnectMongo(cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		repo := mongodb.NewTransactionRepository(client, cfg.MongoDatabase, cfg.MongoCollection)
		// Índice é best-effort: sem ele a API funciona, só fica mais lenta
		if err := repo.EnsureIndexes(connectCtx); err != nil {
			log.Warn().Err(err).Msg("Não foi possível criar índices no MongoDB")
		} else {
			log.Info().Msg("✅ Conectado ao MongoDB!")
		}
		return repo, closeFn, nil

	case config.BackendPostgres:
		if cfg.DBMigrate {
			if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
				return nil, nil, err
			}
			log.Info().Msg("Migrations aplicadas")
		}
		pool, err := pgxpool.New(connectCtx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := pool.Ping(connectCtx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info().Msg("✅ Conectado ao PostgreSQL com sucesso!")
		return postgres.NewTransactionRepository(pool), pool.Close, nil

	default:
		log.Warn().Msg("Usando Record Store em memória: dados somem ao reiniciar")
		return memory.NewTransactionRepository(), func() {}, nil
	}
}

// OpenPublisher conecta no RabbitMQ e garante que o exchange existe
func OpenPublisher(cfg *config.Config) (*rabbitmq.RabbitMQPublisher, func(), error) {
	conn, err := amqp.DialConfig(cfg.RabbitMQURL, amqp.Config{
		Properties: amqp.Table{
			"connection_name": "DashboardAPI_Publisher",
		},
	})
	if err != nil {
		return nil, nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	if err := rabbitmq.DeclareExchange(ch, cfg.RabbitMQExchange); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, err
	}

	closeFn := func() {
		if err := ch.Close(); err != nil {
			log.Error().Err(err).Msg("Erro ao fechar canal RabbitMQ")
		}
		if err := conn.Close(); err != nil {
			log.Error().Err(err).Msg("Erro ao fechar conexão RabbitMQ")
		}
	}
	return rabbitmq.NewRabbitMQPublisher(ch), closeFn, nil
}

// ConnectMongo cria o client (a conexão real é preguiçosa) e a função de fechamento
func ConnectMongo(uri string) (*mongo.Client, func(), error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("Erro ao desconectar Mongo")
		}
	}
	return client, closeFn, nil
}
