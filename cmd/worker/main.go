package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/bootstrap"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/config"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/infra/mongodb"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/infra/rabbitmq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// bindingKey: todo evento "transactions.*" do exchange vai para a fila de auditoria
const bindingKey = "transactions.#"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Configuração inválida")
	}
	cfg.SetupLogger()

	if cfg.RabbitMQURL == "" {
		log.Fatal().Msg("RABBITMQ_URL é obrigatório para o worker")
	}

	mongoClient, closeMongo, err := bootstrap.ConnectMongo(cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("Erro ao criar client MongoDB")
	}
	defer closeMongo()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	// Verifica conexão
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal().Err(err).Msg("Erro ao pingar MongoDB")
	}
	log.Info().Msg("✅ Conectado ao MongoDB!")
	auditRepo := mongodb.NewAuditRepository(mongoClient, cfg.MongoAuditDatabase)

	conn, err := amqp.DialConfig(cfg.RabbitMQURL, amqp.Config{
		Properties: amqp.Table{
			"connection_name": "SeedAuditWorker_Consumer",
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Erro ao conectar no RabbitMQ")
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Error().Err(err).Msg("Erro ao fechar conexão RabbitMQ")
		}
	}()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal().Err(err).Msg("Erro ao abrir canal")
	}
	defer func() {
		if err := ch.Close(); err != nil {
			log.Error().Err(err).Msg("Erro ao fechar canal RabbitMQ")
		}
	}()

	// Prefetch = 1: o RabbitMQ só manda a próxima depois do Ack
	if err := ch.Qos(1, 0, false); err != nil {
		log.Fatal().Err(err).Msg("Erro ao configurar QoS")
	}

	if err := rabbitmq.DeclareExchange(ch, cfg.RabbitMQExchange); err != nil {
		log.Fatal().Err(err).Msg("Erro ao declarar exchange")
	}
	q, err := rabbitmq.DeclareQueue(ch, cfg.RabbitMQExchange, cfg.RabbitMQQueue, bindingKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Erro ao declarar fila")
	}

	msgs, err := ch.Consume(
		q.Name,              // queue
		"seed_audit_worker", // consumer tag
		false,               // auto-ack (Ack manual depois de gravar no Mongo)
		false,               // exclusive
		false,               // no-local
		false,               // no-wait
		nil,                 // args
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Erro ao registrar consumidor")
	}

	// Monitoramento de queda de conexão
	notifyClose := make(chan *amqp.Error, 1)
	ch.NotifyClose(notifyClose)

	log.Info().Str("queue", q.Name).Msg(" [*] Worker iniciado. Aguardando mensagens...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Desligando worker...")
			return
		case err := <-notifyClose:
			// Força o worker a cair para o Docker subir de novo
			log.Fatal().Err(err).Msg("🔴 Canal RabbitMQ fechado")
		case d, ok := <-msgs:
			if !ok {
				log.Fatal().Msg("🔴 Canal de mensagens fechado")
			}
			handleDelivery(ctx, auditRepo, d)
		}
	}
}

type auditSaver interface {
	Save(ctx context.Context, audit mongodb.SeedAudit) error
}

type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

// handleDelivery grava a auditoria e decide Ack / Nack com ou sem requeue
func handleDelivery(ctx context.Context, repo auditSaver, d amqp.Delivery) {
	processDelivery(ctx, repo, d.RoutingKey, d.Body, &d)
}

func processDelivery(ctx context.Context, repo auditSaver, routingKey string, body []byte, ack acknowledger) {
	log.Debug().Str("routing_key", routingKey).Bytes("body", body).Msg(" [⬇️] Recebido")

	var event domain.TransactionsInitializedEvent
	if err := json.Unmarshal(body, &event); err != nil || event.EventID == "" {
		log.Error().Err(err).Msg("Evento inválido, descartando")
		// Mensagem envenenada: sem requeue para não entrar em loop
		if err := ack.Nack(false, false); err != nil {
			log.Error().Err(err).Msg("Erro ao enviar Nack (JSON inválido)")
		}
		return
	}

	saveCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := repo.Save(saveCtx, mongodb.NewSeedAudit(event)); err != nil {
		log.Error().Err(err).Str("event_id", event.EventID).Msg("Erro ao salvar no Mongo")
		if err := ack.Nack(false, true); err != nil {
			log.Error().Err(err).Msg("Erro ao enviar Nack (Mongo erro)")
		}
		return
	}

	if err := ack.Ack(false); err != nil {
		log.Error().Err(err).Msg("Erro ao enviar Ack")
		return
	}
	log.Info().Str("event_id", event.EventID).Int("records", event.RecordCount).Msg(" [✅] Salvo no MongoDB e Ack enviado.")
}
