package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// identified é implementado por eventos que carregam o próprio ID
type identified interface {
	MessageID() string
}

// RabbitMQPublisher implementa gateway.EventPublisher num canal já aberto
type RabbitMQPublisher struct {
	channel *amqp.Channel
	appID   string
	now     func() time.Time
}

func NewRabbitMQPublisher(ch *amqp.Channel) *RabbitMQPublisher {
	return &RabbitMQPublisher{channel: ch, appID: "transactions-dashboard", now: time.Now}
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, exchange, routingKey string, event any) error {
	msg, err := newPublishing(routingKey, event, p.now())
	if err != nil {
		return err
	}
	msg.AppId = p.appID

	if err := p.channel.PublishWithContext(ctx, exchange, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("failed to publish %s to %s: %w", routingKey, exchange, err)
	}

	log.Info().Str("exchange", exchange).Str("routing_key", routingKey).Str("message_id", msg.MessageId).Msg("Evento publicado no RabbitMQ")
	return nil
}

// newPublishing monta a mensagem persistente; Type repete a routing key para o consumidor
func newPublishing(routingKey string, event any, at time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         routingKey,
		Timestamp:    at.UTC(),
		Body:         body,
	}
	if ev, ok := event.(identified); ok {
		msg.MessageId = ev.MessageID()
	}
	return msg, nil
}
