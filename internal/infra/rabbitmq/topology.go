package rabbitmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DeclareExchange garante que a exchange de tópico existe (idempotente)
func DeclareExchange(ch *amqp.Channel, exchange string) error {
	err := ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}
	return nil
}

// DeclareQueue declara a fila durável e amarra ao exchange com o binding informado
func DeclareQueue(ch *amqp.Channel, exchange, queue, bindingKey string) (amqp.Queue, error) {
	q, err := ch.QueueDeclare(
		queue, // name
		true,  // durable (sobrevive a restart do server)
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return amqp.Queue{}, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	if err := ch.QueueBind(q.Name, bindingKey, exchange, false, nil); err != nil {
		return amqp.Queue{}, fmt.Errorf("failed to bind queue %s: %w", queue, err)
	}
	return q, nil
}
