package gateway

import "context"

// EventPublisher avisa outros serviços que a base mudou (ex.: reload do seed).
// Implementações são best-effort: quem chama só loga o erro.
type EventPublisher interface {
	Publish(ctx context.Context, exchange, routingKey string, event any) error
}
