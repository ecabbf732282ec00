package domain

import "time"

const (
	// Routing key publicada após um reload bem-sucedido
	RoutingKeyTransactionsInitialized = "transactions.initialized"
)

// TransactionsInitializedEvent é o payload que vai para o RabbitMQ (JSON)
type TransactionsInitializedEvent struct {
	EventID     string    `json:"event_id"`
	RecordCount int       `json:"record_count"`
	SourceURL   string    `json:"source_url"`
	LoadedAt    time.Time `json:"loaded_at"`
}

// MessageID vira o message_id da mensagem AMQP
func (e TransactionsInitializedEvent) MessageID() string {
	return e.EventID
}
