package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/domain"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// SeedAudit representa um reload registrado pelo worker.
type SeedAudit struct {
	ID          string    `bson:"_id"` // event_id do RabbitMQ: reentrega não duplica
	RecordCount int       `bson:"record_count"`
	SourceURL   string    `bson:"source_url"`
	LoadedAt    time.Time `bson:"loaded_at"`
	ProcessedAt time.Time `bson:"processed_at"`
}

// NewSeedAudit converte o evento recebido no documento de auditoria
func NewSeedAudit(event domain.TransactionsInitializedEvent) SeedAudit {
	return SeedAudit{
		ID:          event.EventID,
		RecordCount: event.RecordCount,
		SourceURL:   event.SourceURL,
		LoadedAt:    event.LoadedAt,
	}
}

type AuditRepository struct {
	collection *mongo.Collection
}

func NewAuditRepository(client *mongo.Client, dbName string) *AuditRepository {
	// Cria/Obtém a collection "seed_audit"
	collection := client.Database(dbName).Collection("seed_audit")
	return &AuditRepository{collection: collection}
}

func (r *AuditRepository) Save(ctx context.Context, audit SeedAudit) error {
	if audit.ID == "" {
		return fmt.Errorf("seed audit without event id")
	}
	// Adiciona timestamp de processamento
	audit.ProcessedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, audit)
	if mongo.IsDuplicateKeyError(err) {
		return nil // Mesmo evento entregue duas vezes
	}
	if err != nil {
		return fmt.Errorf("failed to insert seed audit: %w", err)
	}
	return nil
}
