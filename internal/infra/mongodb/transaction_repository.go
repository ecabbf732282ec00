package mongodb

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// transactionDocument é o documento salvo no Mongo.
// Usamos tags 'bson' em vez de 'json'. Os nomes seguem o schema original (camelCase).
type transactionDocument struct {
	ObjectID    bson.ObjectID `bson:"_id,omitempty"` // Ordem de inserção
	ID          string        `bson:"id"`
	Title       string        `bson:"title"`
	Price       string        `bson:"price"` // Texto, para a busca por regex funcionar
	Description string        `bson:"description"`
	Category    string        `bson:"category"`
	Image       string        `bson:"image"`
	Sold        bool          `bson:"sold"`
	DateOfSale  time.Time     `bson:"dateOfSale"`
}

// TransactionRepository implementa gateway.TransactionRepository usando mongo-driver/v2
type TransactionRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func NewTransactionRepository(client *mongo.Client, dbName, collectionName string) *TransactionRepository {
	// Cria/Obtém a collection "transactions"
	collection := client.Database(dbName).Collection(collectionName)
	return &TransactionRepository{client: client, collection: collection}
}

// EnsureIndexes cria o índice de dateOfSale usado por todas as consultas do mês
func (r *TransactionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "dateOfSale", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create dateOfSale index: %w", err)
	}
	return nil
}

// ReplaceAll apaga tudo e insere o lote novo.
// Sem transação: se o InsertMany falhar no meio, o próximo reload corrige.
func (r *TransactionRepository) ReplaceAll(ctx context.Context, transactions []domain.Transaction) error {
	if _, err := r.collection.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("failed to delete transactions: %w", err)
	}

	if len(transactions) == 0 {
		return nil
	}

	docs := make([]transactionDocument, 0, len(transactions))
	for _, t := range transactions {
		doc := toDocument(t)
		// ObjectID gerado aqui, em sequência, para o sort por _id refletir a ordem do feed
		doc.ObjectID = bson.NewObjectID()
		docs = append(docs, doc)
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert transactions: %w", err)
	}
	return nil
}

func (r *TransactionRepository) Find(ctx context.Context, filter domain.TransactionFilter, page domain.Page) ([]domain.Transaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if page.Skip > 0 {
		opts.SetSkip(page.Skip)
	}
	if page.Limit > 0 {
		opts.SetLimit(page.Limit)
	}

	// Erros do driver sobem sem prefixo: a API devolve a mensagem original
	cursor, err := r.collection.Find(ctx, buildFilter(filter), opts)
	if err != nil {
		return nil, err
	}

	var docs []transactionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}

	transactions := make([]domain.Transaction, 0, len(docs))
	for _, doc := range docs {
		t, err := toDomainTransaction(doc)
		if err != nil {
			return nil, fmt.Errorf("corrupt transaction %s: %w", doc.ObjectID.Hex(), err)
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}

func (r *TransactionRepository) Count(ctx context.Context, filter domain.TransactionFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, buildFilter(filter))
}

func (r *TransactionRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}

// buildFilter traduz o filtro de domínio:
// { dateOfSale: {$gte, $lt}, $or: [{title: /s/i}, {description: /s/i}, {price: /s/i}] }
// A busca é literal: metacaracteres de regex são escapados.
func buildFilter(filter domain.TransactionFilter) bson.D {
	query := bson.D{
		{Key: "dateOfSale", Value: bson.D{
			{Key: "$gte", Value: filter.DateRange.Start},
			{Key: "$lt", Value: filter.DateRange.End},
		}},
	}

	if filter.Search != "" {
		pattern := bson.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query = append(query, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: pattern}},
			bson.D{{Key: "description", Value: pattern}},
			bson.D{{Key: "price", Value: pattern}},
		}})
	}
	return query
}

// Mappers: domínio <-> documento
func toDocument(t domain.Transaction) transactionDocument {
	return transactionDocument{
		ID:          t.ID,
		Title:       t.Title,
		Price:       t.SearchablePrice(),
		Description: t.Description,
		Category:    t.Category,
		Image:       t.Image,
		Sold:        t.Sold,
		DateOfSale:  t.DateOfSale,
	}
}

func toDomainTransaction(doc transactionDocument) (domain.Transaction, error) {
	price, err := domain.ParsePrice(doc.Price)
	if err != nil {
		return domain.Transaction{}, err
	}
	return domain.Transaction{
		ID:          doc.ID,
		Title:       doc.Title,
		Price:       price,
		PriceText:   doc.Price,
		Description: doc.Description,
		Category:    doc.Category,
		Image:       doc.Image,
		Sold:        doc.Sold,
		DateOfSale:  doc.DateOfSale,
	}, nil
}
