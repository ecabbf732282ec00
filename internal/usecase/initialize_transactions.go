package usecase

import (
	"context"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/gateway"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const InitializeMessage = "Database initialized with seed data"

type InitializeTransactionsOutput struct {
	Message string
	Count   int
}

// InitializeTransactionsUseCase é o Seed Loader: busca o JSON remoto e substitui tudo.
type InitializeTransactionsUseCase struct {
	seedSource            gateway.SeedSource
	transactionRepository gateway.TransactionRepository
	responseCache         gateway.ResponseCache  // opcional
	eventPublisher        gateway.EventPublisher // opcional
	exchange              string
	now                   func() time.Time
}

func NewInitializeTransactions(
	source gateway.SeedSource,
	repo gateway.TransactionRepository,
	cache gateway.ResponseCache,
	publisher gateway.EventPublisher,
	exchange string,
) *InitializeTransactionsUseCase {
	return &InitializeTransactionsUseCase{
		seedSource:            source,
		transactionRepository: repo,
		responseCache:         cache,
		eventPublisher:        publisher,
		exchange:              exchange,
		now:                   time.Now,
	}
}

func (u *InitializeTransactionsUseCase) Execute(ctx context.Context) (*InitializeTransactionsOutput, error) {
	// Busca e valida ANTES de apagar qualquer coisa: se o feed falhar, os dados antigos ficam.
	transactions, err := u.seedSource.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if err := u.transactionRepository.ReplaceAll(ctx, transactions); err != nil {
		return nil, err
	}

	// Daqui pra baixo nada falha a request: os dados novos já estão gravados.
	if u.responseCache != nil {
		if err := u.responseCache.Invalidate(ctx); err != nil {
			log.Error().Err(err).Msg("Falha ao invalidar cache de respostas")
		}
	}

	if u.eventPublisher != nil {
		event := domain.TransactionsInitializedEvent{
			EventID:     uuid.NewString(),
			RecordCount: len(transactions),
			SourceURL:   u.seedSource.Location(),
			LoadedAt:    u.now().UTC(),
		}
		if err := u.eventPublisher.Publish(ctx, u.exchange, domain.RoutingKeyTransactionsInitialized, event); err != nil {
			log.Error().Err(err).Msg("Falha ao publicar evento de reload")
		}
	}

	log.Info().Int("count", len(transactions)).Str("source", u.seedSource.Location()).Msg("Base recarregada")

	return &InitializeTransactionsOutput{
		Message: InitializeMessage,
		Count:   len(transactions),
	}, nil
}
