package gateway

import (
	"context"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/domain"
)

// TransactionRepository é o Record Store.
// O Usecase só interage com isso, sem saber se é Mongo, Postgres ou memória.
type TransactionRepository interface {
	// ReplaceAll descarta tudo e grava o novo conjunto (reload destrutivo)
	ReplaceAll(ctx context.Context, transactions []domain.Transaction) error

	// Find devolve na ordem de inserção. domain.AllRecords = sem limite.
	Find(ctx context.Context, filter domain.TransactionFilter, page domain.Page) ([]domain.Transaction, error)

	Count(ctx context.Context, filter domain.TransactionFilter) (int64, error)

	Ping(ctx context.Context) error
}

// SeedSource busca o dataset inicial (ex: JSON remoto)
type SeedSource interface {
	Fetch(ctx context.Context) ([]domain.Transaction, error)
	Location() string
}
