package memory

import (
	"context"
	"sync"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/domain"
)

// TransactionRepository guarda tudo num slice, na ordem de inserção.
// Usado em testes e com DATA_BACKEND=memory.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions []domain.Transaction
	err          error
}

func NewTransactionRepository(seed ...domain.Transaction) *TransactionRepository {
	return &TransactionRepository{
		transactions: append([]domain.Transaction(nil), seed...),
	}
}

// WithError faz todas as chamadas seguintes falharem com err (simula banco fora do ar)
func (r *TransactionRepository) WithError(err error) *TransactionRepository {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
	return r
}

func (r *TransactionRepository) ReplaceAll(_ context.Context, transactions []domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	r.transactions = append([]domain.Transaction(nil), transactions...)
	return nil
}

func (r *TransactionRepository) Find(_ context.Context, filter domain.TransactionFilter, page domain.Page) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.err != nil {
		return nil, r.err
	}

	result := []domain.Transaction{}
	var skipped int64
	for _, t := range r.transactions {
		if !filter.Matches(t) {
			continue
		}
		if skipped < page.Skip {
			skipped++
			continue
		}
		result = append(result, t)
		if page.Limit > 0 && int64(len(result)) >= page.Limit {
			break
		}
	}
	return result, nil
}

func (r *TransactionRepository) Count(_ context.Context, filter domain.TransactionFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.err != nil {
		return 0, r.err
	}

	var total int64
	for _, t := range r.transactions {
		if filter.Matches(t) {
			total++
		}
	}
	return total, nil
}

func (r *TransactionRepository) Ping(context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.err
}
