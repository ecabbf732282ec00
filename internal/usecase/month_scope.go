package usecase

import (
	"context"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/gateway"
)

// monthScope concentra o que todos os agregadores fazem primeiro:
// validar o mês e buscar tudo daquele mês, sem paginação.
type monthScope struct {
	transactionRepository gateway.TransactionRepository
	location              *time.Location
}

func newMonthScope(repo gateway.TransactionRepository, loc *time.Location) monthScope {
	if loc == nil {
		loc = time.UTC
	}
	return monthScope{transactionRepository: repo, location: loc}
}

func (s monthScope) resolve(month string) (domain.MonthRange, error) {
	return domain.ParseMonthIn(month, s.location)
}

// fetch valida ANTES de tocar no banco. Mês inválido nunca gera query.
func (s monthScope) fetch(ctx context.Context, month string) ([]domain.Transaction, error) {
	dateRange, err := s.resolve(month)
	if err != nil {
		return nil, err
	}

	// Erro do store sobe cru: a mensagem vai direto para o corpo do 500
	return s.transactionRepository.Find(ctx, domain.NewMonthFilter(dateRange), domain.AllRecords)
}
