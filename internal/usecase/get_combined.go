package usecase

import (
	"context"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/gateway"
)

// GetCombinedUseCase faz UMA busca do mês e roda os três agregadores sobre ela.
// Ou volta tudo, ou nada (sem resposta parcial).
type GetCombinedUseCase struct {
	scope monthScope
}

func NewGetCombined(repo gateway.TransactionRepository, loc *time.Location) *GetCombinedUseCase {
	return &GetCombinedUseCase{scope: newMonthScope(repo, loc)}
}

func (u *GetCombinedUseCase) Execute(ctx context.Context, month string) (*domain.MonthlyReport, error) {
	transactions, err := u.scope.fetch(ctx, month)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	report := domain.BuildMonthlyReport(transactions)
	return &report, nil
}
