package usecase

import (
	"context"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/gateway"
)

type GetStatisticsUseCase struct {
	scope monthScope
}

func NewGetStatistics(repo gateway.TransactionRepository, loc *time.Location) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{scope: newMonthScope(repo, loc)}
}

func (u *GetStatisticsUseCase) Execute(ctx context.Context, month string) (*domain.Statistics, error) {
	transactions, err := u.scope.fetch(ctx, month)
	if err != nil {
		return nil, err
	}
	stats := domain.ComputeStatistics(transactions)
	return &stats, nil
}
