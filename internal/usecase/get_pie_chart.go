package usecase

import (
	"context"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/gateway"
)

type GetPieChartUseCase struct {
	scope monthScope
}

func NewGetPieChart(repo gateway.TransactionRepository, loc *time.Location) *GetPieChartUseCase {
	return &GetPieChartUseCase{scope: newMonthScope(repo, loc)}
}

func (u *GetPieChartUseCase) Execute(ctx context.Context, month string) (map[string]int, error) {
	transactions, err := u.scope.fetch(ctx, month)
	if err != nil {
		return nil, err
	}
	return domain.ComputeCategoryCounts(transactions), nil
}
