package usecase

import (
	"context"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/gateway"
)

type GetBarChartUseCase struct {
	scope monthScope
}

func NewGetBarChart(repo gateway.TransactionRepository, loc *time.Location) *GetBarChartUseCase {
	return &GetBarChartUseCase{scope: newMonthScope(repo, loc)}
}

// Execute devolve sempre as 10 faixas, na ordem de domain.PriceBuckets
func (u *GetBarChartUseCase) Execute(ctx context.Context, month string) ([]domain.BucketCount, error) {
	transactions, err := u.scope.fetch(ctx, month)
	if err != nil {
		return nil, err
	}
	return domain.ComputePriceHistogram(transactions), nil
}
