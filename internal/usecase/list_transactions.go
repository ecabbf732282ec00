package usecase

import (
	"context"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/domain"
	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/gateway"
)

// ListTransactionsInput: page e perPage já vêm convertidos; <1 volta pro padrão.
type ListTransactionsInput struct {
	Month   string
	Search  string
	Page    int
	PerPage int
}

type ListTransactionsOutput struct {
	Transactions []domain.Transaction
	TotalCount   int64
	TotalPages   int64
	Page         int
	PerPage      int
}

type ListTransactionsUseCase struct {
	scope monthScope
}

func NewListTransactions(repo gateway.TransactionRepository, loc *time.Location) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{scope: newMonthScope(repo, loc)}
}

func (u *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	dateRange, err := u.scope.resolve(input.Month)
	if err != nil {
		return nil, err
	}

	filter := domain.NewTransactionFilter(input.Search, dateRange)
	page := domain.NewPage(input.Page, input.PerPage)

	transactions, err := u.scope.transactionRepository.Find(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	// Mesmo filtro do Find, para o frontend conseguir paginar
	total, err := u.scope.transactionRepository.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	if transactions == nil {
		transactions = []domain.Transaction{}
	}

	return &ListTransactionsOutput{
		Transactions: transactions,
		TotalCount:   total,
		TotalPages:   domain.TotalPages(total, page.Limit),
		Page:         int(page.Skip/page.Limit) + 1,
		PerPage:      int(page.Limit),
	}, nil
}
