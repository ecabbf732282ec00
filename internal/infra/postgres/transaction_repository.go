package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var transactionColumns = []string{"id", "title", "price", "description", "category", "image", "sold", "date_of_sale"}

// transactionRow: price fica como TEXT para o ILIKE funcionar igual ao regex do Mongo
type transactionRow struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Price       string    `db:"price"`
	Description string    `db:"description"`
	Category    string    `db:"category"`
	Image       string    `db:"image"`
	Sold        bool      `db:"sold"`
	DateOfSale  time.Time `db:"date_of_sale"`
}

// TransactionRepository implementa gateway.TransactionRepository usando pgx/v5
type TransactionRepository struct {
	db  *pgxpool.Pool
	uow *Uow
}

func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{
		db:  pool,
		uow: NewUow(pool),
	}
}

// ReplaceAll roda TRUNCATE + COPY na mesma transação: ou fica o lote novo inteiro, ou o antigo.
func (r *TransactionRepository) ReplaceAll(ctx context.Context, transactions []domain.Transaction) error {
	return r.uow.Run(ctx, func(ctx context.Context) error {
		q := from(ctx, r.db)

		if _, err := q.Exec(ctx, "TRUNCATE TABLE transactions RESTART IDENTITY"); err != nil {
			return fmt.Errorf("failed to truncate transactions: %w", err)
		}

		_, err := q.CopyFrom(ctx, pgx.Identifier{"transactions"}, transactionColumns,
			pgx.CopyFromSlice(len(transactions), func(i int) ([]any, error) {
				t := transactions[i]
				return []any{t.ID, t.Title, t.SearchablePrice(), t.Description, t.Category, t.Image, t.Sold, t.DateOfSale}, nil
			}),
		)
		if err != nil {
			return fmt.Errorf("failed to copy transactions: %w", err)
		}
		return nil
	})
}

func (r *TransactionRepository) Find(ctx context.Context, filter domain.TransactionFilter, page domain.Page) ([]domain.Transaction, error) {
	where, args := buildWhere(filter)

	sql := "SELECT " + strings.Join(transactionColumns, ", ") + " FROM transactions WHERE " + where + " ORDER BY seq"
	if page.Skip > 0 {
		args = append(args, page.Skip)
		sql += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	if page.Limit > 0 {
		args = append(args, page.Limit)
		sql += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	// Erros do driver sobem sem prefixo: a API devolve a mensagem original
	rows, err := from(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[transactionRow])
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	transactions := make([]domain.Transaction, 0, len(records))
	for _, row := range records {
		t, err := toDomainTransaction(row)
		if err != nil {
			return nil, fmt.Errorf("corrupt transaction %q: %w", row.ID, err)
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}

func (r *TransactionRepository) Count(ctx context.Context, filter domain.TransactionFilter) (int64, error) {
	where, args := buildWhere(filter)

	var total int64
	err := from(ctx, r.db).QueryRow(ctx, "SELECT COUNT(*) FROM transactions WHERE "+where, args...).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *TransactionRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// buildWhere: date_of_sale no intervalo E (title OU description OU price ILIKE %busca%)
func buildWhere(filter domain.TransactionFilter) (string, []any) {
	args := []any{filter.DateRange.Start, filter.DateRange.End}
	where := "date_of_sale >= $1 AND date_of_sale < $2"

	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		where += " AND (title ILIKE $3 OR description ILIKE $3 OR price ILIKE $3)"
	}
	return where, args
}

// escapeLike torna a busca literal (o escape padrão do LIKE é a barra invertida)
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// Mapper: row -> domínio
func toDomainTransaction(row transactionRow) (domain.Transaction, error) {
	price, err := domain.ParsePrice(row.Price)
	if err != nil {
		return domain.Transaction{}, err
	}
	return domain.Transaction{
		ID:          row.ID,
		Title:       row.Title,
		Price:       price,
		PriceText:   row.Price,
		Description: row.Description,
		Category:    row.Category,
		Image:       row.Image,
		Sold:        row.Sold,
		DateOfSale:  row.DateOfSale,
	}, nil
}
