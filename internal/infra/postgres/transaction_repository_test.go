package postgres

import (
	"testing"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/domain"
)

func TestBuildWhere(t *testing.T) {
	march, _ := domain.ParseMonth("2022-03")

	where, args := buildWhere(domain.NewMonthFilter(march))
	if where != "date_of_sale >= $1 AND date_of_sale < $2" {
		t.Errorf("unexpected where %q", where)
	}
	if len(args) != 2 || !args[0].(time.Time).Equal(march.Start) || !args[1].(time.Time).Equal(march.End) {
		t.Errorf("unexpected args %v", args)
	}

	where, args = buildWhere(domain.NewTransactionFilter("50%_off", march))
	if where != "date_of_sale >= $1 AND date_of_sale < $2 AND (title ILIKE $3 OR description ILIKE $3 OR price ILIKE $3)" {
		t.Errorf("unexpected where %q", where)
	}
	if len(args) != 3 || args[2] != `%50\%\_off%` {
		t.Errorf("unexpected search arg %v", args)
	}
}

func TestEscapeLike(t *testing.T) {
	tests := map[string]string{
		"plain":    "plain",
		"100%":     `100\%`,
		"a_b":      `a\_b`,
		`back\ref`: `back\\ref`,
	}
	for in, want := range tests {
		if got := escapeLike(in); got != want {
			t.Errorf("escapeLike(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMigrateURL(t *testing.T) {
	tests := map[string]string{
		"postgres://u:p@localhost:5432/db?sslmode=disable":   "pgx5://u:p@localhost:5432/db?sslmode=disable",
		"postgresql://u:p@localhost:5432/db?sslmode=disable": "pgx5://u:p@localhost:5432/db?sslmode=disable",
		"pgx5://already":                                     "pgx5://already",
	}
	for in, want := range tests {
		if got := migrateURL(in); got != want {
			t.Errorf("migrateURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToDomainTransaction(t *testing.T) {
	row := transactionRow{ID: "3", Price: "55.99", Category: "electronics", DateOfSale: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)}
	tr, err := toDomainTransaction(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Price.String() != "55.99" || tr.Category != "electronics" {
		t.Fatalf("unexpected mapping %+v", tr)
	}

	row.Price = "n/a"
	if _, err := toDomainTransaction(row); err == nil {
		t.Fatal("expected error for non numeric price")
	}
}
