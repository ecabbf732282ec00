package mongodb

import (
	"testing"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/domain"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestBuildFilterMonthOnly(t *testing.T) {
	march, _ := domain.ParseMonth("2022-03")
	query := buildFilter(domain.NewMonthFilter(march))

	if len(query) != 1 || query[0].Key != "dateOfSale" {
		t.Fatalf("expected only the date constraint, got %v", query)
	}
	bounds, ok := query[0].Value.(bson.D)
	if !ok || len(bounds) != 2 {
		t.Fatalf("unexpected date constraint %v", query[0].Value)
	}
	if bounds[0].Key != "$gte" || !bounds[0].Value.(time.Time).Equal(march.Start) {
		t.Errorf("unexpected lower bound %v", bounds[0])
	}
	if bounds[1].Key != "$lt" || !bounds[1].Value.(time.Time).Equal(march.End) {
		t.Errorf("unexpected upper bound %v", bounds[1])
	}
}

func TestBuildFilterWithSearch(t *testing.T) {
	march, _ := domain.ParseMonth("2022-03")
	query := buildFilter(domain.NewTransactionFilter("a+b (c)", march))

	if len(query) != 2 || query[1].Key != "$or" {
		t.Fatalf("expected date AND $or, got %v", query)
	}
	alternatives, ok := query[1].Value.(bson.A)
	if !ok || len(alternatives) != 3 {
		t.Fatalf("expected three alternatives, got %v", query[1].Value)
	}

	fields := []string{"title", "description", "price"}
	for i, alt := range alternatives {
		clause := alt.(bson.D)
		if clause[0].Key != fields[i] {
			t.Errorf("alternative %d targets %q, want %q", i, clause[0].Key, fields[i])
		}
		regex := clause[0].Value.(bson.Regex)
		if regex.Pattern != `a\+b \(c\)` || regex.Options != "i" {
			t.Errorf("unexpected regex %+v", regex)
		}
	}
}

func TestDocumentMappingRoundTrip(t *testing.T) {
	original := domain.Transaction{
		ID:          "7",
		Title:       "White Gold Plated Princess",
		Price:       decimal.RequireFromString("9.99"),
		Description: "Classic Created Wedding Engagement Solitaire Diamond Promise Ring",
		Category:    "jewelery",
		Image:       "https://fakestoreapi.com/img/71YAIFU48IL._AC_UL640_QL65_ML3_.jpg",
		Sold:        true,
		DateOfSale:  time.Date(2022, 6, 27, 14, 59, 54, 0, time.UTC),
	}

	doc := toDocument(original)
	if doc.Price != "9.99" {
		t.Fatalf("price must be stored as text, got %q", doc.Price)
	}

	back, err := toDomainTransaction(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.ID != original.ID || !back.Price.Equal(original.Price) || !back.DateOfSale.Equal(original.DateOfSale) ||
		back.Category != original.Category || back.Sold != original.Sold || back.Image != original.Image {
		t.Fatalf("round trip mismatch: %+v vs %+v", back, original)
	}
}

func TestDocumentKeepsFeedPriceText(t *testing.T) {
	doc := toDocument(domain.Transaction{ID: "2", Price: decimal.RequireFromString("44.6"), PriceText: "44.60"})
	if doc.Price != "44.60" {
		t.Fatalf("search must run on the feed text, got %q", doc.Price)
	}

	back, err := toDomainTransaction(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.PriceText != "44.60" || !back.Price.Equal(decimal.RequireFromString("44.6")) {
		t.Fatalf("unexpected price mapping %q / %s", back.PriceText, back.Price)
	}
}

func TestCorruptPriceIsReported(t *testing.T) {
	if _, err := toDomainTransaction(transactionDocument{Price: "abc"}); err == nil {
		t.Fatal("expected error for non numeric price")
	}
}

func TestNewSeedAudit(t *testing.T) {
	loaded := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	audit := NewSeedAudit(domain.TransactionsInitializedEvent{
		EventID:     "evt-1",
		RecordCount: 60,
		SourceURL:   "https://example.test/seed.json",
		LoadedAt:    loaded,
	})
	if audit.ID != "evt-1" || audit.RecordCount != 60 || !audit.LoadedAt.Equal(loaded) {
		t.Fatalf("unexpected audit %+v", audit)
	}
}
