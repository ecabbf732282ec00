package domain

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestTransactionFilterMatches(t *testing.T) {
	march, _ := ParseMonth("2022-03")
	inMarch := time.Date(2022, 3, 15, 10, 0, 0, 0, time.UTC)
	inApril := time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC)

	record := Transaction{
		Title:       "Mens Casual Premium Slim Fit T-Shirts",
		Description: "Slim-fitting style, contrast raglan long sleeve",
		Price:       decimal.RequireFromString("22.3"),
		PriceText:   "22.30",
		DateOfSale:  inMarch,
	}

	tests := []struct {
		name   string
		search string
		date   time.Time
		want   bool
	}{
		{"empty search matches month", "", inMarch, true},
		{"empty search outside month", "", inApril, false},
		{"title case insensitive", "premium", inMarch, true},
		{"description", "RAGLAN", inMarch, true},
		{"price as text", "22.3", inMarch, true},
		{"price partial", "2.", inMarch, true},
		{"no match", "laptop", inMarch, false},
		{"match but wrong month", "premium", inApril, false},
		{"regex metacharacters are literal", "T-Sh.rts", inMarch, false},
		{"price keeps feed text", "22.30", inMarch, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := record
			r.DateOfSale = tt.date
			got := NewTransactionFilter(tt.search, march).Matches(r)
			if got != tt.want {
				t.Fatalf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		page, perPage int
		want          Page
	}{
		{1, 10, Page{Skip: 0, Limit: 10}},
		{3, 10, Page{Skip: 20, Limit: 10}},
		{2, 25, Page{Skip: 25, Limit: 25}},
		{0, 10, Page{Skip: 0, Limit: 10}},
		{-4, 0, Page{Skip: 0, Limit: 10}},
		{math.MaxInt, 10, Page{Skip: math.MaxInt64, Limit: 10}},
		{math.MaxInt32, math.MaxInt32, Page{Skip: (math.MaxInt32 - 1) * math.MaxInt32, Limit: math.MaxInt32}},
	}

	for _, tt := range tests {
		if got := NewPage(tt.page, tt.perPage); got != tt.want {
			t.Errorf("NewPage(%d, %d) = %+v, want %+v", tt.page, tt.perPage, got, tt.want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, perPage, want int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{60, 7, 9},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.perPage); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.perPage, got, tt.want)
		}
	}
}

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{Price: decimal.NewFromInt(5), DateOfSale: time.Now()}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	negative := valid
	negative.Price = decimal.NewFromInt(-1)
	if err := negative.Validate(); err != ErrInvalidPrice {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}

	noDate := valid
	noDate.DateOfSale = time.Time{}
	if err := noDate.Validate(); err != ErrInvalidDateOfSale {
		t.Fatalf("expected ErrInvalidDateOfSale, got %v", err)
	}
}
