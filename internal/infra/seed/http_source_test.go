package seed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchDecodesNumericAndTextPrices(t *testing.T) {
	srv := serve(t, http.StatusOK, `[
		{"id":1,"title":"Fjallraven Backpack","price":329.85,"description":"Your perfect pack","category":"men's clothing","image":"https://x/1.jpg","sold":false,"dateOfSale":"2021-11-27T20:29:54+05:30"},
		{"id":"2","title":"Mens Casual T-Shirt","price":"44.60","description":"Slim-fitting","category":"men's clothing","image":"https://x/2.jpg","sold":true,"dateOfSale":"2021-10-27T20:29:54+05:30"}
	]`)

	source := NewHTTPSource(srv.Client(), srv.URL)
	transactions, err := source.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(transactions) != 2 {
		t.Fatalf("expected 2 records, got %d", len(transactions))
	}

	first := transactions[0]
	if first.ID != "1" || first.Title != "Fjallraven Backpack" || first.Sold {
		t.Errorf("unexpected first record %+v", first)
	}
	if !first.Price.Equal(decimal.RequireFromString("329.85")) {
		t.Errorf("price = %s, want 329.85", first.Price)
	}
	if first.DateOfSale.UTC().Format("2006-01-02T15:04") != "2021-11-27T14:59" {
		t.Errorf("unexpected dateOfSale %v", first.DateOfSale)
	}

	second := transactions[1]
	if second.ID != "2" || !second.Price.Equal(decimal.RequireFromString("44.6")) || !second.Sold {
		t.Errorf("unexpected second record %+v", second)
	}
	if second.PriceText != "44.60" || first.PriceText != "329.85" {
		t.Errorf("feed price text lost: %q / %q", first.PriceText, second.PriceText)
	}
}

func TestFetchRejectsInvalidBatch(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative price", `[{"id":1,"price":-3,"dateOfSale":"2021-11-27T20:29:54Z"}]`},
		{"non numeric price", `[{"id":1,"price":"cheap","dateOfSale":"2021-11-27T20:29:54Z"}]`},
		{"missing date", `[{"id":1,"price":3}]`},
		{"bad date", `[{"id":1,"price":3,"dateOfSale":"yesterday"}]`},
		{"not an array", `{"message":"nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serve(t, http.StatusOK, tt.body)
			if _, err := NewHTTPSource(srv.Client(), srv.URL).Fetch(context.Background()); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestFetchUpstreamStatus(t *testing.T) {
	srv := serve(t, http.StatusForbidden, `<Error>AccessDenied</Error>`)

	_, err := NewHTTPSource(srv.Client(), srv.URL).Fetch(context.Background())
	if !errors.Is(err, domain.ErrSeedUnavailable) {
		t.Fatalf("expected ErrSeedUnavailable, got %v", err)
	}
}

func TestNewHTTPSourceDefaults(t *testing.T) {
	source := NewHTTPSource(nil, "")
	if source.Location() != DefaultURL {
		t.Fatalf("expected default url, got %s", source.Location())
	}
	if source.client == nil {
		t.Fatal("expected default client")
	}
}
