package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/domain"
)

// DefaultURL é o feed público usado pelo dashboard original
const DefaultURL = "https://s3.amazonaws.com/roxiler.com/product_transaction.json"

// record é o formato do feed. price pode vir como número (329.85) ou texto ("329.85");
// json.Number aceita os dois desde que seja numérico.
type record struct {
	ID          json.RawMessage `json:"id"`
	Title       string          `json:"title"`
	Price       json.Number     `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Sold        bool            `json:"sold"`
	DateOfSale  time.Time       `json:"dateOfSale"`
}

// HTTPSource implementa gateway.SeedSource buscando um documento JSON via HTTP(S)
type HTTPSource struct {
	client *http.Client
	url    string
}

func NewHTTPSource(client *http.Client, url string) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if url == "" {
		url = DefaultURL
	}
	return &HTTPSource{client: client, url: url}
}

func (s *HTTPSource) Location() string {
	return s.url
}

// Fetch baixa e valida o lote inteiro. Um registro inválido derruba o lote
// (melhor não recarregar do que recarregar pela metade).
func (s *HTTPSource) Fetch(ctx context.Context) ([]domain.Transaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build seed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSeedUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: seed source returned status %d", domain.ErrSeedUnavailable, resp.StatusCode)
	}

	var records []record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode seed data: %w", err)
	}

	transactions := make([]domain.Transaction, 0, len(records))
	for i, r := range records {
		t, err := r.toDomain()
		if err != nil {
			return nil, fmt.Errorf("invalid seed record %d: %w", i, err)
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}

func (r record) toDomain() (domain.Transaction, error) {
	raw := r.Price.String()
	price, err := domain.ParsePrice(raw)
	if err != nil {
		return domain.Transaction{}, err
	}

	t := domain.Transaction{
		ID:          opaqueID(r.ID),
		Title:       r.Title,
		Price:       price,
		PriceText:   raw,
		Description: r.Description,
		Category:    r.Category,
		Image:       r.Image,
		Sold:        r.Sold,
		DateOfSale:  r.DateOfSale,
	}
	if err := t.Validate(); err != nil {
		return domain.Transaction{}, err
	}
	return t, nil
}

// opaqueID aceita id numérico (1) ou texto ("1") e devolve sempre texto
func opaqueID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
