package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction representa uma venda do catálogo.
// Clean Architecture: Esta entidade não sabe o que é JSON, BSON nem SQL.
type Transaction struct {
	ID          string
	Title       string
	Price       decimal.Decimal // Vem como texto no feed, convertido na entrada
	PriceText   string          // Texto original do feed ("44.60"), usado na busca
	Description string
	Category    string
	Image       string
	Sold        bool
	DateOfSale  time.Time
}

// Validate garante os invariantes antes de qualquer gravação
func (t *Transaction) Validate() error {
	if t.Price.IsNegative() {
		return ErrInvalidPrice
	}
	if t.DateOfSale.IsZero() {
		return ErrInvalidDateOfSale
	}
	return nil
}

// SearchablePrice é o preço como apareceu no feed; sem ele, a forma canônica do decimal
func (t Transaction) SearchablePrice() string {
	if t.PriceText != "" {
		return t.PriceText
	}
	return t.Price.String()
}

// ParsePrice converte o preço em texto (ex: "329.85") para decimal.
func ParsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrInvalidPrice
	}
	return price, nil
}
