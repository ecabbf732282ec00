package domain

import (
	"math"
	"strings"
)

// TransactionFilter é o filtro neutro que cada Record Store traduz para sua linguagem
// (BSON no Mongo, WHERE no Postgres, laço no memory).
//
// Semântica: (title OU description OU price contém Search, sem diferenciar maiúsculas)
// E dateOfSale dentro de DateRange. Search vazio casa com tudo.
type TransactionFilter struct {
	Search    string
	DateRange MonthRange
}

// NewTransactionFilter monta o filtro de busca do mês.
func NewTransactionFilter(search string, dateRange MonthRange) TransactionFilter {
	return TransactionFilter{
		Search:    search,
		DateRange: dateRange,
	}
}

// NewMonthFilter é o filtro usado pelos agregadores: só o mês, sem busca.
func NewMonthFilter(dateRange MonthRange) TransactionFilter {
	return TransactionFilter{DateRange: dateRange}
}

// Matches é a implementação de referência do filtro.
func (f TransactionFilter) Matches(t Transaction) bool {
	if !f.DateRange.Contains(t.DateOfSale) {
		return false
	}
	if f.Search == "" {
		return true
	}

	needle := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(t.Title), needle) ||
		strings.Contains(strings.ToLower(t.Description), needle) ||
		strings.Contains(strings.ToLower(t.SearchablePrice()), needle)
}

// Page define skip/limit. Limit zero significa "sem limite".
type Page struct {
	Skip  int64
	Limit int64
}

const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

// AllRecords é a página sem limite usada pelos agregadores.
var AllRecords = Page{}

// NewPage converte page (1-indexado) e perPage em skip/limit.
// Valores menores que 1 voltam para o padrão. Um skip que estouraria int64
// fica em math.MaxInt64: página além do fim, portanto vazia.
func NewPage(page, perPage int) Page {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	limit := int64(perPage)
	skip := int64(math.MaxInt64)
	if int64(page-1) <= math.MaxInt64/limit {
		skip = int64(page-1) * limit
	}
	return Page{Skip: skip, Limit: limit}
}

// TotalPages = ceil(total / perPage)
func TotalPages(total int64, perPage int64) int64 {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
