package domain

import "github.com/shopspring/decimal"

// Statistics resume as vendas de um mês.
type Statistics struct {
	TotalSaleAmount   decimal.Decimal
	TotalSoldItems    int
	TotalNotSoldItems int
}

// ComputeStatistics soma preços e conta vendidos/não vendidos.
func ComputeStatistics(transactions []Transaction) Statistics {
	stats := Statistics{TotalSaleAmount: decimal.Zero}
	for _, t := range transactions {
		stats.TotalSaleAmount = stats.TotalSaleAmount.Add(t.Price)
		if t.Sold {
			stats.TotalSoldItems++
		}
	}
	stats.TotalNotSoldItems = len(transactions) - stats.TotalSoldItems
	return stats
}

// PriceBucket é uma faixa do histograma com limite superior inclusivo.
// A última faixa não tem limite (Unbounded).
type PriceBucket struct {
	Label      string
	UpperBound decimal.Decimal
	Unbounded  bool
}

// PriceBuckets é a tabela fixa de faixas. A ordem aqui é a ordem da resposta.
var PriceBuckets = []PriceBucket{
	{Label: "0-100", UpperBound: decimal.NewFromInt(100)},
	{Label: "101-200", UpperBound: decimal.NewFromInt(200)},
	{Label: "201-300", UpperBound: decimal.NewFromInt(300)},
	{Label: "301-400", UpperBound: decimal.NewFromInt(400)},
	{Label: "401-500", UpperBound: decimal.NewFromInt(500)},
	{Label: "501-600", UpperBound: decimal.NewFromInt(600)},
	{Label: "601-700", UpperBound: decimal.NewFromInt(700)},
	{Label: "701-800", UpperBound: decimal.NewFromInt(800)},
	{Label: "801-900", UpperBound: decimal.NewFromInt(900)},
	{Label: "901-above", Unbounded: true},
}

// BucketCount é uma linha do histograma.
type BucketCount struct {
	Label string
	Count int
}

// ComputePriceHistogram coloca cada preço na primeira faixa cujo limite ele não excede.
// Todas as faixas aparecem na saída, mesmo com zero.
func ComputePriceHistogram(transactions []Transaction) []BucketCount {
	histogram := make([]BucketCount, len(PriceBuckets))
	for i, bucket := range PriceBuckets {
		histogram[i] = BucketCount{Label: bucket.Label}
	}

	for _, t := range transactions {
		for i, bucket := range PriceBuckets {
			if bucket.Unbounded || t.Price.LessThanOrEqual(bucket.UpperBound) {
				histogram[i].Count++
				break
			}
		}
	}
	return histogram
}

// ComputeCategoryCounts agrupa por categoria (texto cru, case-sensitive).
// Categorias que não aparecem ficam fora do mapa.
func ComputeCategoryCounts(transactions []Transaction) map[string]int {
	counts := make(map[string]int)
	for _, t := range transactions {
		counts[t.Category]++
	}
	return counts
}

// MonthlyReport junta as três agregações e a lista crua do mês.
type MonthlyReport struct {
	Transactions []Transaction
	Statistics   Statistics
	BarChart     []BucketCount
	PieChart     map[string]int
}

// BuildMonthlyReport roda os três agregadores sobre o mesmo conjunto.
func BuildMonthlyReport(transactions []Transaction) MonthlyReport {
	return MonthlyReport{
		Transactions: transactions,
		Statistics:   ComputeStatistics(transactions),
		BarChart:     ComputePriceHistogram(transactions),
		PieChart:     ComputeCategoryCounts(transactions),
	}
}
