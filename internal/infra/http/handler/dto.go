package handler

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/domain"
)

// DTOs (Data Transfer Objects) de resposta.
// Os nomes em camelCase seguem o contrato que o frontend já consome.
type transactionResponse struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Price       json.Number `json:"price"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Image       string      `json:"image"`
	Sold        bool        `json:"sold"`
	DateOfSale  time.Time   `json:"dateOfSale"`
}

type statisticsResponse struct {
	TotalSaleAmount   json.Number `json:"totalSaleAmount"`
	TotalSoldItems    int         `json:"totalSoldItems"`
	TotalNotSoldItems int         `json:"totalNotSoldItems"`
}

// barChartResponse serializa como objeto JSON mantendo a ordem fixa das faixas
type barChartResponse []domain.BucketCount

func (b barChartResponse) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, bucket := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		label, err := json.Marshal(bucket.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(label)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(bucket.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type combinedResponse struct {
	Transactions []transactionResponse `json:"transactions"`
	Statistics   statisticsResponse    `json:"statistics"`
	BarChart     barChartResponse      `json:"barChart"`
	PieChart     map[string]int        `json:"pieChart"`
}

type initializeResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

func toTransactionResponse(t domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:          t.ID,
		Title:       t.Title,
		Price:       json.Number(t.Price.String()),
		Description: t.Description,
		Category:    t.Category,
		Image:       t.Image,
		Sold:        t.Sold,
		DateOfSale:  t.DateOfSale,
	}
}

func toTransactionsResponse(transactions []domain.Transaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, toTransactionResponse(t))
	}
	return out
}

func toStatisticsResponse(s domain.Statistics) statisticsResponse {
	return statisticsResponse{
		TotalSaleAmount:   json.Number(s.TotalSaleAmount.String()),
		TotalSoldItems:    s.TotalSoldItems,
		TotalNotSoldItems: s.TotalNotSoldItems,
	}
}

func toCombinedResponse(report domain.MonthlyReport) combinedResponse {
	return combinedResponse{
		Transactions: toTransactionsResponse(report.Transactions),
		Statistics:   toStatisticsResponse(report.Statistics),
		BarChart:     barChartResponse(report.BarChart),
		PieChart:     report.PieChart,
	}
}
