package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/usecase"
)

// TransactionHandler expõe o dashboard de transações via HTTP
type TransactionHandler struct {
	initializeUseCase *usecase.InitializeTransactionsUseCase
	listUseCase       *usecase.ListTransactionsUseCase
	statisticsUseCase *usecase.GetStatisticsUseCase
	barChartUseCase   *usecase.GetBarChartUseCase
	pieChartUseCase   *usecase.GetPieChartUseCase
	combinedUseCase   *usecase.GetCombinedUseCase
}

// NewTransactionHandler cria uma nova instância
func NewTransactionHandler(
	initializeUC *usecase.InitializeTransactionsUseCase,
	listUC *usecase.ListTransactionsUseCase,
	statisticsUC *usecase.GetStatisticsUseCase,
	barChartUC *usecase.GetBarChartUseCase,
	pieChartUC *usecase.GetPieChartUseCase,
	combinedUC *usecase.GetCombinedUseCase,
) *TransactionHandler {
	return &TransactionHandler{
		initializeUseCase: initializeUC,
		listUseCase:       listUC,
		statisticsUseCase: statisticsUC,
		barChartUseCase:   barChartUC,
		pieChartUseCase:   pieChartUC,
		combinedUseCase:   combinedUC,
	}
}

// Initialize recarrega a base a partir do seed remoto
func (h *TransactionHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	output, err := h.initializeUseCase.Execute(r.Context())
	if err != nil {
		respondUseCaseError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, initializeResponse{
		Message: output.Message,
		Count:   output.Count,
	})
}

// List processa a listagem paginada com busca
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	output, err := h.listUseCase.Execute(r.Context(), usecase.ListTransactionsInput{
		Month:   query.Get("month"),
		Search:  query.Get("search"),
		Page:    queryInt(query.Get("page")),
		PerPage: queryInt(query.Get("perPage")),
	})
	if err != nil {
		respondUseCaseError(w, r, err)
		return
	}

	// O corpo continua sendo só o array; a paginação vai nos headers
	w.Header().Set("X-Total-Count", strconv.FormatInt(output.TotalCount, 10))
	w.Header().Set("X-Total-Pages", strconv.FormatInt(output.TotalPages, 10))
	respondJSON(w, http.StatusOK, toTransactionsResponse(output.Transactions))
}

func (h *TransactionHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statisticsUseCase.Execute(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		respondUseCaseError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toStatisticsResponse(*stats))
}

func (h *TransactionHandler) BarChart(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.barChartUseCase.Execute(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		respondUseCaseError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, barChartResponse(buckets))
}

func (h *TransactionHandler) PieChart(w http.ResponseWriter, r *http.Request) {
	counts, err := h.pieChartUseCase.Execute(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		respondUseCaseError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, counts)
}

func (h *TransactionHandler) Combined(w http.ResponseWriter, r *http.Request) {
	report, err := h.combinedUseCase.Execute(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		respondUseCaseError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toCombinedResponse(*report))
}

// queryInt devolve 0 para vazio/inválido; o usecase troca 0 pelo padrão
func queryInt(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}
