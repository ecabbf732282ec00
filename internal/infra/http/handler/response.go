package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/domain"
	"github.com/rs/zerolog/log"
)

// Mensagem fixa devolvida ao cliente quando o mês é inválido
const invalidMonthMessage = "Invalid month provided"

// Helpers para resposta JSON
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Falha ao codificar resposta JSON")
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondUseCaseError faz o mapeamento de Erros de Domínio -> HTTP Status Code.
// Só existem dois tipos: validação (400) e todo o resto (500 com a mensagem original).
func respondUseCaseError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidMonth):
		log.Debug().Str("month", r.URL.Query().Get("month")).Msg("Mês inválido")
		respondError(w, http.StatusBadRequest, invalidMonthMessage)
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("Erro interno ao processar requisição")
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}
