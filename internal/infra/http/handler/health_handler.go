package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler responde se o Record Store está acessível (para o Docker saber se estamos vivos)
type HealthHandler struct {
	store pinger
}

func NewHealthHandler(store pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("Health check falhou: Record Store indisponível")
		respondError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		log.Error().Err(err).Msg("Falha ao escrever resposta de health check")
	}
}
