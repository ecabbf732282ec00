package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/gateway"
	"github.com/rs/zerolog/log"
)

// responseRecorder é um "espião" que grava o que o handler escreve
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)                  // Grava no nosso buffer
	return r.ResponseWriter.Write(b) // Manda pro cliente
}

// cachedHeaders são os headers que precisam voltar junto com o corpo cacheado
var cachedHeaders = []string{"Content-Type", "X-Total-Count", "X-Total-Pages"}

// ResponseCache cacheia respostas GET 200 pela URI completa (path + query).
// Cache nil desliga o middleware.
func ResponseCache(store gateway.ResponseCache, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if store == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()

			// A chave é resolvida uma vez: Get e Save ficam na mesma geração
			key, err := store.Key(ctx, r.URL.RequestURI())
			if err != nil {
				log.Error().Err(err).Msg("Falha ao resolver chave do cache")
				next.ServeHTTP(w, r)
				return
			}

			cached, err := store.Get(ctx, key)
			if err != nil {
				log.Error().Err(err).Msg("Falha ao buscar resposta no cache")
				// Em caso de erro no Redis, deixamos passar para não travar a API (Fail Open)
				next.ServeHTTP(w, r)
				return
			}

			// Cache Hit: Retornar o que já tínhamos gravado
			if cached != nil {
				log.Debug().Str("key", key).Msg("Response cache hit")
				for name, values := range cached.Headers {
					for _, v := range values {
						w.Header().Add(name, v)
					}
				}
				w.Header().Set("X-Cache-Hit", "true")
				w.WriteHeader(cached.StatusCode)
				if _, err := w.Write(cached.Body); err != nil {
					log.Error().Err(err).Msg("Falha ao escrever resposta cacheada")
				}
				return
			}

			// Cache Miss: Processar a requisição e gravar a resposta
			recorder := &responseRecorder{
				ResponseWriter: w,
				statusCode:     http.StatusOK, // Default
				body:           &bytes.Buffer{},
			}

			next.ServeHTTP(recorder, r)

			// Só sucesso: 400 é barato de recalcular e 500 precisa permitir retry
			if recorder.statusCode != http.StatusOK {
				return
			}

			headers := make(map[string][]string)
			for _, name := range cachedHeaders {
				if values := w.Header().Values(name); len(values) > 0 {
					headers[name] = values
				}
			}

			err = store.Save(ctx, key, gateway.CachedResponse{
				StatusCode: recorder.statusCode,
				Body:       recorder.body.Bytes(),
				Headers:    headers,
			}, ttl)
			if err != nil {
				log.Error().Err(err).Msg("Falha ao salvar resposta no cache")
			}
		})
	}
}
