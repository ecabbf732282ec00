package gateway

import (
	"context"
	"time"
)

// Representa o que salvamos no Redis
type CachedResponse struct {
	StatusCode int
	Body       []byte
	Headers    map[string][]string
}

type ResponseCache interface {
	// Key resolve a chave da URI na geração atual. A mesma chave deve ser usada
	// no Get e no Save da request: assim um reload no meio dela não é mascarado.
	Key(ctx context.Context, uri string) (string, error)

	// Get retorna a resposta cacheada se existir. (nil, nil) quando não existe.
	Get(ctx context.Context, key string) (*CachedResponse, error)

	// Save armazena a resposta com um TTL (Time To Live)
	Save(ctx context.Context, key string, response CachedResponse, ttl time.Duration) error

	// Invalidate descarta tudo o que foi cacheado até agora (chamado após reload)
	Invalidate(ctx context.Context) error
}
