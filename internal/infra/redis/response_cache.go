package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-Transactions-Dashboard/internal/gateway"
	"github.com/redis/go-redis/v9"
)

const (
	generationKey = "dashboard:generation"
	cachePrefix   = "dashboard:cache:"
)

// ResponseCache guarda respostas GET por geração.
// Invalidate só incrementa a geração: as chaves antigas ficam órfãs e expiram pelo TTL.
type ResponseCache struct {
	client *redis.Client
}

func NewResponseCache(client *redis.Client) *ResponseCache {
	return &ResponseCache{client: client}
}

// Key lê a geração uma única vez; a chave devolvida prende a request àquela geração
func (c *ResponseCache) Key(ctx context.Context, uri string) (string, error) {
	generation, err := c.generation(ctx)
	if err != nil {
		return "", err
	}
	return cacheKey(generation, uri), nil
}

func (c *ResponseCache) Get(ctx context.Context, key string) (*gateway.CachedResponse, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Não encontrado (cache miss)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached response: %w", err)
	}

	var resp gateway.CachedResponse
	if err := json.Unmarshal([]byte(val), &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached response: %w", err)
	}

	return &resp, nil
}

// Save grava na chave recebida. Se a geração mudou desde o Key, a entrada fica órfã e expira.
func (c *ResponseCache) Save(ctx context.Context, key string, response gateway.CachedResponse, ttl time.Duration) error {
	bytes, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if err := c.client.Set(ctx, key, bytes, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cached response: %w", err)
	}
	return nil
}

func (c *ResponseCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		return fmt.Errorf("failed to bump cache generation: %w", err)
	}
	return nil
}

func (c *ResponseCache) generation(ctx context.Context) (int64, error) {
	generation, err := c.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil // Nunca houve reload
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get cache generation: %w", err)
	}
	return generation, nil
}

func cacheKey(generation int64, key string) string {
	return fmt.Sprintf("%s%d:%s", cachePrefix, generation, key)
}
