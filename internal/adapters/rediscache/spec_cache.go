package rediscache

import (
	"ad-service/internal/core/domain"
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Спецификация неизменяема после создания объявления, поэтому TTL
// служит только ограничением объема, а не сроком консистентности.
const specTTL = 1 * time.Hour

type cacheEnvelope struct {
	Category domain.Category `json:"category"`
	Payload  json.RawMessage `json:"payload"`
}

// SpecificationCache реализует SpecificationCachePort поверх Redis.
type SpecificationCache struct {
	client *redis.Client
}

func NewSpecificationCache(addr string) (*SpecificationCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr, // e.g., "localhost:6379"
	})
	_, err := client.Ping(context.Background()).Result()
	if err != nil {
		return nil, err
	}
	return &SpecificationCache{client: client}, nil
}

func specKey(adID uuid.UUID) string {
	return "ad_spec:" + adID.String()
}

func (c *SpecificationCache) Get(ctx context.Context, adID uuid.UUID, category domain.Category) (domain.Specification, error) {
	data, err := c.client.Get(ctx, specKey(adID)).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		return nil, err
	}

	var envelope cacheEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}
	// Запись другой категории бесполезна — считаем промахом
	if envelope.Category != category {
		return nil, nil
	}

	spec := domain.EmptySpecificationFor(envelope.Category)
	if spec == nil {
		return nil, nil
	}
	if err := json.Unmarshal(envelope.Payload, spec); err != nil {
		return nil, err
	}
	return spec, nil
}

func (c *SpecificationCache) Set(ctx context.Context, adID uuid.UUID, spec domain.Specification) error {
	payload, err := json.Marshal(spec)
	if err != nil {
		return err
	}
	data, err := json.Marshal(cacheEnvelope{Category: spec.Category(), Payload: payload})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, specKey(adID), data, specTTL).Err()
}

func (c *SpecificationCache) Delete(ctx context.Context, adID uuid.UUID) error {
	return c.client.Del(ctx, specKey(adID)).Err()
}
