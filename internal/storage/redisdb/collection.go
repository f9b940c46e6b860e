// Package redisdb implements the Content Store on Redis: each record is a JSON document
// under content:{collection}:{id}, ordered by a per-collection sorted set.
package redisdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "content:"

type collection[T any] struct {
	client *redis.Client
	name   string
}

func (c collection[T]) docKey(id string) string { return keyPrefix + c.name + ":" + id } // content:servicios:{id}
func (c collection[T]) indexKey() string        { return keyPrefix + c.name + ":index" } // sorted by insertion
func (c collection[T]) seqKey() string          { return keyPrefix + c.name + ":seq" }

func (c collection[T]) list(ctx context.Context) ([]T, error) {
	ids, err := c.client.ZRange(ctx, c.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.name, err)
	}

	out := make([]T, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.docKey(id)
	}

	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.name, err)
	}

	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			// index entry without document, skip it
			continue
		}
		var item T
		if err := json.Unmarshal([]byte(s), &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s data: %w", c.name, err)
		}
		out = append(out, item)
	}
	return out, nil
}

func (c collection[T]) insert(ctx context.Context, id string, item T) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal %s data: %w", c.name, err)
	}

	seq, err := c.client.Incr(ctx, c.seqKey()).Result()
	if err != nil {
		return fmt.Errorf("create %s: %w", c.name, err)
	}

	pipe := c.client.TxPipeline()
	pipe.Set(ctx, c.docKey(id), data, 0)
	pipe.ZAdd(ctx, c.indexKey(), redis.Z{Score: float64(seq), Member: id})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("create %s: %w", c.name, err)
	}
	return nil
}

// replace overwrites an existing document only; it reports false when id is unknown.
func (c collection[T]) replace(ctx context.Context, id string, item T) (bool, error) {
	data, err := json.Marshal(item)
	if err != nil {
		return false, fmt.Errorf("failed to marshal %s data: %w", c.name, err)
	}

	ok, err := c.client.SetXX(ctx, c.docKey(id), data, 0).Result()
	if err != nil {
		return false, fmt.Errorf("replace %s: %w", c.name, err)
	}
	return ok, nil
}

func (c collection[T]) remove(ctx context.Context, id string) (bool, error) {
	pipe := c.client.TxPipeline()
	del := pipe.Del(ctx, c.docKey(id))
	pipe.ZRem(ctx, c.indexKey(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("delete %s: %w", c.name, err)
	}
	return del.Val() > 0, nil
}
