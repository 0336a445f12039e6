package note

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/wp-notes-api/sys"
)

// fromCache decodes the value stored under key (and field, for hashes) into dst.
// A miss or a broken entry reports false; cache failures never fail the request.
func fromCache(ctx context.Context, dst any, key, field string) bool {
	logger := sys.R.Log
	cache := sys.R.Cache

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()

	var get string
	var err error
	if field == "" {
		get, err = cache.Get(tcCtx, key).Result()
	} else {
		get, err = cache.HGet(tcCtx, key, field).Result()
	}
	if err != nil && err != redis.Nil {
		logger.Error("failure to get ", key, " from cache: ", err.Error())
	}
	if get == "" {
		return false
	}
	if err := json.Unmarshal([]byte(get), dst); err != nil {
		logger.Errorf("error parsing cached response for key %s: %s", key, err)
		return false
	}
	return true
}

func toCache(ctx context.Context, v any, key, field string) {
	logger := sys.R.Log
	cache := sys.R.Cache

	data, err := json.Marshal(v)
	if err != nil {
		logger.Errorf("error parsing data to cache for key %s: %s", key, err)
		return
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()

	if field == "" {
		err = cache.Set(tcCtx, key, string(data), sys.Configs.Cache.CacheTTL).Err()
	} else {
		_, err = cache.TxPipelined(tcCtx, func(pipe redis.Pipeliner) error {
			pipe.HSet(tcCtx, key, field, string(data))
			pipe.Expire(tcCtx, key, sys.Configs.Cache.CacheTTL)
			return nil
		})
	}
	if err != nil {
		logger.Error("failure to set ", key, " into cache: ", err.Error())
	}
}

// invalidate drops the cached note and every cached listing of the given authors.
func invalidate(ctx context.Context, id uint64, authors ...uint64) {
	keys := []string{fmt.Sprintf(noteKey, id)}
	for _, a := range authors {
		keys = append(keys, fmt.Sprintf(authorKey, a))
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := sys.R.Cache.Del(tcCtx, keys...).Err(); err != nil {
		sys.R.Log.Error("failure to invalidate ", keys, " in cache: ", err.Error())
	}
}
