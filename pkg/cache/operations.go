package cache

import (
	"context"
	"encoding/json"
	"time"

	"homescout-listings/pkg/logger"
	"homescout-listings/pkg/metrics"
)

// store a value in the cache with the given key and expiration time.
func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	start := time.Now()
	data, err := json.Marshal(value)
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set_marshal").Inc()
		logger.GlobalLogger.Errorf("failed to marshal value for key %s: %v", key, err)
		return NewCacheError("marshal", err, true)
	}
	err = RedisClient.Set(ctx, key, data, expiration).Err()
	metrics.RedisOperationDuration.WithLabelValues("set").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set").Inc()
		logger.GlobalLogger.Errorf("failed to set key %s: %v", key, err)
		return NewCacheError("set", err, false)
	}
	return nil
}

// retrieve a value from the cache and unmarshal it into the destination.
func Get(ctx context.Context, key string, dest interface{}) error {
	start := time.Now()
	val, err := RedisClient.Get(ctx, key).Result()
	metrics.RedisOperationDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get_unmarshal").Inc()
		logger.GlobalLogger.Errorf("failed to unmarshal value for key %s: %v", key, err)
		return NewCacheError("unmarshal", err, true)
	}
	return nil
}

// remove a key from the cache.
func Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := RedisClient.Del(ctx, key).Err()
	metrics.RedisOperationDuration.WithLabelValues("delete").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("delete").Inc()
		logger.GlobalLogger.Errorf("failed to delete key %s: %v", key, err)
		return NewCacheError("delete", err, false)
	}
	return nil
}

// DeleteByPrefix removes every key matching prefix*, used to invalidate all
// cached query results when listings change.
func DeleteByPrefix(ctx context.Context, prefix string) error {
	start := time.Now()
	iter := RedisClient.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := RedisClient.Del(ctx, iter.Val()).Err(); err != nil {
			metrics.RedisErrorsTotal.WithLabelValues("delete_prefix").Inc()
			logger.GlobalLogger.Errorf("failed to delete key %s: %v", iter.Val(), err)
		}
	}
	metrics.RedisOperationDuration.WithLabelValues("delete_prefix").Observe(time.Since(start).Seconds())
	if err := iter.Err(); err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("scan").Inc()
		return NewCacheError("scan", err, false)
	}
	return nil
}
