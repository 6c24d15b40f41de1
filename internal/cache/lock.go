package cache

import (
	"context"
	"time"

	"AreejShop/storage/redis"
)

// TryLock 分布式互斥，多实例部署时保证调度任务只跑一次
func TryLock(ctx context.Context, name string, ttl time.Duration) (bool, error) {
	key := redis.Key("lock", name)
	return redis.Client().SetNX(ctx, key, time.Now().Unix(), ttl).Result()
}

// Unlock 释放互斥锁
func Unlock(ctx context.Context, name string) error {
	key := redis.Key("lock", name)
	return redis.Client().Del(ctx, key).Err()
}
