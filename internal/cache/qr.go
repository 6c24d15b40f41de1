package cache

import (
	"context"
	"time"

	"AreejShop/storage/redis"
)

const qrValueTTL = 26 * time.Hour

// SetDailyQR 缓存当日考勤码值，调度器在每日零点预热
func SetDailyQR(ctx context.Context, date, value string) error {
	key := redis.Key("attendance", "qr", date)
	return redis.Client().Set(ctx, key, value, qrValueTTL).Err()
}

// GetDailyQR 读取缓存的当日考勤码值，未命中返回空串
func GetDailyQR(ctx context.Context, date string) (string, error) {
	key := redis.Key("attendance", "qr", date)
	value, err := redis.Client().Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return value, err
}
