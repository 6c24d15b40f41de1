package cache

import (
	"context"
	"encoding/json"
	"time"

	"AreejShop/internal/model"
	"AreejShop/storage/redis"
)

const settingsTTL = 10 * time.Minute

func settingsKey() string {
	return redis.Key("settings", "current")
}

// GetSettings 读取缓存的店铺设置，未命中返回 nil
func GetSettings(ctx context.Context) (*model.Settings, error) {
	raw, err := redis.Client().Get(ctx, settingsKey()).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var settings model.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		// 缓存内容损坏时当作未命中处理
		_ = redis.Client().Del(ctx, settingsKey()).Err()
		return nil, nil
	}
	return &settings, nil
}

// SetSettings 写入店铺设置缓存
func SetSettings(ctx context.Context, settings *model.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return redis.Client().Set(ctx, settingsKey(), raw, settingsTTL).Err()
}

// InvalidateSettings 设置更新后作废缓存
func InvalidateSettings(ctx context.Context) error {
	return redis.Client().Del(ctx, settingsKey()).Err()
}
