package cache

import (
	"context"
	"strconv"
	"time"

	"AreejShop/storage/redis"
)

const (
	// 当日签到标记，兜底数据库唯一索引之前的快速路径
	attendanceDayMarkTTL = 26 * time.Hour
	// 消息消费幂等标记
	messageProcessedTTL = 24 * time.Hour
	processingTimeout   = 5 * time.Minute
)

func dayMarkKey(date string, workerID int64) string {
	return redis.Key("attendance", "done", date, strconv.FormatInt(workerID, 10))
}

// TryMarkCheckedIn 以 SETNX 打当日签到标记。返回 false 表示该员工当日已有标记，
// 调用方可以直接拒绝而不必触发数据库写入。标记不是正确性边界，
// 唯一索引才是；Redis 丢失标记时数据库仍会拦截重复签到。
func TryMarkCheckedIn(ctx context.Context, date string, workerID int64) (bool, error) {
	return redis.Client().SetNX(ctx, dayMarkKey(date, workerID), time.Now().Unix(), attendanceDayMarkTTL).Result()
}

// UnmarkCheckedIn 回滚签到标记，用于数据库写入失败后的清理
func UnmarkCheckedIn(ctx context.Context, date string, workerID int64) error {
	return redis.Client().Del(ctx, dayMarkKey(date, workerID)).Err()
}

// TryMarkMessageProcessing 消费侧幂等：抢到处理权返回 true，
// 已被处理或正在处理返回 false
func TryMarkMessageProcessing(ctx context.Context, messageID string) (bool, error) {
	key := redis.Key("mq", "processing", messageID)
	return redis.Client().SetNX(ctx, key, time.Now().Unix(), processingTimeout).Result()
}

// MarkMessageProcessed 处理完成后把标记升级为长 TTL，防止重投递重复执行
func MarkMessageProcessed(ctx context.Context, messageID string) error {
	key := redis.Key("mq", "processing", messageID)
	return redis.Client().Set(ctx, key, "done", messageProcessedTTL).Err()
}

// UnmarkMessageProcessing 处理失败时释放处理权，让重投递有机会重试
func UnmarkMessageProcessing(ctx context.Context, messageID string) error {
	key := redis.Key("mq", "processing", messageID)
	return redis.Client().Del(ctx, key).Err()
}
