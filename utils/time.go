package utils

import (
	"time"
)

// Today 返回本地时区的日历日（YYYY-MM-DD）
func Today() string {
	return time.Now().Format("2006-01-02")
}

// ClockTime 返回当前挂钟时间（HH:MM:SS），仅用于展示
func ClockTime() string {
	return time.Now().Format("15:04:05")
}

// NextMidnight 返回下一个本地午夜，调度器按它安排换日任务
func NextMidnight(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
}
