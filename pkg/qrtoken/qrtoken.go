package qrtoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"time"

	qrcode "github.com/skip2/go-qrcode"
)

// 每日考勤码：AREEJ-ATT-<date>-<digest>
// digest 是 HMAC-SHA256(secret, "AREEJ-ATTENDANCE-"+date) 十六进制的前 10 位。
// 码值只依赖密钥和日期，白天任意时刻重新生成都得到同一个码。

const (
	// Prefix 是所有考勤码的公共前缀，扫描端用它过滤环境里无关的二维码
	Prefix = "AREEJ-ATT-"

	hmacPayloadPrefix = "AREEJ-ATTENDANCE-"
	digestLength      = 10

	// DateLayout 考勤日期格式（本地时区的日历日，不是时间戳）
	DateLayout = "2006-01-02"
)

var tokenPattern = regexp.MustCompile(`^AREEJ-ATT-(\d{4}-\d{2}-\d{2})-([a-f0-9]{10})$`)

// nowFunc 可在测试中替换，校验"今天"时使用
var nowFunc = time.Now

// Result 校验结果。Date 在格式合法时总是返回（包括过期码），方便调用方记录
type Result struct {
	Valid   bool   `json:"valid"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

// 校验失败原因，三种失败必须可区分：格式错误、伪造、过期
const (
	ReasonOK        = "ok"
	ReasonMalformed = "malformed"
	ReasonForged    = "forged"
	ReasonExpired   = "expired"
)

// Generate 生成指定日期的考勤码。纯函数，永远成功
func Generate(secret, date string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(hmacPayloadPrefix + date))
	digest := hex.EncodeToString(mac.Sum(nil))[:digestLength]
	return Prefix + date + "-" + digest
}

// Validate 校验扫描到的字符串是否为当天的有效考勤码。
// 检查顺序：结构 -> 摘要 -> 日期。摘要比对使用常数时间比较
func Validate(secret, value string) Result {
	if value == "" {
		return Result{Valid: false, Date: "", Message: ReasonMalformed}
	}

	match := tokenPattern.FindStringSubmatch(value)
	if match == nil {
		return Result{Valid: false, Date: "", Message: ReasonMalformed}
	}

	date := match[1]
	providedDigest := match[2]

	expected := Generate(secret, date)
	expectedDigest := expected[len(expected)-digestLength:]
	if !hmac.Equal([]byte(providedDigest), []byte(expectedDigest)) {
		return Result{Valid: false, Date: date, Message: ReasonForged}
	}

	today := nowFunc().Format(DateLayout)
	if date != today {
		return Result{Valid: false, Date: date, Message: ReasonExpired}
	}

	return Result{Valid: true, Date: date, Message: ReasonOK}
}

// Today 返回服务器本地时区的当前日历日
func Today() string {
	return nowFunc().Format(DateLayout)
}

// Image 将指定日期的考勤码渲染为 PNG。
// size 为边长像素；二维码内容短，中等纠错等级在低端手机摄像头上也能稳定识别
func Image(secret, date string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(Generate(secret, date), qrcode.Medium, size)
}
