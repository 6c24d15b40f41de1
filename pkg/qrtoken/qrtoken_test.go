package qrtoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func fixNow(t *testing.T, date string) {
	t.Helper()
	parsed, err := time.ParseInLocation(DateLayout, date, time.Local)
	require.NoError(t, err)
	old := nowFunc
	nowFunc = func() time.Time { return parsed.Add(12 * time.Hour) }
	t.Cleanup(func() { nowFunc = old })
}

func TestGenerateDeterministic(t *testing.T) {
	first := Generate(testSecret, "2024-03-15")
	second := Generate(testSecret, "2024-03-15")
	assert.Equal(t, first, second)
}

func TestGenerateMatchesHMACVector(t *testing.T) {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte("AREEJ-ATTENDANCE-2024-03-15"))
	digest := hex.EncodeToString(mac.Sum(nil))[:10]

	got := Generate(testSecret, "2024-03-15")
	assert.Equal(t, "AREEJ-ATT-2024-03-15-"+digest, got)
}

func TestValidateRoundTripToday(t *testing.T) {
	fixNow(t, "2024-03-15")

	result := Validate(testSecret, Generate(testSecret, "2024-03-15"))
	assert.True(t, result.Valid)
	assert.Equal(t, "2024-03-15", result.Date)
	assert.Equal(t, ReasonOK, result.Message)
}

func TestValidateExpiredReturnsEmbeddedDate(t *testing.T) {
	fixNow(t, "2024-06-01")

	// 摘要正确但日期不是今天：必须判为过期而不是伪造
	result := Validate(testSecret, Generate(testSecret, "2024-01-01"))
	assert.False(t, result.Valid)
	assert.Equal(t, "2024-01-01", result.Date)
	assert.Equal(t, ReasonExpired, result.Message)
}

func TestValidateTamperedDigest(t *testing.T) {
	fixNow(t, "2024-03-15")

	valid := Generate(testSecret, "2024-03-15")
	digestStart := len(valid) - 10

	for i := digestStart; i < len(valid); i++ {
		mutated := []byte(valid)
		// 在十六进制字母表内替换，保证结构仍然合法
		if mutated[i] == 'a' {
			mutated[i] = 'b'
		} else {
			mutated[i] = 'a'
		}

		result := Validate(testSecret, string(mutated))
		assert.False(t, result.Valid, "digest position %d", i-digestStart)
		assert.Equal(t, ReasonForged, result.Message, "digest position %d", i-digestStart)
		assert.Equal(t, "2024-03-15", result.Date)
	}
}

func TestValidateFormatRejection(t *testing.T) {
	fixNow(t, "2024-03-15")

	valid := Generate(testSecret, "2024-03-15")

	cases := map[string]string{
		"empty":           "",
		"missing prefix":  strings.TrimPrefix(valid, "AREEJ-"),
		"wrong date form": "AREEJ-ATT-15-03-2024-abcdef0123",
		"short digest":    valid[:len(valid)-1],
		"long digest":     valid + "0",
		"uppercase hex":   strings.ToUpper(valid),
		"random text":     "hello world",
	}

	for name, value := range cases {
		result := Validate(testSecret, value)
		assert.False(t, result.Valid, name)
		assert.Equal(t, ReasonMalformed, result.Message, name)
		assert.Empty(t, result.Date, name)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	fixNow(t, "2024-03-15")

	result := Validate("another-secret", Generate(testSecret, "2024-03-15"))
	assert.False(t, result.Valid)
	assert.Equal(t, ReasonForged, result.Message)
}

func TestImageRendersPNG(t *testing.T) {
	png, err := Image(testSecret, "2024-03-15", 256)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
