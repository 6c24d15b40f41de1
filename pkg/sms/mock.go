package sms

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"AreejShop/pkg/logger"
)

type MockCall struct {
	Phone         string
	SignName      string
	TemplateCode  string
	TemplateParam string
}

// MockClient 记录调用的短信客户端 mock，开发环境和测试用
type MockClient struct {
	mu    sync.Mutex
	Calls []MockCall

	// FailNext 置为 true 时，下一次调用返回 mock 错误并自动复位
	FailNext bool
}

func NewMockClient() *MockClient {
	return &MockClient{
		Calls: make([]MockCall, 0),
	}
}

func (m *MockClient) SendSingle(ctx context.Context, phone, signName, templateCode, templateParam string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{
		Phone:         phone,
		SignName:      signName,
		TemplateCode:  templateCode,
		TemplateParam: templateParam,
	})

	if m.FailNext {
		m.FailNext = false
		return errors.New("mock sms send failure")
	}

	logger.Logger.Info("Mock SMS sent",
		zap.String("phone", phone),
		zap.String("template", templateCode),
		zap.String("param", templateParam),
	)
	return nil
}

// CallCount 已记录的调用数
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
