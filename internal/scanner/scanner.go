package scanner

import (
	"context"
	"errors"
	"image"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"AreejShop/pkg/logger"
	"AreejShop/pkg/qrtoken"
)

// State 扫码器状态机。任何出口都要回到 idle 并释放相机
type State string

const (
	StateIdle     State = "idle"
	StateScanning State = "scanning"
	StateSuccess  State = "success"
	StateError    State = "error"
)

var (
	// ErrScanInProgress 同一个扫码器同时只允许一次扫描
	ErrScanInProgress = errors.New("scan already in progress")
	// ErrScanCancelled 扫描被取消（超时或用户退出）
	ErrScanCancelled = errors.New("scan cancelled")
)

// FrameSource 相机帧来源。Acquire/Release 成对出现，
// Release 在扫描的所有出口都必须被调用
type FrameSource interface {
	Acquire(ctx context.Context) error
	NextFrame(ctx context.Context) (image.Image, error)
	Release()
}

// Decoder 从帧中解出二维码文本，没有码时返回错误
type Decoder interface {
	Decode(img image.Image) (string, error)
}

// Recorder 提交签到。实现方一般是走 HTTP 到签到接口
type Recorder interface {
	SubmitCheckIn(ctx context.Context, workerID int64, qrValue string) error
}

type Scanner struct {
	source   FrameSource
	decoder  Decoder
	recorder Recorder

	// 提交签到的超时上界，网络卡住不能让扫码界面永远转圈
	submitTimeout time.Duration

	mu       sync.Mutex
	state    State
	inFlight bool
}

type Option func(*Scanner)

// WithSubmitTimeout 自定义提交超时
func WithSubmitTimeout(d time.Duration) Option {
	return func(s *Scanner) {
		if d > 0 {
			s.submitTimeout = d
		}
	}
}

func New(source FrameSource, decoder Decoder, recorder Recorder, opts ...Option) *Scanner {
	s := &Scanner{
		source:        source,
		decoder:       decoder,
		recorder:      recorder,
		submitTimeout: 10 * time.Second,
		state:         StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State 当前状态
func (s *Scanner) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Scanner) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Scan 打开相机并循环取帧，直到解出一个考勤码并提交成功，
// 或者 ctx 取消。返回解出的码值。
// 环境里无关的二维码按前缀过滤掉，不会误触发提交
func (s *Scanner) Scan(ctx context.Context, workerID int64) (string, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return "", ErrScanInProgress
	}
	s.inFlight = true
	s.state = StateScanning
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	if err := s.source.Acquire(ctx); err != nil {
		s.setState(StateError)
		return "", err
	}
	// 相机在所有出口都要释放
	defer s.source.Release()

	value, err := s.scanLoop(ctx)
	if err != nil {
		s.setState(StateError)
		return "", err
	}

	if err := s.submit(ctx, workerID, value); err != nil {
		s.setState(StateError)
		return "", err
	}

	s.setState(StateSuccess)
	return value, nil
}

// Reset 从终态回到 idle，准备下一次扫描
func (s *Scanner) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.inFlight {
		s.state = StateIdle
	}
}

func (s *Scanner) scanLoop(ctx context.Context) (string, error) {
	for {
		select {
		case <-ctx.Done():
			return "", ErrScanCancelled
		default:
		}

		frame, err := s.source.NextFrame(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return "", ErrScanCancelled
			}
			return "", err
		}

		text, err := s.decoder.Decode(frame)
		if err != nil {
			// 这一帧没有可识别的码，继续
			continue
		}

		if !strings.HasPrefix(text, qrtoken.Prefix) {
			logger.Logger.Debug("Ignoring unrelated QR code",
				zap.String("prefix", truncate(text, 16)),
			)
			continue
		}

		return text, nil
	}
}

func (s *Scanner) submit(ctx context.Context, workerID int64, value string) error {
	submitCtx, cancel := context.WithTimeout(ctx, s.submitTimeout)
	defer cancel()
	return s.recorder.SubmitCheckIn(submitCtx, workerID, value)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
