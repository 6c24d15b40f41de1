package scanner

import (
	"context"
	"errors"
	"image"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"AreejShop/pkg/logger"
	"AreejShop/pkg/qrtoken"
)

func init() {
	logger.Logger = zap.NewNop()
}

// fakeSource 按脚本逐帧返回图片，每帧用索引标记
type fakeSource struct {
	mu         sync.Mutex
	frames     int
	acquired   bool
	released   bool
	acquireErr error
}

type indexedFrame struct {
	image.Image
	index int
}

func (f *fakeSource) Acquire(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.acquireErr != nil {
		return f.acquireErr
	}
	f.acquired = true
	return nil
}

func (f *fakeSource) NextFrame(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	frame := indexedFrame{
		Image: image.NewGray(image.Rect(0, 0, 1, 1)),
		index: f.frames,
	}
	f.frames++
	return frame, nil
}

func (f *fakeSource) Release() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.released = true
}

// scriptDecoder 按帧索引返回预设结果
type scriptDecoder struct {
	script map[int]string
}

func (d *scriptDecoder) Decode(img image.Image) (string, error) {
	frame, ok := img.(indexedFrame)
	if !ok {
		return "", errors.New("unexpected frame type")
	}
	text, ok := d.script[frame.index]
	if !ok {
		return "", errors.New("no code in frame")
	}
	return text, nil
}

type fakeRecorder struct {
	mu        sync.Mutex
	submitted []string
	err       error
	block     bool
}

func (r *fakeRecorder) SubmitCheckIn(ctx context.Context, workerID int64, qrValue string) error {
	if r.block {
		<-ctx.Done()
		return ctx.Err()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.submitted = append(r.submitted, qrValue)
	return nil
}

func validCode() string {
	return qrtoken.Generate("scanner-secret", "2024-03-15")
}

func TestScanDecodesAndSubmits(t *testing.T) {
	source := &fakeSource{}
	decoder := &scriptDecoder{script: map[int]string{2: validCode()}}
	recorder := &fakeRecorder{}
	s := New(source, decoder, recorder)

	value, err := s.Scan(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, validCode(), value)
	assert.Equal(t, []string{validCode()}, recorder.submitted)
	assert.Equal(t, StateSuccess, s.State())
	assert.True(t, source.released, "camera must be released")
}

func TestScanIgnoresUnrelatedCodes(t *testing.T) {
	source := &fakeSource{}
	decoder := &scriptDecoder{script: map[int]string{
		0: "https://example.com/menu",
		1: "WIFI:T:WPA;S:shop;;",
		3: validCode(),
	}}
	recorder := &fakeRecorder{}
	s := New(source, decoder, recorder)

	value, err := s.Scan(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, validCode(), value)
	assert.Len(t, recorder.submitted, 1, "unrelated codes must not be submitted")
}

func TestScanRejectsConcurrentUse(t *testing.T) {
	source := &fakeSource{}
	decoder := &scriptDecoder{script: map[int]string{}}
	recorder := &fakeRecorder{}
	s := New(source, decoder, recorder)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan struct{})
	done := make(chan struct{})
	go func() {
		close(started)
		_, _ = s.Scan(ctx, 7) // 永远解不出码，直到取消
		close(done)
	}()

	<-started
	// 等第一次扫描确实进入 scanning 状态
	require.Eventually(t, func() bool {
		return s.State() == StateScanning
	}, time.Second, time.Millisecond)

	_, err := s.Scan(context.Background(), 8)
	assert.ErrorIs(t, err, ErrScanInProgress)

	cancel()
	<-done
}

func TestScanCancelledReleasesCamera(t *testing.T) {
	source := &fakeSource{}
	decoder := &scriptDecoder{script: map[int]string{}}
	recorder := &fakeRecorder{}
	s := New(source, decoder, recorder)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := s.Scan(ctx, 7)

	assert.ErrorIs(t, err, ErrScanCancelled)
	assert.Equal(t, StateError, s.State())
	assert.True(t, source.released, "camera must be released after cancellation")
}

func TestScanAcquireFailure(t *testing.T) {
	source := &fakeSource{acquireErr: errors.New("camera busy")}
	s := New(source, &scriptDecoder{}, &fakeRecorder{})

	_, err := s.Scan(context.Background(), 7)

	require.Error(t, err)
	assert.Equal(t, StateError, s.State())
}

func TestScanSubmitFailureSetsErrorState(t *testing.T) {
	source := &fakeSource{}
	decoder := &scriptDecoder{script: map[int]string{0: validCode()}}
	recorder := &fakeRecorder{err: errors.New("attendance already recorded")}
	s := New(source, decoder, recorder)

	_, err := s.Scan(context.Background(), 7)

	require.Error(t, err)
	assert.Equal(t, StateError, s.State())
	assert.True(t, source.released)
}

func TestScanSubmitTimeout(t *testing.T) {
	source := &fakeSource{}
	decoder := &scriptDecoder{script: map[int]string{0: validCode()}}
	recorder := &fakeRecorder{block: true}
	s := New(source, decoder, recorder, WithSubmitTimeout(20*time.Millisecond))

	start := time.Now()
	_, err := s.Scan(context.Background(), 7)

	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second, "submit must be bounded by the timeout")
	assert.Equal(t, StateError, s.State())
}

func TestResetReturnsToIdle(t *testing.T) {
	source := &fakeSource{}
	decoder := &scriptDecoder{script: map[int]string{0: validCode()}}
	s := New(source, decoder, &fakeRecorder{})

	_, err := s.Scan(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, StateSuccess, s.State())

	s.Reset()
	assert.Equal(t, StateIdle, s.State())
}
