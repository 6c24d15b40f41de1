package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"AreejShop/internal/model"
	"AreejShop/pkg/logger"
)

func init() {
	logger.Logger = zap.NewNop()
}

type fakeApplier struct {
	applied []model.OrderCreatedMessage
	err     error
}

func (f *fakeApplier) ApplyOrder(_ context.Context, msg model.OrderCreatedMessage) error {
	if f.err != nil {
		return f.err
	}
	f.applied = append(f.applied, msg)
	return nil
}

type fakeSettings struct {
	phone string
	err   error
}

func (f *fakeSettings) GetSettings(context.Context) (*model.Settings, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.Settings{Phone: f.phone}, nil
}

type fakeMarker struct {
	seen     map[string]bool
	done     []string
	unmarked []string
	tryErr   error
}

func newFakeMarker() *fakeMarker {
	return &fakeMarker{seen: make(map[string]bool)}
}

func (f *fakeMarker) TryMark(_ context.Context, id string) (bool, error) {
	if f.tryErr != nil {
		return false, f.tryErr
	}
	if f.seen[id] {
		return false, nil
	}
	f.seen[id] = true
	return true, nil
}

func (f *fakeMarker) Unmark(_ context.Context, id string) error {
	delete(f.seen, id)
	f.unmarked = append(f.unmarked, id)
	return nil
}

func (f *fakeMarker) MarkDone(_ context.Context, id string) error {
	f.done = append(f.done, id)
	return nil
}

type notifyCall struct {
	phone  string
	detail string
}

type fakeNotifier struct {
	orders    []notifyCall
	summaries []notifyCall
	err       error
}

func (f *fakeNotifier) OrderCreated(_ context.Context, phone, orderNumber string, _ float64) error {
	if f.err != nil {
		return f.err
	}
	f.orders = append(f.orders, notifyCall{phone: phone, detail: orderNumber})
	return nil
}

func (f *fakeNotifier) AttendanceSummary(_ context.Context, phone, date string, _, _ int64) error {
	if f.err != nil {
		return f.err
	}
	f.summaries = append(f.summaries, notifyCall{phone: phone, detail: date})
	return nil
}

func newTestConsumer() (*Consumer, *fakeApplier, *fakeSettings, *fakeMarker, *fakeNotifier) {
	applier := &fakeApplier{}
	settings := &fakeSettings{phone: "0501234567"}
	marker := newFakeMarker()
	notifier := &fakeNotifier{}
	return &Consumer{
		orders:   applier,
		settings: settings,
		marks:    marker,
		notify:   notifier,
	}, applier, settings, marker, notifier
}

func orderBody(t *testing.T, msg model.OrderCreatedMessage) []byte {
	t.Helper()
	body, err := json.Marshal(msg)
	require.NoError(t, err)
	return body
}

func TestHandleOrderCreatedAppliesAndNotifies(t *testing.T) {
	w, applier, _, marker, notifier := newTestConsumer()

	msg := model.OrderCreatedMessage{MessageID: "m-1", OrderNumber: "ORD-XYZ", Total: 120.5, CustomerPhone: "0559876543"}
	err := w.handleOrderCreated(context.Background(), orderBody(t, msg))
	require.NoError(t, err)

	require.Len(t, applier.applied, 1)
	assert.Equal(t, "ORD-XYZ", applier.applied[0].OrderNumber)
	require.Len(t, notifier.orders, 1)
	assert.Equal(t, "0501234567", notifier.orders[0].phone)
	assert.Equal(t, []string{"m-1"}, marker.done)
}

func TestHandleOrderCreatedSwallowsPoisonMessage(t *testing.T) {
	w, applier, _, marker, _ := newTestConsumer()

	// 坏消息返回 nil（ack），重投解决不了解析失败
	err := w.handleOrderCreated(context.Background(), []byte("{not json"))
	require.NoError(t, err)
	assert.Empty(t, applier.applied)
	assert.Empty(t, marker.seen)
}

func TestHandleOrderCreatedSkipsProcessedMessage(t *testing.T) {
	w, applier, _, _, _ := newTestConsumer()

	body := orderBody(t, model.OrderCreatedMessage{MessageID: "m-2", OrderNumber: "ORD-A"})
	require.NoError(t, w.handleOrderCreated(context.Background(), body))
	require.NoError(t, w.handleOrderCreated(context.Background(), body))

	assert.Len(t, applier.applied, 1)
}

func TestHandleOrderCreatedRequeuesOnApplyFailure(t *testing.T) {
	w, applier, _, marker, notifier := newTestConsumer()
	applier.err = errors.New("db down")

	body := orderBody(t, model.OrderCreatedMessage{MessageID: "m-3"})
	err := w.handleOrderCreated(context.Background(), body)
	require.Error(t, err)

	// 失败释放幂等标记，重投后还能处理
	assert.Equal(t, []string{"m-3"}, marker.unmarked)
	assert.Empty(t, notifier.orders)
	assert.Empty(t, marker.done)
}

func TestHandleOrderCreatedNotifyFailureDoesNotRequeue(t *testing.T) {
	w, applier, _, marker, notifier := newTestConsumer()
	notifier.err = errors.New("sms provider down")

	body := orderBody(t, model.OrderCreatedMessage{MessageID: "m-4"})
	err := w.handleOrderCreated(context.Background(), body)
	require.NoError(t, err)

	assert.Len(t, applier.applied, 1)
	assert.Equal(t, []string{"m-4"}, marker.done)
}

func TestHandleOrderCreatedIdempotencyCheckError(t *testing.T) {
	w, _, _, marker, _ := newTestConsumer()
	marker.tryErr = errors.New("redis down")

	body := orderBody(t, model.OrderCreatedMessage{MessageID: "m-5"})
	err := w.handleOrderCreated(context.Background(), body)
	require.Error(t, err)
}

func TestHandleAttendanceSummaryNotifiesOwner(t *testing.T) {
	w, _, _, marker, notifier := newTestConsumer()

	msg := model.AttendanceSummaryMessage{MessageID: "s-1", Date: "2026-08-31", CheckedIn: 4, TotalWorkers: 6}
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	require.NoError(t, w.handleAttendanceSummary(context.Background(), body))

	require.Len(t, notifier.summaries, 1)
	assert.Equal(t, "2026-08-31", notifier.summaries[0].detail)
	assert.Equal(t, []string{"s-1"}, marker.done)
}

func TestHandleAttendanceSummaryRequeuesOnSettingsFailure(t *testing.T) {
	w, _, settings, marker, notifier := newTestConsumer()
	settings.err = errors.New("db down")

	msg := model.AttendanceSummaryMessage{MessageID: "s-2", Date: "2026-08-31"}
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	require.Error(t, w.handleAttendanceSummary(context.Background(), body))
	assert.Equal(t, []string{"s-2"}, marker.unmarked)
	assert.Empty(t, notifier.summaries)
}
