package mq

import (
	"context"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"AreejShop/config"
)

// 事件拓扑：topic 交换机 + 两个工作队列
const (
	EventsExchange = "areej.events"

	OrderCreatedQueue      = "areej.orders.created"
	AttendanceSummaryQueue = "areej.attendance.summary"

	OrderCreatedRoutingKey      = "order.created"
	AttendanceSummaryRoutingKey = "attendance.summary"
)

var (
	conn    *amqp.Connection
	mqOnce  sync.Once
	initErr error
)

func Init() error {
	mqOnce.Do(func() {
		url := config.Cfg.GetRabbitMQURL()
		conn, initErr = amqp.Dial(url)
		if initErr != nil {
			return
		}

		var ch *amqp.Channel
		ch, initErr = conn.Channel()
		if initErr != nil {
			return
		}
		defer ch.Close()

		initErr = declareTopology(ch)
	})

	return initErr
}

func declareTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(EventsExchange, "topic", true, false, false, false, nil); err != nil {
		return err
	}

	bindings := map[string]string{
		OrderCreatedQueue:      OrderCreatedRoutingKey,
		AttendanceSummaryQueue: AttendanceSummaryRoutingKey,
	}

	for queue, routingKey := range bindings {
		if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			return err
		}
		if err := ch.QueueBind(queue, routingKey, EventsExchange, false, nil); err != nil {
			return err
		}
	}

	return nil
}

func Connection() *amqp.Connection {
	return conn
}

func Close(ctx context.Context) error {
	if conn == nil {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.Close()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
