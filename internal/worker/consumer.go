package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/optp-storefront/internal/logger"
	"github.com/optp-storefront/internal/provider"
	"github.com/optp-storefront/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderConfirmation, c.handleOrderConfirmation)
}

func (c *Consumer) handleOrderConfirmation(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_confirmation_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_confirmation_unmarshal_failed", "error", err)
		return err
	}
	if strings.TrimSpace(payload.OrderRef) == "" {
		logger.Debugw("worker_order_confirmation_skip_invalid_payload", "order_ref", payload.OrderRef)
		return nil
	}
	receiverEmail := strings.TrimSpace(payload.Email)
	if receiverEmail == "" {
		logger.Debugw("worker_order_confirmation_skip_empty_receiver", "order_ref", payload.OrderRef)
		return nil
	}

	// 通知通道未接入前只落结构化日志，任务成功消费
	logger.Infow("worker_order_confirmation_notified",
		"order_ref", payload.OrderRef,
		"receiver_email", receiverEmail,
		"full_name", payload.FullName,
		"payment_method", payload.PaymentMethod,
		"item_count", payload.ItemCount,
		"grand_total", payload.GrandTotal,
	)
	return nil
}
