package queue

import (
	"encoding/json"

	"github.com/optp-storefront/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderConfirmation 下单确认通知任务
	TaskOrderConfirmation = constants.TaskOrderConfirmation
)

// OrderConfirmationPayload 下单确认通知任务载荷
type OrderConfirmationPayload struct {
	OrderRef        string `json:"order_ref"`
	Email           string `json:"email"`
	FullName        string `json:"full_name"`
	DeliveryAddress string `json:"delivery_address"`
	PaymentMethod   string `json:"payment_method"`
	ItemCount       int    `json:"item_count"`
	GrandTotal      string `json:"grand_total"`
}

// NewOrderConfirmationTask 创建下单确认通知任务
func NewOrderConfirmationTask(payload OrderConfirmationPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderConfirmation, body), nil
}
