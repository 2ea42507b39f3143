package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending       = "Pending"
	OrderStatusProcessing    = "Processing"
	OrderStatusPaymentFailed = "Payment Failed"
)

// ConfirmResult tags the outcome of a payment confirmation attempt.
type ConfirmResult string

const (
	PaymentApplied          ConfirmResult = "APPLIED"
	PaymentAlreadyProcessed ConfirmResult = "ALREADY_PROCESSED"
	PaymentTargetNotFound   ConfirmResult = "NOT_FOUND"
	PaymentMarkedFailed     ConfirmResult = "MARKED_FAILED"
)

type Order struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user"`
	Status         string          `json:"status"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	PointsRedeemed int64           `json:"pointsRedeemed"`
	PointsEarned   int64           `json:"pointsEarned"`
	Payment        *PaymentDetails `json:"paymentDetails,omitempty"`
}

type PaymentDetails struct {
	TrackingID    string    `json:"trackingId"`
	PaymentMethod string    `json:"paymentMethod"`
	ConfirmedAt   time.Time `json:"confirmedAt"`
}

type CreateOrderInput struct {
	Order   *OrderPayload `json:"order"`
	OrderID string        `json:"orderId"`
}

type OrderPayload struct {
	Total decimal.Decimal `json:"total"`
	User  OrderCustomer   `json:"user"`
}
