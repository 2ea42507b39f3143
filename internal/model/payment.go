package model

import "github.com/shopspring/decimal"

const (
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusFailed    = "FAILED"
	PaymentStatusPending   = "PENDING"
	PaymentStatusInvalid   = "INVALID"
)

// PaymentStatusFromCode maps Pesapal's numeric status_code to the status enum
// exposed to polling clients.
func PaymentStatusFromCode(code int) string {
	switch code {
	case 1:
		return PaymentStatusCompleted
	case 0, 2:
		return PaymentStatusFailed
	case 3:
		return PaymentStatusPending
	default:
		return PaymentStatusInvalid
	}
}

type PaymentOrderRequest struct {
	ID             string          `json:"id"`
	Currency       string          `json:"currency"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	CallbackURL    string          `json:"callback_url"`
	NotificationID string          `json:"notification_id"`
	Billing        BillingAddress  `json:"billing_address"`
}

type BillingAddress struct {
	Email     string `json:"email_address"`
	Phone     string `json:"phone_number"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type SubmitOrderResult struct {
	TrackingID  string `json:"order_tracking_id"`
	RedirectURL string `json:"redirect_url"`
}

// TransactionStatus is the raw status payload from Pesapal. StatusCode drives
// all decisions, the other fields pass through to clients.
type TransactionStatus struct {
	StatusCode    int    `json:"status_code"`
	PaymentMethod string `json:"payment_method"`
	Description   string `json:"description"`
}

type TransactionStatusOutput struct {
	Status        string `json:"status"`
	PaymentMethod string `json:"payment_method"`
	Description   string `json:"description"`
}
