package internal

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"malipo/internal/model"
)

const (
	paymentCurrency   = "KES"
	callbackRoute     = "/pesapal/callback"
	descriptionPrefix = "Payment for Order #"
	orderRefLen       = 8
)

type IService interface {
	SubmitOrder(ctx context.Context, i model.CreateOrderInput) (string, error)
	ProcessCallback(ctx context.Context, trackingID, orderID string) (model.ConfirmResult, error)
	GetTransactionStatus(ctx context.Context, trackingID string) (model.TransactionStatusOutput, error)
}

func NewService(Repository IRepository, Gateway IPesapalClient, baseURL string, logger *zap.SugaredLogger) *Service {
	return &Service{Repository: Repository, Gateway: Gateway, baseURL: baseURL, logger: logger}
}

type Service struct {
	Repository IRepository
	Gateway    IPesapalClient
	baseURL    string
	logger     *zap.SugaredLogger
}

// SubmitOrder registers the order with Pesapal and returns the hosted
// checkout URL the customer should be redirected to.
func (s Service) SubmitOrder(ctx context.Context, i model.CreateOrderInput) (string, error) {
	first, last := splitCustomerName(i.Order.User.Name)
	callbackURL := s.baseURL + callbackRoute

	req := model.PaymentOrderRequest{
		ID:             i.OrderID,
		Currency:       paymentCurrency,
		Amount:         i.Order.Total,
		Description:    descriptionPrefix + orderRef(i.OrderID),
		CallbackURL:    callbackURL,
		NotificationID: callbackURL,
		Billing: model.BillingAddress{
			Email:     i.Order.User.Email,
			Phone:     i.Order.User.Phone,
			FirstName: first,
			LastName:  last,
		},
	}

	res, err := s.Gateway.SubmitOrder(ctx, req)
	if err != nil {
		return "", err
	}

	s.logger.Infof("order %s submitted to pesapal, tracking id %s", i.OrderID, res.TrackingID)
	return res.RedirectURL, nil
}

// ProcessCallback settles one payment notification. The callback parameters
// only identify which transaction to check: the decision status is always
// re-queried from Pesapal, never taken from the notification itself.
func (s Service) ProcessCallback(ctx context.Context, trackingID, orderID string) (model.ConfirmResult, error) {
	st, err := s.Gateway.GetTransactionStatus(ctx, trackingID)
	if err != nil {
		return "", err
	}

	if model.PaymentStatusFromCode(st.StatusCode) != model.PaymentStatusCompleted {
		err = s.Repository.MarkOrderFailed(ctx, orderID)
		if err != nil {
			return "", err
		}
		return model.PaymentMarkedFailed, nil
	}

	details := model.PaymentDetails{
		TrackingID:    trackingID,
		PaymentMethod: st.PaymentMethod,
		ConfirmedAt:   time.Now(),
	}

	return s.Repository.ConfirmOrderPayment(ctx, orderID, details)
}

func (s Service) GetTransactionStatus(ctx context.Context, trackingID string) (model.TransactionStatusOutput, error) {
	st, err := s.Gateway.GetTransactionStatus(ctx, trackingID)
	if err != nil {
		return model.TransactionStatusOutput{}, err
	}

	return model.TransactionStatusOutput{
		Status:        model.PaymentStatusFromCode(st.StatusCode),
		PaymentMethod: st.PaymentMethod,
		Description:   st.Description,
	}, nil
}

func splitCustomerName(name string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(name), " ", 2)
	if len(parts) < 2 {
		return parts[0], parts[0]
	}
	return parts[0], parts[1]
}

func orderRef(orderID string) string {
	if len(orderID) > orderRefLen {
		return orderID[:orderRefLen]
	}
	return orderID
}
