package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"malipo/internal/model"
)

// IPesapalClient is the gateway surface the service layer depends on. Every
// call fetches a fresh bearer token first, tokens are never cached.
type IPesapalClient interface {
	SubmitOrder(ctx context.Context, req model.PaymentOrderRequest) (model.SubmitOrderResult, error)
	GetTransactionStatus(ctx context.Context, trackingID string) (model.TransactionStatus, error)
}

type PesapalClient struct {
	apiURL string
	key    string
	secret string
	logger *zap.SugaredLogger
}

func NewPesapalClient(apiURL, key, secret string, logger *zap.SugaredLogger) *PesapalClient {
	return &PesapalClient{apiURL: apiURL, key: key, secret: secret, logger: logger}
}

// Authenticate exchanges the consumer credentials for a bearer token. The
// token is treated as opaque.
func (p PesapalClient) Authenticate(ctx context.Context) (string, error) {
	body, err := p.makeRequest(ctx, http.MethodPost, p.apiURL+"/Auth/RequestToken", "", authRequest{
		ConsumerKey:    p.key,
		ConsumerSecret: p.secret,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrGatewayAuth, err)
	}

	res := authResponse{}
	err = json.Unmarshal(body, &res)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrGatewayAuth, err)
	}

	if res.Error != nil {
		return "", fmt.Errorf("%w: %s", ErrGatewayAuth, res.Error.Message)
	}
	if res.Token == "" {
		return "", fmt.Errorf("%w: empty token in response", ErrGatewayAuth)
	}
	return res.Token, nil
}

func (p PesapalClient) SubmitOrder(ctx context.Context, req model.PaymentOrderRequest) (model.SubmitOrderResult, error) {
	token, err := p.Authenticate(ctx)
	if err != nil {
		return model.SubmitOrderResult{}, err
	}

	body, err := p.makeRequest(ctx, http.MethodPost, p.apiURL+"/Transactions/SubmitOrderRequest", token, req)
	if err != nil {
		return model.SubmitOrderResult{}, fmt.Errorf("%w: %s", ErrOrderSubmission, err)
	}

	res := submitOrderResponse{}
	err = json.Unmarshal(body, &res)
	if err != nil {
		return model.SubmitOrderResult{}, fmt.Errorf("%w: %s", ErrOrderSubmission, err)
	}

	if res.Error != nil {
		return model.SubmitOrderResult{}, fmt.Errorf("%w: %s", ErrOrderSubmission, res.Error.Message)
	}
	if res.RedirectURL == "" {
		return model.SubmitOrderResult{}, fmt.Errorf("%w: no redirect url in response", ErrOrderSubmission)
	}
	return model.SubmitOrderResult{TrackingID: res.OrderTrackingID, RedirectURL: res.RedirectURL}, nil
}

func (p PesapalClient) GetTransactionStatus(ctx context.Context, trackingID string) (model.TransactionStatus, error) {
	token, err := p.Authenticate(ctx)
	if err != nil {
		return model.TransactionStatus{}, fmt.Errorf("%w: %s", ErrStatusQuery, err)
	}

	statusURL := p.apiURL + "/Transactions/GetTransactionStatus?orderTrackingId=" + url.QueryEscape(trackingID)
	body, err := p.makeRequest(ctx, http.MethodGet, statusURL, token, nil)
	if err != nil {
		return model.TransactionStatus{}, fmt.Errorf("%w: %s", ErrStatusQuery, err)
	}

	res := model.TransactionStatus{}
	err = json.Unmarshal(body, &res)
	if err != nil {
		return model.TransactionStatus{}, fmt.Errorf("%w: %s", ErrStatusQuery, err)
	}
	return res, nil
}

func (p PesapalClient) makeRequest(ctx context.Context, method, reqURL, token string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	p.logger.Debugf("pesapal request: %s %s", method, reqURL)

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var buf bytes.Buffer
	_, err = io.Copy(&buf, res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", res.StatusCode, buf.String())
	}

	return buf.Bytes(), nil
}

type authRequest struct {
	ConsumerKey    string `json:"consumer_key"`
	ConsumerSecret string `json:"consumer_secret"`
}

type authResponse struct {
	Token string        `json:"token"`
	Error *pesapalError `json:"error"`
}

type submitOrderResponse struct {
	OrderTrackingID string        `json:"order_tracking_id"`
	RedirectURL     string        `json:"redirect_url"`
	Error           *pesapalError `json:"error"`
}

type pesapalError struct {
	Message string `json:"message"`
}
