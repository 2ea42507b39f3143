package test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"malipo/internal"
	"malipo/internal/model"
)

const (
	consumerKey    = "test-consumer-key"
	consumerSecret = "test-consumer-secret"
)

var _ = Describe("PesapalClient", func() {
	var (
		ts     *httptest.Server
		client *internal.PesapalClient
	)

	newClient := func(handler http.Handler) {
		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		ts = httptest.NewServer(handler)
		client = internal.NewPesapalClient(ts.URL, consumerKey, consumerSecret, logger.Sugar())
	}

	AfterEach(func() {
		if ts != nil {
			ts.Close()
			ts = nil
		}
	})
	Context("PesapalClient tests", func() {
		It("SubmitOrder without error", func() {
			token := mintProviderToken()
			trackingID := uuid.NewString()

			var authBody map[string]string
			var gotAuthHeader string
			var gotOrder map[string]interface{}

			mux := http.NewServeMux()
			mux.HandleFunc("/Auth/RequestToken", func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewDecoder(r.Body).Decode(&authBody)
				writeJSON(w, map[string]string{"token": token})
			})
			mux.HandleFunc("/Transactions/SubmitOrderRequest", func(w http.ResponseWriter, r *http.Request) {
				gotAuthHeader = r.Header.Get("Authorization")
				_ = json.NewDecoder(r.Body).Decode(&gotOrder)
				writeJSON(w, map[string]string{
					"order_tracking_id": trackingID,
					"redirect_url":      "https://pay.pesapal.com/iframe/" + trackingID,
				})
			})
			newClient(mux)

			req := model.PaymentOrderRequest{
				ID:             "abcdef1234",
				Currency:       "KES",
				Amount:         decimal.NewFromInt(500),
				Description:    "Payment for Order #abcdef12",
				CallbackURL:    "https://shop.example.com/pesapal/callback",
				NotificationID: "https://shop.example.com/pesapal/callback",
				Billing: model.BillingAddress{
					Email:     "jo@example.com",
					Phone:     "0712345678",
					FirstName: "Jo",
					LastName:  "Doe",
				},
			}

			res, err := client.SubmitOrder(context.Background(), req)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.TrackingID).To(Equal(trackingID))
			Expect(res.RedirectURL).To(Equal("https://pay.pesapal.com/iframe/" + trackingID))

			Expect(authBody["consumer_key"]).To(Equal(consumerKey))
			Expect(authBody["consumer_secret"]).To(Equal(consumerSecret))
			Expect(gotAuthHeader).To(Equal("Bearer " + token))
			Expect(gotOrder["id"]).To(Equal("abcdef1234"))
			Expect(gotOrder["currency"]).To(Equal("KES"))
			Expect(gotOrder["callback_url"]).To(Equal(req.CallbackURL))
			Expect(gotOrder["notification_id"]).To(Equal(req.NotificationID))
		})
		It("SubmitOrder with provider error payload", func() {
			token := mintProviderToken()

			mux := http.NewServeMux()
			mux.HandleFunc("/Auth/RequestToken", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, map[string]string{"token": token})
			})
			mux.HandleFunc("/Transactions/SubmitOrderRequest", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, map[string]interface{}{
					"error": map[string]string{"message": "Amount is required"},
				})
			})
			newClient(mux)

			_, err := client.SubmitOrder(context.Background(), model.PaymentOrderRequest{ID: "abcdef1234"})
			Expect(err).Should(HaveOccurred())
			Expect(errors.Is(err, internal.ErrOrderSubmission)).To(BeTrue())
		})
		It("SubmitOrder with rejected credentials", func() {
			submitCalls := 0

			mux := http.NewServeMux()
			mux.HandleFunc("/Auth/RequestToken", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, map[string]interface{}{
					"error": map[string]string{"message": "invalid_consumer_key_or_secret_provided"},
				})
			})
			mux.HandleFunc("/Transactions/SubmitOrderRequest", func(w http.ResponseWriter, r *http.Request) {
				submitCalls++
			})
			newClient(mux)

			_, err := client.SubmitOrder(context.Background(), model.PaymentOrderRequest{ID: "abcdef1234"})
			Expect(err).Should(HaveOccurred())
			Expect(errors.Is(err, internal.ErrGatewayAuth)).To(BeTrue())
			Expect(submitCalls).To(Equal(0))
		})
		It("Authenticate with empty token", func() {
			mux := http.NewServeMux()
			mux.HandleFunc("/Auth/RequestToken", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, map[string]string{"token": ""})
			})
			newClient(mux)

			_, err := client.Authenticate(context.Background())
			Expect(err).Should(HaveOccurred())
			Expect(errors.Is(err, internal.ErrGatewayAuth)).To(BeTrue())
		})
		It("GetTransactionStatus without error", func() {
			token := mintProviderToken()
			trackingID := uuid.NewString()

			var gotAuthHeader string
			var gotTrackingID string

			mux := http.NewServeMux()
			mux.HandleFunc("/Auth/RequestToken", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, map[string]string{"token": token})
			})
			mux.HandleFunc("/Transactions/GetTransactionStatus", func(w http.ResponseWriter, r *http.Request) {
				gotAuthHeader = r.Header.Get("Authorization")
				gotTrackingID = r.URL.Query().Get("orderTrackingId")
				writeJSON(w, map[string]interface{}{
					"payment_method": "MPESA",
					"status_code":    1,
					"description":    "Transaction completed",
				})
			})
			newClient(mux)

			st, err := client.GetTransactionStatus(context.Background(), trackingID)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(st.StatusCode).To(Equal(1))
			Expect(st.PaymentMethod).To(Equal("MPESA"))
			Expect(st.Description).To(Equal("Transaction completed"))

			Expect(gotAuthHeader).To(Equal("Bearer " + token))
			Expect(gotTrackingID).To(Equal(trackingID))
		})
		It("GetTransactionStatus fetches a fresh token on every call", func() {
			token := mintProviderToken()
			authCalls := 0

			mux := http.NewServeMux()
			mux.HandleFunc("/Auth/RequestToken", func(w http.ResponseWriter, r *http.Request) {
				authCalls++
				writeJSON(w, map[string]string{"token": token})
			})
			mux.HandleFunc("/Transactions/GetTransactionStatus", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, map[string]interface{}{"status_code": 3})
			})
			newClient(mux)

			_, err := client.GetTransactionStatus(context.Background(), "3c74e8a0")
			Expect(err).ShouldNot(HaveOccurred())

			_, err = client.GetTransactionStatus(context.Background(), "3c74e8a0")
			Expect(err).ShouldNot(HaveOccurred())

			Expect(authCalls).To(Equal(2))
		})
		It("GetTransactionStatus with server error", func() {
			token := mintProviderToken()

			mux := http.NewServeMux()
			mux.HandleFunc("/Auth/RequestToken", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, map[string]string{"token": token})
			})
			mux.HandleFunc("/Transactions/GetTransactionStatus", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			})
			newClient(mux)

			_, err := client.GetTransactionStatus(context.Background(), "3c74e8a0")
			Expect(err).Should(HaveOccurred())
			Expect(errors.Is(err, internal.ErrStatusQuery)).To(BeTrue())
		})
	})
})

// mintProviderToken issues the kind of short-lived HS256 token the real
// gateway hands out, the client must treat it as opaque.
func mintProviderToken() string {
	claims := jwt.MapClaims{
		"uid": uuid.NewString(),
		"aud": "pesapal-api",
		"exp": time.Now().Add(5 * time.Minute).Unix(),
	}

	t, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("provider-secret"))
	Expect(err).ShouldNot(HaveOccurred())
	return t
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
