package payment_gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"doctorsportal-service/internal/app/config"
	"doctorsportal-service/internal/app/contracts"
	"doctorsportal-service/internal/pkg/constvars"
	"doctorsportal-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type stripeService struct {
	BaseUrl    string
	SecretKey  string
	HttpClient *http.Client
}

func NewStripeService(internalConfig *config.InternalConfig) contracts.PaymentGatewayService {
	return &stripeService{
		BaseUrl:   internalConfig.PaymentGateway.BaseUrl,
		SecretKey: internalConfig.PaymentGateway.SecretKey,
		HttpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type paymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Error        *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *stripeService) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	form.Set("automatic_payment_methods[enabled]", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseUrl+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+s.SecretKey)
	req.Header.Set(constvars.HeaderContentType, "application/x-www-form-urlencoded")

	resp, err := s.HttpClient.Do(req)
	if err != nil {
		return "", exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	var intent paymentIntentResponse
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return "", exceptions.ErrPaymentGatewayDecode(err)
	}

	if resp.StatusCode >= http.StatusBadRequest || intent.Error != nil {
		message := fmt.Sprintf("status %d", resp.StatusCode)
		if intent.Error != nil {
			message = intent.Error.Message
		}
		return "", exceptions.ErrPaymentGatewayRejected(fmt.Errorf("%s", message))
	}

	return intent.ClientSecret, nil
}
