package payments

import (
	"errors"
	"fmt"
	"strings"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
)

var ErrBadRequest = errors.New("bad request")

// CreateOrderInput mirrors the checkout request. Amount is in the
// currency's smallest unit (paise for INR).
type CreateOrderInput struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	PlanName string `json:"planName,omitempty"`
	UserID   string `json:"userId,omitempty"`
}

type Service struct {
	client *razorpay.Client
}

func NewService(keyID, keySecret string) *Service {
	return &Service{client: razorpay.NewClient(keyID, keySecret)}
}

// CreateOrder opens a payment order with the provider and returns the
// provider's order payload for the client-side checkout to consume.
func (s *Service) CreateOrder(in CreateOrderInput) (map[string]interface{}, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrBadRequest)
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = "INR"
	}

	data := map[string]interface{}{
		"amount":          in.Amount,
		"currency":        currency,
		"receipt":         fmt.Sprintf("receipt_order_%d", time.Now().UnixMilli()),
		"payment_capture": 1,
	}
	if in.PlanName != "" || in.UserID != "" {
		data["notes"] = map[string]interface{}{
			"planName": in.PlanName,
			"userId":   in.UserID,
		}
	}

	order, err := s.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}
