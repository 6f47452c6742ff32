package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/razorpay/razorpay-go"

	"trainings-module/config"
	"trainings-module/logger"
)

// PaymentOrder represents a created gateway order for an enrollment
type PaymentOrder struct {
	OrderID  string `json:"order_id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// CreatePaymentOrder creates a gateway order for a paid enrollment. Amount
// is in naira; the gateway takes subunits (kobo).
func CreatePaymentOrder(trainingID, amount int) (*PaymentOrder, error) {
	keyID := config.AppConfig.RazorpayKeyID
	keySecret := config.AppConfig.RazorpayKeySecret

	if keyID == "" || keySecret == "" {
		return nil, fmt.Errorf("payment gateway credentials not configured")
	}
	if amount <= 0 {
		return nil, fmt.Errorf("invalid amount: must be greater than 0")
	}

	client := razorpay.NewClient(keyID, keySecret)

	receipt := fmt.Sprintf("rcpt_training_%d", trainingID)
	data := map[string]interface{}{
		"amount":   amount * 100,
		"currency": "NGN",
		"receipt":  receipt,
	}

	resp, err := client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating payment order: %w", err)
	}

	orderID, ok := resp["id"].(string)
	if !ok {
		return nil, fmt.Errorf("payment gateway returned no order id")
	}

	logger.Info("Payment order created - Training: %d, Order: %s, Amount: %d", trainingID, orderID, amount)

	return &PaymentOrder{
		OrderID:  orderID,
		Amount:   amount,
		Currency: "NGN",
		Receipt:  receipt,
	}, nil
}

// VerifyPaymentSignature checks the gateway callback signature: an
// HMAC-SHA256 of "orderID|paymentID" under the key secret.
func VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	keySecret := config.AppConfig.RazorpayKeySecret
	if keySecret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
