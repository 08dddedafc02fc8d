package payments

import (
	"errors"
	"log"

	"flipbook/config"
	"flipbook/utils"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var snapClient snap.Client

func Init() {
	if config.MIDTRANS_SERVER_KEY == "" {
		log.Println("payments: MIDTRANS_SERVER_KEY not set, checkout disabled")
		return
	}
	env := midtrans.Sandbox
	if config.MIDTRANS_PRODUCTION {
		env = midtrans.Production
	}
	snapClient.New(config.MIDTRANS_SERVER_KEY, env)
}

type CheckoutRequest struct {
	OrderID       string
	Amount        int64 // minor units
	Description   string
	CustomerEmail string
}

// CreateCheckout opens a hosted checkout session and returns the redirect URL
func CreateCheckout(r CheckoutRequest) (string, error) {
	if config.MIDTRANS_SERVER_KEY == "" {
		return "", errors.New("checkout is not configured")
	}
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  r.OrderID,
			GrossAmt: r.Amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: r.CustomerEmail,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    r.OrderID,
				Price: r.Amount,
				Qty:   1,
				Name:  r.Description,
			},
		},
		Callbacks: &snap.Callbacks{Finish: config.CHECKOUT_SUCCESS_URL},
	}
	resp, err := snapClient.CreateTransaction(req)
	if resp == nil {
		return "", err
	}
	if err != nil {
		log.Printf("payments: transaction created with non-nil error: %v", err)
	}
	return resp.RedirectURL, nil
}

// Notification is the settlement webhook payload we care about
type Notification struct {
	OrderID           string `json:"order_id" binding:"required"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
}

func (n *Notification) Settled() bool {
	return n.TransactionStatus == "settlement" || n.TransactionStatus == "capture"
}

// VerifySignature checks the notification's authenticity against the shared
// server key: signature_key = sha512(order_id + status_code + gross_amount + key)
func (n *Notification) VerifySignature(serverKey string) bool {
	if n.SignatureKey == "" {
		return false
	}
	expected := utils.Sha512String(n.OrderID + n.StatusCode + n.GrossAmount + serverKey)
	return expected == n.SignatureKey
}
