// internal/gateway/notification.go
package gateway

// Notification is the asynchronous payment status callback posted by the
// gateway. Settlement state only ever enters the system through this
// payload; the charge call itself never settles anything.
type Notification struct {
	OrderRef          string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status,omitempty"`
	GrossAmount       string `json:"gross_amount,omitempty"`
	SettlementTime    string `json:"settlement_time,omitempty"`
}

// Settled reports whether the notification confirms payment.
func (n Notification) Settled() bool {
	switch n.TransactionStatus {
	case "settlement":
		return true
	case "capture":
		return n.FraudStatus == "" || n.FraudStatus == "accept"
	}
	return false
}

// Expired reports whether the gateway expired the transaction.
func (n Notification) Expired() bool {
	return n.TransactionStatus == "expire"
}

// Canceled reports whether the transaction was canceled or denied.
func (n Notification) Canceled() bool {
	return n.TransactionStatus == "cancel" || n.TransactionStatus == "deny"
}
