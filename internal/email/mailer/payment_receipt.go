// internal/email/mailer/payment_receipt.go
package mailer

import (
	"fmt"

	"github.com/rukunhub/rukunhub/internal/email"
)

// ReceiptTemplateData contains data for the payment receipt template
type ReceiptTemplateData struct {
	FullName    string
	Amount      int64
	Months      int
	PaidThrough string
}

// SendPaymentReceipt emails a resident after their dues payment settles.
func SendPaymentReceipt(s *email.Service, to, fullName string, amount int64, months int, paidThrough string) error {
	templateData := ReceiptTemplateData{
		FullName:    fullName,
		Amount:      amount,
		Months:      months,
		PaidThrough: paidThrough,
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     "RukunHub",
		Subject:      fmt.Sprintf("Dues payment received, paid through %s", paidThrough),
		TemplateName: "payment_receipt",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
