// internal/model/payment_transaction.go
package model

import "time"

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusSettled  PaymentStatus = "settled"
	PaymentStatusExpired  PaymentStatus = "expired"
	PaymentStatusCanceled PaymentStatus = "canceled"
)

// PaymentTransaction is a multi-month dues payment submitted to the payment
// gateway. BaselinePeriod is the paid-through month at the time the request
// was built; TargetPeriod is what LastPaidPeriod advances to on settlement.
// A user has at most one pending transaction at a time.
type PaymentTransaction struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	OrderRef       string        `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID         uint          `gorm:"index;not null" json:"user_id"`
	Amount         int64         `gorm:"not null" json:"amount"`
	Months         int           `gorm:"not null" json:"months"`
	BaselinePeriod time.Time     `gorm:"type:date;not null" json:"baseline_period"`
	TargetPeriod   time.Time     `gorm:"type:date;not null" json:"target_period"`
	Status         PaymentStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	RedirectURL    string        `gorm:"type:text" json:"redirect_url,omitempty"`
	SettledAt      *time.Time    `json:"settled_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (t *PaymentTransaction) IsPending() bool {
	return t.Status == PaymentStatusPending
}
