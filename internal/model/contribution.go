// internal/model/contribution.go
package model

import "time"

// Contribution is the itemized record of one confirmed monthly payment.
// (UserID, Year, Month) is unique: the database constraint is the safety net
// against duplicate settlement under concurrent gateway notifications.
type Contribution struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	UserID               uint      `gorm:"not null;uniqueIndex:idx_contribution_user_period,priority:1" json:"user_id"`
	Year                 int       `gorm:"not null;uniqueIndex:idx_contribution_user_period,priority:2" json:"year"`
	Month                int       `gorm:"not null;uniqueIndex:idx_contribution_user_period,priority:3" json:"month"`
	Amount               int64     `gorm:"not null" json:"amount"`
	PaymentTransactionID *uint     `gorm:"index" json:"payment_transaction_id,omitempty"`
	CreatedAt            time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
