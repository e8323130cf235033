// internal/model/fund_request.go
package model

import "time"

type FundRequestStatus string

const (
	FundRequestPending  FundRequestStatus = "pending"
	FundRequestApproved FundRequestStatus = "approved"
	FundRequestRejected FundRequestStatus = "rejected"
)

// FundRequest is a request by an RT officer to draw community funds. The RW
// LEADER approves or rejects; the transition away from pending is one-way.
type FundRequest struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	GroupID       uint              `gorm:"index;not null" json:"group_id"`
	RequestedByID uint              `gorm:"index;not null" json:"requested_by_id"`
	Amount        int64             `gorm:"not null" json:"amount"`
	Purpose       string            `gorm:"type:text;not null" json:"purpose"`
	Status        FundRequestStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	DecidedByID   *uint             `json:"decided_by_id,omitempty"`
	DecidedAt     *time.Time        `json:"decided_at,omitempty"`
	DecisionNote  string            `gorm:"type:text" json:"decision_note,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`

	Group       CommunityGroup `gorm:"foreignKey:GroupID" json:"-"`
	RequestedBy User           `gorm:"foreignKey:RequestedByID" json:"-"`
}
