// internal/model/dues_rule.go
package model

import "time"

// DuesRule is the monthly dues configuration for a single group. At most one
// rule exists per group; an RT without its own rule inherits the RW's.
// Amount is in the smallest currency unit.
type DuesRule struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GroupID   uint      `gorm:"uniqueIndex;not null" json:"group_id"`
	Amount    int64     `gorm:"not null" json:"amount"`
	DueDay    int       `gorm:"not null;default:1" json:"due_day"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Group CommunityGroup `gorm:"foreignKey:GroupID" json:"-"`
}

// RuleSource tags where an effective dues rule came from.
type RuleSource string

const (
	RuleSourceOwn       RuleSource = "own"
	RuleSourceInherited RuleSource = "inherited"
)
