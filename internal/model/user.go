// internal/model/user.go
package model

import "time"

type RoleType string

const (
	RoleLeader    RoleType = "LEADER"
	RoleAdmin     RoleType = "ADMIN"
	RoleTreasurer RoleType = "TREASURER"
	RoleResident  RoleType = "RESIDENT"
)

// ValidRole reports whether r is one of the four system roles.
func ValidRole(r RoleType) bool {
	switch r {
	case RoleLeader, RoleAdmin, RoleTreasurer, RoleResident:
		return true
	}
	return false
}

// User is a registered member of a community. A RESIDENT's home group is
// always an RT; a LEADER's is the RW itself. LastPaidPeriod is the cumulative
// paid-through marker (first day of the covered month) and only ever advances.
type User struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash     string     `gorm:"not null" json:"-"`
	FullName         string     `gorm:"type:text;not null" json:"full_name"`
	Phone            string     `gorm:"type:text" json:"phone"`
	Address          string     `gorm:"type:text" json:"address"`
	Role             RoleType   `gorm:"type:text;not null;default:'RESIDENT'" json:"role"`
	CommunityGroupID uint       `gorm:"index;not null" json:"community_group_id"`
	IsActive         bool       `gorm:"not null;default:true" json:"is_active"`
	LastPaidPeriod   *time.Time `gorm:"type:date" json:"last_paid_period,omitempty"`
	ProfileImageURL  *string    `gorm:"type:text" json:"profile_image_url,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	CommunityGroup CommunityGroup `gorm:"foreignKey:CommunityGroupID" json:"-"`
}
