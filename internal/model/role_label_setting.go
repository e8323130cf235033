// internal/model/role_label_setting.go
package model

import "time"

// RoleLabelSetting is a per-RW display-name override for a system role.
// Unique on (CommunityGroupID, RoleType); the group is always an RW, and the
// label is visible to every RT beneath it.
type RoleLabelSetting struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	CommunityGroupID uint      `gorm:"not null;uniqueIndex:idx_role_label_scope,priority:1" json:"community_group_id"`
	RoleType         RoleType  `gorm:"type:text;not null;uniqueIndex:idx_role_label_scope,priority:2" json:"role_type"`
	Label            string    `gorm:"type:varchar(50);not null" json:"label"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// DefaultRoleLabels are the system fallbacks used when an RW has no override
// for a role.
var DefaultRoleLabels = map[RoleType]string{
	RoleLeader:    "Group Leader",
	RoleAdmin:     "Sub-group Admin",
	RoleTreasurer: "Treasurer",
	RoleResident:  "Resident",
}
