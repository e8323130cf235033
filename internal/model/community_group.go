// internal/model/community_group.go
package model

import "time"

type GroupType string

const (
	GroupTypeRW GroupType = "RW" // top-level community group
	GroupTypeRT GroupType = "RT" // sub-group, always under exactly one RW
)

// CommunityGroup is a node in the two-level RW/RT hierarchy. An RW has a nil
// ParentID; an RT references its owning RW. Nothing nests deeper.
type CommunityGroup struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Type      GroupType `gorm:"type:text;not null" json:"type"`
	ParentID  *uint     `gorm:"index" json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Parent *CommunityGroup `gorm:"foreignKey:ParentID" json:"-"`
}

func (g *CommunityGroup) IsTopLevel() bool {
	return g.Type == GroupTypeRW
}
