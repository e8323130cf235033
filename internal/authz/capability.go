// Package authz holds the enum-keyed capability table that replaces scattered
// role comparisons. Every mutating operation asks Can(role, capability) once;
// tenant scoping (same-RW checks) is a separate concern handled by the
// hierarchy service.
package authz

import "github.com/rukunhub/rukunhub/internal/model"

// Capability is a bit in a role's grant set.
type Capability uint32

const (
	CapManageUsers Capability = 1 << iota
	CapCreateGroup
	CapDeleteGroup
	CapSetDuesAmount
	CapSetDuesDay
	CapManageRoleLabels
	CapSubmitFundRequest
	CapDecideFundRequest
	CapViewGroupFinances
)

var grants = map[model.RoleType]Capability{
	model.RoleLeader: CapManageUsers | CapCreateGroup | CapDeleteGroup |
		CapSetDuesAmount | CapSetDuesDay | CapManageRoleLabels |
		CapDecideFundRequest | CapViewGroupFinances,
	model.RoleAdmin: CapManageUsers | CapSetDuesAmount |
		CapSubmitFundRequest | CapViewGroupFinances,
	model.RoleTreasurer: CapSetDuesAmount | CapSubmitFundRequest |
		CapViewGroupFinances,
	model.RoleResident: 0,
}

// Can reports whether the role holds every capability in c.
func Can(role model.RoleType, c Capability) bool {
	return grants[role]&c == c
}
