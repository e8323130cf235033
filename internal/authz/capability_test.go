package authz_test

import (
	"testing"

	"github.com/rukunhub/rukunhub/internal/authz"
	"github.com/rukunhub/rukunhub/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestCan(t *testing.T) {
	t.Run("leader holds structural capabilities", func(t *testing.T) {
		assert.True(t, authz.Can(model.RoleLeader, authz.CapCreateGroup))
		assert.True(t, authz.Can(model.RoleLeader, authz.CapDeleteGroup))
		assert.True(t, authz.Can(model.RoleLeader, authz.CapSetDuesDay))
		assert.True(t, authz.Can(model.RoleLeader, authz.CapManageRoleLabels))
		assert.True(t, authz.Can(model.RoleLeader, authz.CapDecideFundRequest))
	})

	t.Run("leader decides but does not submit fund requests", func(t *testing.T) {
		assert.False(t, authz.Can(model.RoleLeader, authz.CapSubmitFundRequest))
	})

	t.Run("admin manages users but not structure", func(t *testing.T) {
		assert.True(t, authz.Can(model.RoleAdmin, authz.CapManageUsers))
		assert.True(t, authz.Can(model.RoleAdmin, authz.CapSetDuesAmount))
		assert.False(t, authz.Can(model.RoleAdmin, authz.CapCreateGroup))
		assert.False(t, authz.Can(model.RoleAdmin, authz.CapSetDuesDay))
		assert.False(t, authz.Can(model.RoleAdmin, authz.CapDecideFundRequest))
	})

	t.Run("treasurer is finance only", func(t *testing.T) {
		assert.True(t, authz.Can(model.RoleTreasurer, authz.CapSetDuesAmount))
		assert.True(t, authz.Can(model.RoleTreasurer, authz.CapSubmitFundRequest))
		assert.False(t, authz.Can(model.RoleTreasurer, authz.CapManageUsers))
		assert.False(t, authz.Can(model.RoleTreasurer, authz.CapManageRoleLabels))
	})

	t.Run("resident holds nothing", func(t *testing.T) {
		caps := []authz.Capability{
			authz.CapManageUsers, authz.CapCreateGroup, authz.CapDeleteGroup,
			authz.CapSetDuesAmount, authz.CapSetDuesDay, authz.CapManageRoleLabels,
			authz.CapSubmitFundRequest, authz.CapDecideFundRequest, authz.CapViewGroupFinances,
		}
		for _, c := range caps {
			assert.False(t, authz.Can(model.RoleResident, c))
		}
	})

	t.Run("unknown role holds nothing", func(t *testing.T) {
		assert.False(t, authz.Can(model.RoleType("SUPERUSER"), authz.CapManageUsers))
	})

	t.Run("combined mask requires every bit", func(t *testing.T) {
		both := authz.CapSetDuesAmount | authz.CapSetDuesDay
		assert.True(t, authz.Can(model.RoleLeader, both))
		assert.False(t, authz.Can(model.RoleTreasurer, both))
	})
}
