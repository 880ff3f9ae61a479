package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleHierarchy(t *testing.T) {
	assert.False(t, RoleUser.IsModerator())
	assert.True(t, RoleModerator.IsModerator())
	assert.False(t, RoleModerator.IsAdmin())
	assert.True(t, RoleAdmin.IsAdmin())
	assert.True(t, RoleSuperuser.IsAdmin())
	assert.True(t, RoleSuperuser.IsModerator())

	assert.Equal(t, -1, Role("owner").Level())
	assert.False(t, Role("owner").Valid())
}

func TestValidUsername(t *testing.T) {
	assert.True(t, ValidUsername("reader_01"))
	assert.True(t, ValidUsername("user.name+tag@host"))
	assert.False(t, ValidUsername(""))
	assert.False(t, ValidUsername("has space"))
	assert.False(t, ValidUsername("emoji😀"))
	assert.False(t, ValidUsername(strings.Repeat("a", 151)))
	assert.True(t, ValidUsername(strings.Repeat("a", 150)))
}

func TestReservedUsername(t *testing.T) {
	assert.True(t, ReservedUsername("me"))
	assert.True(t, ReservedUsername("Me"))
	assert.True(t, ReservedUsername("ME"))
	assert.False(t, ReservedUsername("mee"))
}
