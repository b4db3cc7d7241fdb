package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleStandard, true},
		{RoleElevated, true},
		{RolePrivileged, true},
		{Role(""), false},
		{Role("admin"), false},
		{Role("Standard"), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.role.Valid(), "role %q", tt.role)
	}
}
