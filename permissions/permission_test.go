package permissions_test

import (
	"agendador/permissions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)
	assert.NotEmpty(t, data.Endpoints)

	tests := []struct {
		name   string
		path   string
		method string
		skip   bool
		roles  []string
	}{
		{name: "health skips auth", path: "/health", method: "GET", skip: true},
		{name: "create open to members", path: "/v1/reservations", method: "POST", roles: []string{"user", "admin"}},
		{name: "trailing slash", path: "/v1/reservations/", method: "GET", roles: []string{"user", "admin"}},
		{name: "approve is admin only", path: "/v1/admin/reservations/{id}/approve", method: "PUT", roles: []string{"admin"}},
		{name: "export is admin only", path: "/v1/admin/reports/export", method: "POST", roles: []string{"admin"}},
		{name: "rooms open to members", path: "/v1/rooms/{id}", method: "GET", roles: []string{"user", "admin"}},
		{name: "unknown route", path: "/v1/rooms", method: "DELETE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.skip, p.Skip)
			assert.ElementsMatch(t, tt.roles, p.Permissions)
		})
	}
}

func TestFindPermissions_Nil(t *testing.T) {
	var data *permissions.PermissionData

	assert.Equal(t, permissions.Permission{}, data.FindPermissions("/health", "GET"))
}

func TestPermission_Allows(t *testing.T) {
	tests := []struct {
		name    string
		perm    permissions.Permission
		role    string
		allowed bool
	}{
		{name: "skipped", perm: permissions.Permission{Skip: true, Permissions: []string{"admin"}}, role: "user", allowed: true},
		{name: "no roles listed", perm: permissions.Permission{}, role: "", allowed: true},
		{name: "role listed", perm: permissions.Permission{Permissions: []string{"admin"}}, role: "admin", allowed: true},
		{name: "role missing", perm: permissions.Permission{Permissions: []string{"admin"}}, role: "user"},
		{name: "anonymous", perm: permissions.Permission{Permissions: []string{"user", "admin"}}, role: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.perm.Allows(tt.role))
		})
	}
}
