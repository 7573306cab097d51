package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{
		StatusOpen, StatusPending, StatusInProgress, StatusResolved, StatusClosed, StatusRejected,
	} {
		assert.True(t, IsValidStatus(status), status)
	}
	assert.False(t, IsValidStatus("Done"))
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("open"))
}

func TestNormalizeRole(t *testing.T) {
	tests := map[string]string{
		"User":       RoleCustomer,
		"STAFF":      RoleStaff,
		"ADMIN":      RoleAdmin,
		"SUPERADMIN": RoleAdmin,
		RoleCustomer: RoleCustomer,
		RoleAdmin:    RoleAdmin,
		"Auditor":    "Auditor",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeRole(in), in)
	}
}

func TestUserToResponseElidesPassword(t *testing.T) {
	u := User{Username: "a@b.com", Password: "hash", Role: RoleStaff}
	resp := u.ToResponse()
	assert.Equal(t, "a@b.com", resp.Username)
	assert.Equal(t, RoleStaff, resp.Role)
}
