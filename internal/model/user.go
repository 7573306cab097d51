package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles governing ticket visibility and administrative capability.
// Legacy records may still carry "User"/"STAFF"/"ADMIN"/"SUPERADMIN";
// NormalizeRole folds those into the canonical set.
const (
	RoleCustomer   = "Customer"
	RoleStaff      = "Staff"
	RoleSupervisor = "Supervisor"
	RoleAdmin      = "Admin"
)

// DefaultCustomerBranch is the branch recorded for self-registered
// customers, who have no servicing location of their own.
const DefaultCustomerBranch = "Customer"

// User is an account record. Username is the login email and is
// globally unique. Password holds a bcrypt hash, or plaintext for
// accounts created before hashing was introduced.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	PersonName   string             `bson:"personName,omitempty" json:"personName,omitempty"`
	Password     string             `bson:"password" json:"-"`
	Role         string             `bson:"role" json:"role"`
	Branch       string             `bson:"branch,omitempty" json:"branch,omitempty"`
	Department   string             `bson:"department,omitempty" json:"department,omitempty"`
	MobileNumber string             `bson:"mobileNumber,omitempty" json:"mobileNumber,omitempty"`
	IsAdmin      bool               `bson:"isAdmin" json:"isAdmin"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UserResponse is the outward form of a user (credential elided)
type UserResponse struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PersonName   string `json:"personName,omitempty"`
	Role         string `json:"role"`
	Branch       string `json:"branch,omitempty"`
	Department   string `json:"department,omitempty"`
	MobileNumber string `json:"mobileNumber,omitempty"`
	IsAdmin      bool   `json:"isAdmin"`
}

// ToResponse converts User to UserResponse (excludes password)
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:           u.ID.Hex(),
		Username:     u.Username,
		PersonName:   u.PersonName,
		Role:         u.Role,
		Branch:       u.Branch,
		Department:   u.Department,
		MobileNumber: u.MobileNumber,
		IsAdmin:      u.IsAdmin,
	}
}

// IsValidRole reports whether role is a member of the canonical set
func IsValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleStaff, RoleSupervisor, RoleAdmin:
		return true
	}
	return false
}

// NormalizeRole maps legacy role spellings onto the canonical set.
// Unknown values pass through untouched so the visibility layer can
// apply its default-allow policy to them explicitly.
func NormalizeRole(role string) string {
	switch role {
	case "User":
		return RoleCustomer
	case "STAFF":
		return RoleStaff
	case "ADMIN", "SUPERADMIN":
		return RoleAdmin
	}
	return role
}
