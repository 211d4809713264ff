package model

import "strings"

// Role access level carried in tokens and stored on staff and users
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleConvener Role = "Convener"
	RoleStaff    Role = "Staff"
)

// Roles every assignable role
var Roles = []Role{RoleAdmin, RoleConvener, RoleStaff}

// Valid reports whether r is one of the canonical roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleConvener, RoleStaff:
		return true
	}
	return false
}

// NormalizeRole maps stored role strings, including the lowercase legacy
// values, onto a canonical Role. Legacy "user" has no canonical role.
func NormalizeRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, true
	case "convener":
		return RoleConvener, true
	case "staff":
		return RoleStaff, true
	}
	return "", false
}

// ── route allow-lists ──

var (
	// AnyRole read access for every signed-in account with a canonical role
	AnyRole = []Role{RoleAdmin, RoleConvener, RoleStaff}
	// StaffManagers may create and edit staff records
	StaffManagers = []Role{RoleAdmin, RoleStaff}
	// MeetingTypeManagers may create and edit meeting types
	MeetingTypeManagers = []Role{RoleAdmin, RoleConvener}
	// MeetingEditors may create, edit and cancel meetings
	MeetingEditors = []Role{RoleAdmin, RoleConvener, RoleStaff}
	// AdminOnly destructive operations
	AdminOnly = []Role{RoleAdmin}
)
