package users

import "strings"

// Role is a user role. Values are compared case-insensitively.
type Role string

// Session roles used by the API.
const (
	RoleAdmin  Role = "ADMIN"
	RoleStaff  Role = "STAFF"
	RoleClient Role = "CLIENT"
)

// Portal roles used by the dashboards.
const (
	RoleLVJAdmin        Role = "LVJ_ADMIN"
	RoleLVJTeam         Role = "LVJ_TEAM"
	RoleLVJMarketing    Role = "LVJ_MARKETING"
	RoleLawyerAdmin     Role = "LAWYER_ADMIN"
	RoleLawyerAssociate Role = "LAWYER_ASSOCIATE"
	RoleLawyerAssistant Role = "LAWYER_ASSISTANT"
	RoleCustomer        Role = "CUSTOMER"
)

// AllRoles lists every known role.
func AllRoles() []Role {
	return []Role{
		RoleAdmin, RoleStaff, RoleClient,
		RoleLVJAdmin, RoleLVJTeam, RoleLVJMarketing,
		RoleLawyerAdmin, RoleLawyerAssociate, RoleLawyerAssistant,
		RoleCustomer,
	}
}

// Normalize returns the canonical upper-case form.
func (r Role) Normalize() Role {
	return Role(strings.ToUpper(strings.TrimSpace(string(r))))
}

func (r Role) IsAdmin() bool {
	switch r.Normalize() {
	case RoleAdmin, RoleLVJAdmin:
		return true
	}
	return false
}

func (r Role) IsLawyer() bool {
	return strings.HasPrefix(string(r.Normalize()), "LAWYER_")
}

// IsStaff reports whether the role belongs to firm personnel other than admins.
func (r Role) IsStaff() bool {
	switch r.Normalize() {
	case RoleStaff, RoleLVJTeam, RoleLVJMarketing:
		return true
	}
	return r.IsLawyer()
}

func (r Role) IsClient() bool {
	switch r.Normalize() {
	case RoleClient, RoleCustomer:
		return true
	}
	return false
}

// CanManageCases is true for staff and admins.
func (r Role) CanManageCases() bool {
	return r.IsAdmin() || r.IsStaff()
}

// DisplayName returns the label shown in the portal header.
func (r Role) DisplayName() string {
	switch r.Normalize() {
	case RoleAdmin, RoleLVJAdmin:
		return "Administrator"
	case RoleStaff, RoleLVJTeam:
		return "Staff Member"
	case RoleClient, RoleCustomer:
		return "Client"
	case RoleLawyerAdmin:
		return "Lawyer Admin"
	case RoleLawyerAssociate:
		return "Lawyer Associate"
	case RoleLawyerAssistant:
		return "Lawyer Assistant"
	case RoleLVJMarketing:
		return "Marketing"
	default:
		return "User"
	}
}

// DashboardPath is where a user lands after signing in.
func (r Role) DashboardPath() string {
	switch {
	case r.IsAdmin():
		return "/admin/dashboard"
	case r.IsLawyer(), r.IsStaff():
		return "/lawyer/dashboard"
	case r.IsClient():
		return "/customer/dashboard"
	default:
		return "/dashboard"
	}
}

// CanAccessRoute applies the portal's path based access rules.
func CanAccessRoute(role Role, path string, skipAuth bool) bool {
	if skipAuth || role.IsAdmin() {
		return true
	}

	switch {
	case hasPathPrefix(path, "/admin"):
		return false
	case hasPathPrefix(path, "/documents/view"):
		return role.IsClient()
	case hasPathPrefix(path, "/lawyer"),
		hasPathPrefix(path, "/cases"),
		hasPathPrefix(path, "/clients"),
		hasPathPrefix(path, "/documents"):
		return role.IsStaff()
	case hasPathPrefix(path, "/customer"), hasPathPrefix(path, "/my-case"):
		return role.IsClient()
	default:
		return true
	}
}

func hasPathPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
