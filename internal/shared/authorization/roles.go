package authorization

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAgent    UserRole = "agent"
	RoleAdmin    UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role can see other customers' tickets and
// team-visible notes.
func (r UserRole) IsStaff() bool {
	return r == RoleAgent || r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleCustomer || r == RoleAgent || r == RoleAdmin
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleCustomer
}
