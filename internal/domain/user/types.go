package user

type Role string

const (
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

var roleLevel = map[Role]int{
	RoleStaff: 1,
	RoleAdmin: 2,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevel[r]
	return ok
}

// AtLeast reports whether r grants every permission of min.
func (r Role) AtLeast(min Role) bool {
	have, okHave := roleLevel[r]
	need, okNeed := roleLevel[min]
	return okHave && okNeed && have >= need
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
