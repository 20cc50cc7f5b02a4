package user

import "errors"

type Role string

const (
	RoleRootAdmin Role = "rootAdmin"
	RoleHRAdmin   Role = "hrAdmin"
	RoleEmployee  Role = "employee"
)

var (
	ErrPermissionDenied = errors.New("you do not have permission to access this resource")
)

// Roles lists every role the system accepts.
var Roles = []Role{RoleRootAdmin, RoleHRAdmin, RoleEmployee}

func IsValidRole(role string) bool {
	for _, r := range Roles {
		if string(r) == role {
			return true
		}
	}
	return false
}
