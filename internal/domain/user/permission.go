package user

type Permission string

const (
	PermissionCreateAccount   Permission = "createAccount"
	PermissionManageEmployees Permission = "manageEmployees"
	PermissionViewProfile     Permission = "viewProfile"
	PermissionUpdateProfile   Permission = "updateProfile"
	PermissionDeleteProfile   Permission = "deleteProfile"
	PermissionManageUsers     Permission = "manageUsers"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleRootAdmin: {
		// Root admin bootstraps HR admin accounts and nothing else.
	},
	RoleHRAdmin: {
		PermissionCreateAccount,
		PermissionManageEmployees,
		PermissionViewProfile,
		PermissionUpdateProfile,
		PermissionDeleteProfile,
		PermissionManageUsers,
	},
	RoleEmployee: {
		PermissionViewProfile,
		PermissionUpdateProfile,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}

// HasRequiredRights reports whether the role holds every required permission.
// Callers requesting a resource keyed by their own employee ID are allowed
// through even without the role permission (self-access).
func HasRequiredRights(role Role, callerID string, resourceOwnerID string, required ...Permission) bool {
	for _, permission := range required {
		if !HasPermission(role, permission) {
			return callerID != "" && callerID == resourceOwnerID
		}
	}
	return true
}
