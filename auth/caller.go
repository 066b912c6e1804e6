package auth

import (
	"demoday/app_error"
	"demoday/utils"
)

const PermissionAdmin = "admin"

// Caller is the identity resolved for a request.
type Caller struct {
	UserId      int
	Permissions []string
}

func (c *Caller) IsAdmin() bool {
	return c != nil && utils.Contains(c.Permissions, PermissionAdmin)
}

func (c *Caller) RequireAdmin() (int, error) {
	if !c.IsAdmin() {
		return 0, app_error.ErrNotAuthorized
	}
	return c.UserId, nil
}
