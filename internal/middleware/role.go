package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/thepitchdeck/portal/internal/dashboard"
)

// RoleContextKey is where Role stores the viewer's dashboard role.
const RoleContextKey = "role"

// Role resolves the ":role" path parameter and stores it in the echo context.
// Unknown roles are kept as-is and resolve to an empty navigation menu; the
// backend, not the portal, decides what a viewer may see.
func Role(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, ok := dashboard.ParseRole(c.Param("role"))
		if !ok {
			FromContext(c.Request().Context()).Debug("Unknown dashboard role", "role", string(role))
		}
		c.Set(RoleContextKey, role)
		return next(c)
	}
}

// RoleFrom returns the role stored by Role.
func RoleFrom(c echo.Context) dashboard.Role {
	role, _ := c.Get(RoleContextKey).(dashboard.Role)
	return role
}
