// Package dashboard models the authenticated dashboard chrome: role-based
// navigation, the mobile sidebar and the viewer's session identity.
package dashboard

// Role is the viewer category that selects the navigation menu.
type Role string

const (
	RoleCompetitor Role = "competitor"
	RoleOrganizer  Role = "organizer"
	RoleAdmin      Role = "admin"
)

// ParseRole returns the role for raw and whether it is one of the known roles.
func ParseRole(raw string) (Role, bool) {
	r := Role(raw)
	switch r {
	case RoleCompetitor, RoleOrganizer, RoleAdmin:
		return r, true
	}
	return r, false
}

// HomePath is the dashboard landing route for the role.
func (r Role) HomePath() string {
	return "/dashboard/" + string(r)
}

// Icon is a symbolic icon reference resolved by the view layer.
type Icon string

const (
	IconHome     Icon = "home"
	IconTrophy   Icon = "trophy"
	IconCalendar Icon = "calendar"
	IconUser     Icon = "user"
	IconPlus     Icon = "plus"
	IconChart    Icon = "bar-chart"
	IconUsers    Icon = "users"
)

// NavigationItem is one sidebar entry.
type NavigationItem struct {
	Label      string `json:"label"`
	TargetPath string `json:"targetPath"`
	Icon       Icon   `json:"icon"`
}

var navigation = map[Role][]NavigationItem{
	RoleCompetitor: {
		{Label: "Dashboard", TargetPath: "/dashboard/competitor", Icon: IconHome},
		{Label: "Competitions", TargetPath: "/dashboard/competitor/competitions", Icon: IconTrophy},
		{Label: "Applications", TargetPath: "/dashboard/competitor/applications", Icon: IconCalendar},
		{Label: "Profile", TargetPath: "/dashboard/competitor/profile", Icon: IconUser},
	},
	RoleOrganizer: {
		{Label: "Dashboard", TargetPath: "/dashboard/organizer", Icon: IconHome},
		{Label: "My Competitions", TargetPath: "/dashboard/organizer/competitions", Icon: IconTrophy},
		{Label: "Create Competition", TargetPath: "/dashboard/organizer/create", Icon: IconPlus},
		{Label: "Analytics", TargetPath: "/dashboard/organizer/analytics", Icon: IconChart},
	},
	RoleAdmin: {
		{Label: "Dashboard", TargetPath: "/dashboard/admin", Icon: IconHome},
		{Label: "Applications", TargetPath: "/dashboard/admin/applications", Icon: IconCalendar},
		{Label: "Users", TargetPath: "/dashboard/admin/users", Icon: IconUsers},
		{Label: "Analytics", TargetPath: "/dashboard/admin/analytics", Icon: IconChart},
	},
}

// Navigation returns the ordered menu for role. Unknown roles get an empty menu.
// The returned slice is a copy and may be modified by the caller.
func Navigation(role Role) []NavigationItem {
	items := navigation[role]
	out := make([]NavigationItem, len(items))
	copy(out, items)
	return out
}

// ActiveItem returns the index of the item that best matches path, or -1.
// The longest matching target wins so nested routes highlight their own entry.
func ActiveItem(items []NavigationItem, path string) int {
	best, bestLen := -1, 0
	for i, it := range items {
		if path == it.TargetPath || (len(path) > len(it.TargetPath) && path[:len(it.TargetPath)+1] == it.TargetPath+"/") {
			if len(it.TargetPath) > bestLen {
				best, bestLen = i, len(it.TargetPath)
			}
		}
	}
	return best
}
