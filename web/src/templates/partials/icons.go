package partials

import (
	cmp "maragu.dev/gomponents"

	"github.com/thepitchdeck/portal/internal/dashboard"
)

var iconPaths = map[dashboard.Icon]string{
	dashboard.IconHome:     `<path d="M3 12l9-9 9 9"/><path d="M5 10v10h14V10"/>`,
	dashboard.IconTrophy:   `<path d="M8 21h8M12 17v4M7 4h10v5a5 5 0 0 1-10 0z"/><path d="M17 5h3a3 3 0 0 1-3 3M7 5H4a3 3 0 0 0 3 3"/>`,
	dashboard.IconCalendar: `<rect x="3" y="4" width="18" height="18" rx="2"/><path d="M16 2v4M8 2v4M3 10h18"/>`,
	dashboard.IconUser:     `<circle cx="12" cy="8" r="4"/><path d="M4 21a8 8 0 0 1 16 0"/>`,
	dashboard.IconPlus:     `<path d="M12 5v14M5 12h14"/>`,
	dashboard.IconChart:    `<path d="M12 20V10M18 20V4M6 20v-4"/>`,
	dashboard.IconUsers:    `<circle cx="9" cy="7" r="4"/><path d="M3 21a6 6 0 0 1 12 0M16 3.1a4 4 0 0 1 0 7.8M21 21a6 6 0 0 0-4-5.7"/>`,
}

const (
	menuIcon    = `<path d="M4 6h16M4 12h16M4 18h16"/>`
	dismissIcon = `<path d="M18 6L6 18M6 6l12 12"/>`
	searchIcon  = `<circle cx="11" cy="11" r="8"/><path d="M21 21l-4.3-4.3"/>`
	starIcon    = `<path d="M12 2l3.1 6.3 6.9 1-5 4.9 1.2 6.8-6.2-3.2-6.2 3.2 1.2-6.8-5-4.9 6.9-1z"/>`
	logoutIcon  = `<path d="M9 21H5a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h4M16 17l5-5-5-5M21 12H9"/>`
)

// NavIcon renders the SVG for a navigation icon. Unknown icons render nothing.
func NavIcon(icon dashboard.Icon, class string) cmp.Node {
	paths, ok := iconPaths[icon]
	if !ok {
		return cmp.Group(nil)
	}
	return svg(paths, class)
}

func svg(paths, class string) cmp.Node {
	return cmp.Raw(`<svg class="` + class + `" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">` + paths + `</svg>`)
}
