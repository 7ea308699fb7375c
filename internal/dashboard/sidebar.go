package dashboard

// SidebarState is the narrow-viewport sidebar overlay state. Desktop layouts
// render a permanent sidebar and ignore it.
type SidebarState string

const (
	SidebarClosed SidebarState = "closed"
	SidebarOpen   SidebarState = "open"
)

// SidebarEvent is a user action on the sidebar chrome.
type SidebarEvent string

const (
	EventMenu     SidebarEvent = "menu"
	EventDismiss  SidebarEvent = "dismiss"
	EventBackdrop SidebarEvent = "backdrop"
)

// ParseSidebarState defaults anything unrecognised to SidebarClosed.
func ParseSidebarState(raw string) SidebarState {
	if SidebarState(raw) == SidebarOpen {
		return SidebarOpen
	}
	return SidebarClosed
}

// Next applies ev to s. Unknown events leave the state unchanged.
func (s SidebarState) Next(ev SidebarEvent) SidebarState {
	switch ev {
	case EventMenu:
		return SidebarOpen
	case EventDismiss, EventBackdrop:
		return SidebarClosed
	}
	return s
}

// IsOpen reports whether the overlay is shown.
func (s SidebarState) IsOpen() bool { return s == SidebarOpen }
