package domain

// HeaderScrollThreshold is the scroll offset past which the header gets its solid background.
const HeaderScrollThreshold = 10

// ShellState is the page chrome state shared by everything rendered inside
// one view: which page is current, whether the sidebar is collapsed, whether
// the mobile menu is open and whether the header is in its scrolled style.
// The view owns it; the renderer receives it explicitly.
type ShellState struct {
	Page             Page `json:"page"`
	SidebarCollapsed bool `json:"sidebar_collapsed"`
	MenuOpen         bool `json:"menu_open"`
	HeaderScrolled   bool `json:"header_scrolled"`
}

// NewShellState is the chrome of a freshly entered page. Navigation always
// closes the mobile menu.
func NewShellState(page Page) ShellState {
	return ShellState{Page: page}
}

func (s *ShellState) ToggleSidebar() bool {
	s.SidebarCollapsed = !s.SidebarCollapsed
	return s.SidebarCollapsed
}

func (s *ShellState) ToggleMenu() bool {
	s.MenuOpen = !s.MenuOpen
	return s.MenuOpen
}

// ObserveScroll updates the header style for a scroll offset.
func (s *ShellState) ObserveScroll(scrollY float64) {
	s.HeaderScrolled = scrollY > HeaderScrollThreshold
}
