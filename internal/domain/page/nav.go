package page

// Menu glyphs for the mobile navigation toggle
const (
	GlyphMenuOpen   = "✕"
	GlyphMenuClosed = "☰"
)

// MenuToggle drives the mobile menu's visibility class and icon glyph
type MenuToggle struct {
	active bool
}

// Toggle flips the menu and returns whether it is now active
func (m *MenuToggle) Toggle() bool {
	m.active = !m.active
	return m.active
}

// Active reports whether the menu is shown
func (m *MenuToggle) Active() bool {
	return m.active
}

// Glyph returns the toggle control's icon for the current state
func (m *MenuToggle) Glyph() string {
	if m.active {
		return GlyphMenuOpen
	}
	return GlyphMenuClosed
}

// PanelToggle drives the settings panel's open/closed state
type PanelToggle struct {
	open bool
}

// Toggle flips the panel and returns whether it is now open
func (p *PanelToggle) Toggle() bool {
	p.open = !p.open
	return p.open
}

// Open reports whether the panel is shown
func (p *PanelToggle) Open() bool {
	return p.open
}
