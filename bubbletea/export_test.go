package bubbletea

import tea "github.com/charmbracelet/bubbletea"

// RenderContent exports renderContent for testing.
func RenderContent(m Model) string {
	return m.renderContent()
}

// QuickRepliesVisible exports quickRepliesVisible for testing.
func QuickRepliesVisible(m Model) bool {
	return m.quickRepliesVisible()
}

// SeedMsg returns the message Init schedules on urgent surfaces.
func SeedMsg() tea.Msg {
	return seedMsg{}
}
