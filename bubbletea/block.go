package bubbletea

import "github.com/foodlink-la/foodlink"

// MessageBlock is a renderable transcript entry. View takes the width so the
// root model controls layout and blocks are testable in isolation.
type MessageBlock interface {
	View(width int) string
}

// newBlock returns the block that renders msg.
func newBlock(msg foodlink.Message, theme foodlink.Theme, styles Styles) MessageBlock {
	if msg.Role == foodlink.RoleUser {
		return NewUserMessageBlock(msg.Content, styles)
	}
	return NewAssistantMessageBlock(msg.Content, theme, styles)
}
