package bubbletea

import (
	"github.com/foodlink-la/foodlink"
	"github.com/foodlink-la/foodlink/markdown"
)

var _ MessageBlock = (*AssistantMessageBlock)(nil)

// AssistantMessageBlock renders an assistant reply as markdown. Replies
// arrive whole, so the rendered text is cached per width and only redone on
// resize.
type AssistantMessageBlock struct {
	text    string
	theme   foodlink.Theme
	styles  Styles
	byWidth map[int]string
}

// NewAssistantMessageBlock creates an AssistantMessageBlock.
func NewAssistantMessageBlock(text string, theme foodlink.Theme, styles Styles) *AssistantMessageBlock {
	return &AssistantMessageBlock{
		text:    text,
		theme:   theme,
		styles:  styles,
		byWidth: make(map[int]string),
	}
}

func (b *AssistantMessageBlock) View(width int) string {
	if width <= 0 {
		return ""
	}
	if cached, ok := b.byWidth[width]; ok {
		return cached
	}
	rendered := markdown.Render(b.text, width, b.theme)
	b.byWidth[width] = rendered
	return rendered
}
