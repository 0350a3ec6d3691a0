// Package markdown renders assistant replies to ANSI-styled terminal text
// using goldmark for parsing and lipgloss for styling.
//
// Agent replies are short and conversational: paragraphs, bullet lists of
// places, bold names, and links. Those are styled; anything else falls back
// to its plain text.
package markdown

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/foodlink-la/foodlink"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

const minWidth = 20

var parser = goldmark.New(
	goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
).Parser()

// Render parses markdown source and returns styled text wrapped to width.
// Bare URLs are linkified.
func Render(source string, width int, theme foodlink.Theme) string {
	if strings.TrimSpace(source) == "" {
		return ""
	}
	if width < minWidth {
		width = minWidth
	}
	src := []byte(source)
	doc := parser.Parse(text.NewReader(src))

	r := renderer{src: src, styles: newStyles(theme)}
	return strings.Join(r.blocks(doc, width), "\n\n")
}

type styles struct {
	heading lipgloss.Style
	bold    lipgloss.Style
	italic  lipgloss.Style
	strike  lipgloss.Style
	code    lipgloss.Style
	link    lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(t foodlink.Theme) styles {
	return styles{
		heading: lipgloss.NewStyle().Foreground(color(t.Accent)).Bold(true),
		bold:    lipgloss.NewStyle().Bold(true),
		italic:  lipgloss.NewStyle().Italic(true),
		strike:  lipgloss.NewStyle().Strikethrough(true),
		code:    lipgloss.NewStyle().Foreground(color(t.Accent)),
		link:    lipgloss.NewStyle().Foreground(color(t.Accent)).Underline(true),
		muted:   lipgloss.NewStyle().Foreground(color(t.Muted)),
	}
}

func color(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

type renderer struct {
	src    []byte
	styles styles
}

// blocks renders each child block of parent, skipping empty output.
func (r renderer) blocks(parent ast.Node, width int) []string {
	var out []string
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if s := r.block(n, width); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (r renderer) block(n ast.Node, width int) string {
	switch n := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return wrap(r.inline(n), width)
	case *ast.Heading:
		return wrap(r.styles.heading.Render(r.inline(n)), width)
	case *ast.List:
		return r.list(n, width)
	case *ast.Blockquote:
		gutter := r.styles.muted.Render("│") + " "
		return prefixLines(strings.Join(r.blocks(n, width-2), "\n\n"), gutter, gutter)
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		lines := n.Lines()
		out := make([]string, 0, lines.Len())
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			out = append(out, r.styles.code.Render(strings.TrimRight(string(seg.Value(r.src)), "\n")))
		}
		return strings.Join(out, "\n")
	case *ast.ThematicBreak:
		return r.styles.muted.Render(strings.Repeat("─", min(width, 40)))
	case *ast.HTMLBlock:
		return ""
	default:
		return strings.Join(r.blocks(n, width), "\n\n")
	}
}

func (r renderer) list(n *ast.List, width int) string {
	var items []string
	num := n.Start
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		marker := "• "
		if n.IsOrdered() {
			marker = strconv.Itoa(num) + ". "
			num++
		}
		indent := strings.Repeat(" ", lipgloss.Width(marker))
		body := strings.Join(r.blocks(c, width-len(indent)), "\n")
		items = append(items, prefixLines(body, marker, indent))
	}
	return strings.Join(items, "\n")
}

func (r renderer) inline(parent ast.Node) string {
	var b strings.Builder
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		r.writeInline(&b, n)
	}
	return b.String()
}

func (r renderer) writeInline(b *strings.Builder, n ast.Node) {
	switch n := n.(type) {
	case *ast.Text:
		b.Write(n.Segment.Value(r.src))
		switch {
		case n.HardLineBreak():
			b.WriteByte('\n')
		case n.SoftLineBreak():
			b.WriteByte(' ')
		}
	case *ast.String:
		b.Write(n.Value)
	case *ast.Emphasis:
		if n.Level >= 2 {
			b.WriteString(r.styles.bold.Render(r.inline(n)))
		} else {
			b.WriteString(r.styles.italic.Render(r.inline(n)))
		}
	case *extast.Strikethrough:
		b.WriteString(r.styles.strike.Render(r.inline(n)))
	case *ast.CodeSpan:
		b.WriteString(r.styles.code.Render(r.inline(n)))
	case *ast.Link:
		label := r.inline(n)
		dest := string(n.Destination)
		b.WriteString(r.styles.link.Render(label))
		if label != dest {
			b.WriteString(" " + r.styles.muted.Render("("+dest+")"))
		}
	case *ast.AutoLink:
		b.WriteString(r.styles.link.Render(string(n.URL(r.src))))
	case *ast.Image:
		b.WriteString(r.styles.muted.Render("[" + r.inline(n) + "]"))
	case *ast.RawHTML:
	default:
		b.WriteString(r.inline(n))
	}
}

func wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}

// prefixLines puts first before the first line of s and rest before every
// following line.
func prefixLines(s, first, rest string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = first + lines[i]
		} else {
			lines[i] = rest + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
