package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// PageViewBuilder assembles a page into the two-box layout: content in the
// red box, help text in the white box below it.
//
//	return NewPageView(m.Layout).
//	    Title("Moves").
//	    Divider().
//	    Filters("Type", "Fire", "Category", "All").
//	    QueryInfo("Showing 12 of 640 moves").
//	    Table(m.Table).
//	    PageStatus(m.PageState).
//	    Help("/: search | esc: back").
//	    Build()
type PageViewBuilder struct {
	layout     Layout
	content    strings.Builder
	helpText   string
	hadContent bool
}

// NewPageView creates a new PageViewBuilder with the given layout.
func NewPageView(layout Layout) *PageViewBuilder {
	return &PageViewBuilder{
		layout: layout,
	}
}

// Title adds a title line (bold white).
func (b *PageViewBuilder) Title(title string) *PageViewBuilder {
	b.content.WriteString(RenderTitle(title))
	b.content.WriteString("\n")
	b.hadContent = true
	return b
}

// Subtitle adds a subtitle line (dim gray).
func (b *PageViewBuilder) Subtitle(subtitle string) *PageViewBuilder {
	b.content.WriteString(RenderDim(subtitle))
	b.content.WriteString("\n")
	b.hadContent = true
	return b
}

// Divider adds a full-width horizontal divider.
func (b *PageViewBuilder) Divider() *PageViewBuilder {
	b.content.WriteString(FullWidthDivider(b.layout.InnerWidth))
	b.content.WriteString("\n")
	b.hadContent = true
	return b
}

// Spacing adds blank lines.
func (b *PageViewBuilder) Spacing(lines int) *PageViewBuilder {
	for i := 0; i < lines; i++ {
		b.content.WriteString("\n")
	}
	return b
}

// QueryInfo adds query/filter information line (accented yellow).
func (b *PageViewBuilder) QueryInfo(info string) *PageViewBuilder {
	b.content.WriteString(AccentStyle.Render(info))
	b.content.WriteString("\n")
	b.hadContent = true
	return b
}

// Text adds normal text content.
func (b *PageViewBuilder) Text(text string) *PageViewBuilder {
	b.content.WriteString(NormalStyle.Render(text))
	b.content.WriteString("\n")
	b.hadContent = true
	return b
}

// DimText adds dimmed text content.
func (b *PageViewBuilder) DimText(text string) *PageViewBuilder {
	b.content.WriteString(DimStyle.Render(text))
	b.content.WriteString("\n")
	b.hadContent = true
	return b
}

// CustomContent adds custom pre-rendered content.
// Use this for complex content that doesn't fit the builder pattern.
func (b *PageViewBuilder) CustomContent(content string) *PageViewBuilder {
	b.content.WriteString(content)
	b.hadContent = true
	return b
}

// Tabs adds a tab row with the active tab highlighted
func (b *PageViewBuilder) Tabs(names []string, active int) *PageViewBuilder {
	b.content.WriteString(RenderTabs(names, active))
	b.content.WriteString("\n")
	b.hadContent = true
	return b
}

// Filters adds the "Label: value" filter summary line
func (b *PageViewBuilder) Filters(pairs ...string) *PageViewBuilder {
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, RenderDim(pairs[i]+": ")+RenderAccent(pairs[i+1]))
	}
	b.content.WriteString(strings.Join(parts, RenderDim("  |  ")))
	b.content.WriteString("\n")
	b.hadContent = true
	return b
}

// Empty adds a centered placeholder line shown in place of an empty table
func (b *PageViewBuilder) Empty(msg string) *PageViewBuilder {
	b.content.WriteString("\n\n")
	b.content.WriteString(CenterText(DimStyle.Render(msg), b.layout.InnerWidth))
	b.content.WriteString("\n")
	b.hadContent = true
	return b
}

// Table adds a table with full-width selection highlighting.
// Should typically be added after QueryInfo and before Status.
func (b *PageViewBuilder) Table(t table.Model) *PageViewBuilder {
	// Add spacing before table if there's already content
	if b.hadContent {
		b.content.WriteString("\n")
	}
	b.content.WriteString(RenderTableWithSelection(t, b.layout))
	b.hadContent = true
	return b
}

// Status adds a status message (if not empty).
// Typically added after the table or main content.
func (b *PageViewBuilder) Status(msg string) *PageViewBuilder {
	return b.status(StatusMsgStyle, msg)
}

// PageStatus adds the status line held by a page, styled by its kind
func (b *PageViewBuilder) PageStatus(p PageState) *PageViewBuilder {
	if p.StatusKind == StatusWarning {
		return b.status(ErrorStyle, p.StatusMsg)
	}
	return b.status(StatusMsgStyle, p.StatusMsg)
}

func (b *PageViewBuilder) status(style lipgloss.Style, msg string) *PageViewBuilder {
	if msg != "" {
		// Add spacing before status if there's already content
		if b.hadContent {
			b.content.WriteString("\n")
		}
		b.content.WriteString(style.Render(msg))
		b.content.WriteString("\n")
		b.hadContent = true
	}
	return b
}

// Error adds an error message.
func (b *PageViewBuilder) Error(err error) *PageViewBuilder {
	if err != nil {
		if b.hadContent {
			b.content.WriteString("\n")
		}
		b.content.WriteString(RenderError(err.Error()))
		b.content.WriteString("\n")
		b.hadContent = true
	}
	return b
}

// Help sets the help text for the footer box.
// This should be called last before Build().
func (b *PageViewBuilder) Help(helpText string) *PageViewBuilder {
	b.helpText = helpText
	return b
}

// Build constructs the final view string with two-box layout.
// This must be called last to get the rendered output.
func (b *PageViewBuilder) Build() string {
	content := b.content.String()

	return TwoBoxView(content, b.helpText, b.layout)
}

// BuildContent builds just the content portion without the two-box layout.
// Use this if you need to do custom layout.
func (b *PageViewBuilder) BuildContent() string {
	return b.content.String()
}
