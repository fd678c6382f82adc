package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/angkor/internal/view"
)

// chromeHeight is the number of rows used by header, tabs and footer.
const chromeHeight = 3

// cardHeight is the rendered height of one card, border included.
const cardHeight = 6

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	// Header line 1: logo + status
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Header line 2: page tabs
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	// Main content
	content := lipgloss.NewStyle().
		Width(m.contentWidth()).
		Height(m.contentHeight()).
		MaxHeight(m.contentHeight()).
		Render(m.renderContent())
	b.WriteString(content)
	b.WriteString("\n")

	// Footer: search input, errors or key hints
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the logo and catalog status.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	sep := "  "

	parts := []string{styles.Logo.Render("angkor")}

	switch {
	case m.screen.Loading:
		parts = append(parts, styles.WarningText.Bold(true).Render("Loading temples..."))
	default:
		count := m.screen.CardCount()
		if m.screen.Page != view.PageDetail {
			parts = append(parts,
				styles.MutedText.Render("Showing:")+" "+styles.Text.Render(fmt.Sprintf("%d", count)))
		}
		if m.screen.Query != "" {
			parts = append(parts,
				styles.MutedText.Render("Filter:")+" "+styles.AccentText.Render(truncate(m.screen.Query, 30)))
		}
		if m.usedFallback {
			parts = append(parts, styles.WarningText.Render("offline catalog"))
		}
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderTabs renders the page selector.
func (m Model) renderTabs() string {
	styles := m.theme.Styles()

	tab := func(label string, active bool) string {
		if active {
			return styles.ActiveTab.Render(label)
		}
		return styles.Tab.Render(label)
	}

	tabs := []string{
		tab("1 Temples", m.screen.Page == view.PageList),
		tab("2 Favorites", m.screen.Page == view.PageFavorites),
	}
	if m.screen.Page == view.PageDetail {
		title := "Temple"
		if m.screen.Detail != nil && m.screen.Detail.Title != "" {
			title = truncate(m.screen.Detail.Title, 40)
		}
		tabs = append(tabs, tab(title, true))
	}

	return lipgloss.NewStyle().Width(m.width).Render(strings.Join(tabs, " "))
}

// renderContent renders the active page.
func (m Model) renderContent() string {
	styles := m.theme.Styles()

	if m.screen.Loading {
		return styles.MutedText.Render("Loading temples...")
	}

	switch m.screen.Page {
	case view.PageDetail:
		return m.detailViewport.View()

	case view.PageFavorites:
		if m.screen.Favorites.Empty {
			return styles.MutedText.Render(m.screen.Favorites.EmptyMessage)
		}
		return m.renderCards(m.screen.Favorites.Cards, m.cursor[view.PageFavorites])

	default:
		if len(m.screen.Cards) == 0 {
			if m.screen.Query != "" {
				return styles.MutedText.Render(fmt.Sprintf("No temples match %q.", m.screen.Query))
			}
			return styles.MutedText.Render("No temples available.")
		}
		return m.renderCards(m.screen.Cards, m.cursor[view.PageList])
	}
}

// renderCards stacks cards vertically and scrolls so the selected card is
// visible.
func (m Model) renderCards(cards []view.Card, selected int) string {
	height := m.contentHeight()
	width := min(m.contentWidth(), 100)

	var lines []string
	selStart, selEnd := 0, 0
	for i, card := range cards {
		block := m.renderCard(card, i == selected, width)
		if i == selected {
			selStart = len(lines)
			selEnd = selStart + lipgloss.Height(block)
		}
		lines = append(lines, strings.Split(block, "\n")...)
	}

	offset := 0
	if selEnd > height {
		offset = selEnd - height
	}
	if offset > selStart {
		offset = selStart
	}
	end := min(offset+height, len(lines))
	return strings.Join(lines[offset:end], "\n")
}

// renderCard renders a single temple card.
func (m Model) renderCard(card view.Card, selected bool, width int) string {
	styles := m.theme.Styles()
	inner := max(width-4, 8)

	heart := "♡"
	if card.Toggle.Active {
		heart = "♥"
	}
	title := styles.Heart.Render(heart) + " " +
		styles.Text.Bold(true).Render(truncate(card.Title, inner-2))

	cover := truncateMiddle(card.Cover, inner/2)
	if card.CoverIsPlaceholder {
		cover = "no image"
	}
	meta := styles.MutedText.Render(truncate(card.Province, inner/2))
	if card.Province != "" {
		meta += "  "
	}
	meta += styles.FaintText.Render(cover)

	summary := styles.Text.Render(truncate(card.Summary, inner))

	lines := []string{title, meta, summary, m.renderTags(card.Tags, inner)}

	style := styles.Card
	if selected {
		style = styles.SelectedCard
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// renderTags renders tag chips that fit within width.
func (m Model) renderTags(tags []string, width int) string {
	styles := m.theme.Styles()
	var out []string
	used := 0
	for _, tag := range tags {
		chip := styles.Tag.Render(truncate(tag, 24))
		w := lipgloss.Width(chip)
		if used+w > width {
			break
		}
		out = append(out, chip)
		used += w + 1
	}
	return strings.Join(out, " ")
}

// renderAllTags renders every tag in full, wrapping chips onto as many
// rows as needed.
func (m Model) renderAllTags(tags []string, width int) string {
	styles := m.theme.Styles()
	var rows []string
	var row []string
	used := 0
	for _, tag := range tags {
		chip := styles.Tag.Render(tag)
		w := lipgloss.Width(chip)
		if len(row) > 0 && used+w > width {
			rows = append(rows, strings.Join(row, " "))
			row, used = nil, 0
		}
		row = append(row, chip)
		used += w + 1
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}
	return strings.Join(rows, "\n")
}

// renderDetailBody renders the detail page content for the viewport.
func (m Model) renderDetailBody(d *view.DetailView, width int) string {
	styles := m.theme.Styles()
	if d == nil {
		return styles.MutedText.Render("Temple not found.") + "\n\n" +
			styles.FaintText.Render("esc to go back to the temple list")
	}

	wrap := lipgloss.NewStyle().Width(max(width-2, 10))
	var b strings.Builder

	heart := "♡"
	if d.Toggle.Active {
		heart = "♥"
	}
	b.WriteString(styles.Heart.Render(heart) + " " + styles.AccentText.Bold(true).Render(d.Title))
	b.WriteString("\n")
	if d.Subtitle != "" {
		b.WriteString(styles.MutedText.Render(d.Subtitle))
		b.WriteString("\n")
	}
	if d.HeaderIsPlaceholder {
		b.WriteString(styles.FaintText.Render("No image available"))
	} else {
		b.WriteString(styles.FaintText.Render(truncateMiddle(d.Header, width-2)))
	}
	b.WriteString("\n\n")

	if d.Summary != "" {
		b.WriteString(wrap.Render(styles.Text.Render(d.Summary)))
		b.WriteString("\n\n")
	}

	for _, section := range d.Sections {
		if section.Label != "" {
			b.WriteString(styles.AccentText.Bold(true).Render(section.Label))
			b.WriteString("\n")
		}
		b.WriteString(wrap.Render(styles.Text.Render(section.Text)))
		b.WriteString("\n\n")
	}

	if len(d.Tags) > 0 {
		b.WriteString(m.renderAllTags(d.Tags, width-2))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.MutedText.Render("Province: ") + styles.Text.Render(d.Province))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Country:  ") + styles.Text.Render(d.Country))
	b.WriteString("\n")
	if d.Updated != "" {
		b.WriteString(styles.MutedText.Render("Updated:  ") + styles.Text.Render(d.Updated))
		b.WriteString("\n")
	}

	return b.String()
}

// renderFooter renders the search input, a persistence error, or key hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	if m.searching {
		return m.search.View()
	}

	if m.statusErr != nil {
		msg := truncate(fmt.Sprintf("Favorites not saved: %v", m.statusErr), max(m.width-2, 10))
		return styles.Footer.Render(styles.DangerText.Render(msg))
	}

	hints := make([]string, 0, len(m.keys.ShortHelp()))
	for _, binding := range m.keys.ShortHelp() {
		help := binding.Help()
		hints = append(hints,
			styles.WarningText.Render(help.Key)+" "+styles.MutedText.Render(help.Desc))
	}
	return styles.Footer.Render(strings.Join(hints, "  "))
}

func (m Model) contentWidth() int {
	return max(m.width, 20)
}

func (m Model) contentHeight() int {
	return max(m.height-chromeHeight, 1)
}

// visibleCards returns how many whole cards fit on screen.
func (m Model) visibleCards() int {
	return max(m.contentHeight()/cardHeight, 1)
}
