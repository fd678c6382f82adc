// Package view turns catalog data into a render tree. Every function here is
// pure: it reads temples and the favorites set and returns plain structs that
// a display surface paints. Nothing in this package knows about terminals.
package view

import (
	"fmt"
	"strings"

	"github.com/five82/angkor/internal/catalog"
)

// Page identifies one of the three view regions.
type Page int

const (
	PageList Page = iota
	PageDetail
	PageFavorites
)

func (p Page) String() string {
	switch p {
	case PageDetail:
		return "detail"
	case PageFavorites:
		return "favorites"
	default:
		return "list"
	}
}

// Image references used when a temple has no pictures.
const (
	PlaceholderCover  = "/api/placeholder/400/300"
	PlaceholderHeader = "/api/placeholder/800/400"
)

const (
	// SummaryLimit bounds card summaries, in runes.
	SummaryLimit = 140
	// CardTagLimit is how many tags a card shows.
	CardTagLimit = 3
	// DefaultCountry fills in records that omit location.country.
	DefaultCountry = "Cambodia"
	// EmptyFavoritesMessage is shown when no collection item is a favorite.
	EmptyFavoritesMessage = "No favorite temples yet. Mark a temple with ♥ to keep it here."
	// DateLayout formats the last-updated date.
	DateLayout = "2 Jan 2006"
)

// ControlKind distinguishes interactive controls.
type ControlKind int

const (
	ControlToggle ControlKind = iota
	ControlOpen
	ControlBack
)

func (k ControlKind) String() string {
	switch k {
	case ControlOpen:
		return "open"
	case ControlBack:
		return "back"
	default:
		return "toggle"
	}
}

// Control is an interactive element bound to exactly one temple id. ID is
// unique within a Screen; ItemID is compared by equality only.
type Control struct {
	ID     string
	Kind   ControlKind
	ItemID string
	Active bool
}

func newControl(kind ControlKind, slot int, itemID string, active bool) Control {
	return Control{
		ID:     fmt.Sprintf("%s:%d", kind, slot),
		Kind:   kind,
		ItemID: itemID,
		Active: active,
	}
}

// Card is one temple in the list or favorites grid.
type Card struct {
	ItemID             string
	Title              string
	Province           string
	Summary            string
	Cover              string
	CoverIsPlaceholder bool
	Tags               []string
	Toggle             Control
	Open               Control
}

// Section is one labelled description block.
type Section struct {
	Label string
	Text  string
}

// DetailView is the full page for a single temple.
type DetailView struct {
	ItemID              string
	Title               string
	Subtitle            string
	Header              string
	HeaderIsPlaceholder bool
	Summary             string
	Sections            []Section
	Tags                []string
	Province            string
	Country             string
	Updated             string
	Toggle              Control
	Back                Control
}

// FavoritesView is the favorites grid or its empty state.
type FavoritesView struct {
	Cards        []Card
	Empty        bool
	EmptyMessage string
}

// NewCard renders a single card. slot positions the card's controls.
func NewCard(item catalog.Temple, favorite bool, slot int) Card {
	cover := item.CoverURL()
	placeholder := cover == ""
	if placeholder {
		cover = PlaceholderCover
	}
	return Card{
		ItemID:             item.ID,
		Title:              item.Title,
		Province:           item.Location.Province,
		Summary:            truncate(item.Summary, SummaryLimit),
		Cover:              cover,
		CoverIsPlaceholder: placeholder,
		Tags:               headTags(item.Tags, CardTagLimit),
		Toggle:             newControl(ControlToggle, slot, item.ID, favorite),
		Open:               newControl(ControlOpen, slot, item.ID, false),
	}
}

// List renders one card per item, in input order.
func List(items []catalog.Temple, favorites map[string]bool) []Card {
	cards := make([]Card, 0, len(items))
	for i, item := range items {
		cards = append(cards, NewCard(item, favorites[item.ID], i))
	}
	return cards
}

// Detail renders the detail page for item.
func Detail(item catalog.Temple, favorite bool) *DetailView {
	header := item.CoverURL()
	placeholder := header == ""
	if placeholder {
		header = PlaceholderHeader
	}
	country := strings.TrimSpace(item.Location.Country)
	if country == "" {
		country = DefaultCountry
	}

	sections := make([]Section, 0, len(item.Descriptions))
	for _, d := range item.Descriptions {
		sections = append(sections, Section{Label: d.Label, Text: d.Text})
	}

	return &DetailView{
		ItemID:              item.ID,
		Title:               item.Title,
		Subtitle:            joinNonEmpty(", ", item.Location.Province, country),
		Header:              header,
		HeaderIsPlaceholder: placeholder,
		Summary:             item.Summary,
		Sections:            sections,
		Tags:                append([]string(nil), item.Tags...),
		Province:            item.Location.Province,
		Country:             country,
		Updated:             FormatDate(item),
		Toggle:              newControl(ControlToggle, 0, item.ID, favorite),
		Back:                newControl(ControlBack, 0, "", false),
	}
}

// Favorites renders the favorite temples, which the caller supplies in
// collection order. Every card's toggle is active.
func Favorites(items []catalog.Temple) FavoritesView {
	if len(items) == 0 {
		return FavoritesView{Empty: true, EmptyMessage: EmptyFavoritesMessage}
	}
	cards := make([]Card, 0, len(items))
	for i, item := range items {
		cards = append(cards, NewCard(item, true, i))
	}
	return FavoritesView{Cards: cards}
}

// FormatDate renders the temple's last-updated date, or "" when unknown.
func FormatDate(item catalog.Temple) string {
	t := item.ParsedUpdatedAt()
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func headTags(tags []string, limit int) []string {
	if len(tags) > limit {
		tags = tags[:limit]
	}
	return append([]string(nil), tags...)
}

func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	runes := []rune(value)
	if limit <= 0 || len(runes) <= limit {
		return value
	}
	if limit <= 1 {
		return string(runes[:limit])
	}
	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
