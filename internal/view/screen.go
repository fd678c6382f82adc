package view

// Screen is the root of the render tree for whichever page is active. Only
// the region matching Page is populated.
type Screen struct {
	Page    Page
	Loading bool

	// List page.
	Query string
	Cards []Card

	// Detail page; nil when the requested temple is unknown.
	Detail *DetailView

	// Favorites page.
	Favorites FavoritesView
}

// Controls lists every interactive control on the screen in display order.
func (s Screen) Controls() []Control {
	var out []Control
	appendCards := func(cards []Card) {
		for _, c := range cards {
			out = append(out, c.Toggle, c.Open)
		}
	}
	switch s.Page {
	case PageList:
		appendCards(s.Cards)
	case PageFavorites:
		appendCards(s.Favorites.Cards)
	case PageDetail:
		if s.Detail != nil {
			out = append(out, s.Detail.Toggle, s.Detail.Back)
		}
	}
	return out
}

// Control looks up a control by its screen-unique id.
func (s Screen) Control(id string) (Control, bool) {
	for _, c := range s.Controls() {
		if c.ID == id {
			return c, true
		}
	}
	return Control{}, false
}

// HasToggle reports whether a favorite toggle for itemID is displayed.
func (s Screen) HasToggle(itemID string) bool {
	if itemID == "" {
		return false
	}
	for _, c := range s.Controls() {
		if c.Kind == ControlToggle && c.ItemID == itemID {
			return true
		}
	}
	return false
}

// SetToggle updates, in place, the Active state of every toggle bound to
// itemID and reports how many were changed. Nothing else is re-rendered.
func (s *Screen) SetToggle(itemID string, active bool) int {
	changed := 0
	update := func(c *Control) {
		if c.Kind == ControlToggle && c.ItemID == itemID {
			c.Active = active
			changed++
		}
	}
	for i := range s.Cards {
		update(&s.Cards[i].Toggle)
	}
	for i := range s.Favorites.Cards {
		update(&s.Favorites.Cards[i].Toggle)
	}
	if s.Detail != nil {
		update(&s.Detail.Toggle)
	}
	return changed
}

// CardCount returns how many cards the active page shows.
func (s Screen) CardCount() int {
	switch s.Page {
	case PageList:
		return len(s.Cards)
	case PageFavorites:
		return len(s.Favorites.Cards)
	default:
		return 0
	}
}

// CardAt returns the card at index on the active page.
func (s Screen) CardAt(index int) (Card, bool) {
	var cards []Card
	switch s.Page {
	case PageList:
		cards = s.Cards
	case PageFavorites:
		cards = s.Favorites.Cards
	}
	if index < 0 || index >= len(cards) {
		return Card{}, false
	}
	return cards[index], true
}
