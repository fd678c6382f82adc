// Package browse is the page controller: it owns the view state, routes
// navigation, search and favorite toggles to the store, and re-renders the
// active page into a view.Screen.
package browse

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/angkor/internal/catalog"
	"github.com/five82/angkor/internal/state"
	"github.com/five82/angkor/internal/view"
)

// ViewState is the transient routing state.
type ViewState struct {
	Page   view.Page
	ItemID string // set only on view.PageDetail
}

// Controller drives the three pages. It is not safe for concurrent use; the
// UI calls it from its update loop.
type Controller struct {
	store   *state.Store
	logger  *zap.Logger
	current ViewState
	query   string
	loading bool
	screen  view.Screen
}

// NewController returns a controller showing an empty, loading list page.
func NewController(store *state.Store, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		store:   store,
		logger:  logger,
		loading: true,
	}
	c.screen = c.renderList(nil)
	return c
}

// Loaded installs the fetched (or fallback) collection and enters the list
// page.
func (c *Controller) Loaded(items []catalog.Temple) view.Screen {
	c.store.SetCollection(items)
	c.loading = false
	return c.Navigate(view.PageList, "")
}

// Loading reports whether the initial fetch is still outstanding.
func (c *Controller) Loading() bool {
	return c.loading
}

// Current returns the active view state.
func (c *Controller) Current() ViewState {
	return c.current
}

// Query returns the search query applied to the list page, if any.
func (c *Controller) Query() string {
	return c.query
}

// Screen returns the last rendered screen.
func (c *Controller) Screen() view.Screen {
	return c.screen
}

// Navigate switches to page and renders it. Entering the list page drops any
// search query. A detail request for an empty or unknown id leaves the detail
// region empty.
func (c *Controller) Navigate(page view.Page, itemID string) view.Screen {
	switch page {
	case view.PageDetail:
		c.current = ViewState{Page: view.PageDetail, ItemID: itemID}
		c.screen = c.renderDetail(itemID)
	case view.PageFavorites:
		c.current = ViewState{Page: view.PageFavorites}
		c.screen = c.renderFavorites()
	default:
		c.current = ViewState{Page: view.PageList}
		c.query = ""
		c.screen = c.renderList(nil)
	}
	c.logger.Debug("navigate", zap.Stringer("page", c.current.Page), zap.String("item", c.current.ItemID))
	return c.screen
}

// Search filters the collection by query and shows the result on the list
// page. A blank query shows the full collection.
func (c *Controller) Search(query string) view.Screen {
	c.current = ViewState{Page: view.PageList}
	c.query = query
	c.screen = c.renderList(catalog.Filter(c.store.Collection(), query))
	return c.screen
}

// ToggleFavorite flips itemID's membership when a toggle for it is on
// screen, and is a no-op otherwise. List and favorites pages re-render; the
// detail page only updates its toggle. A persistence failure is returned
// after the screen has been updated.
func (c *Controller) ToggleFavorite(itemID string) (view.Screen, error) {
	if !c.screen.HasToggle(itemID) {
		return c.screen, nil
	}

	member, err := c.store.ToggleFavorite(itemID)
	if err != nil {
		err = fmt.Errorf("toggle favorite %q: %w", itemID, err)
	}

	switch c.current.Page {
	case view.PageDetail:
		c.screen.SetToggle(itemID, member)
	case view.PageFavorites:
		c.screen = c.renderFavorites()
	default:
		c.screen = c.renderList(c.filtered())
	}
	return c.screen, err
}

func (c *Controller) filtered() []catalog.Temple {
	if c.query == "" {
		return nil
	}
	return catalog.Filter(c.store.Collection(), c.query)
}

// renderList renders items, or the full collection when items is nil.
func (c *Controller) renderList(items []catalog.Temple) view.Screen {
	if items == nil {
		items = c.store.Collection()
	}
	return view.Screen{
		Page:    view.PageList,
		Loading: c.loading,
		Query:   c.query,
		Cards:   view.List(items, c.store.FavoriteSet()),
	}
}

// renderDetail leaves Detail nil when itemID is empty or unknown.
func (c *Controller) renderDetail(itemID string) view.Screen {
	screen := view.Screen{Page: view.PageDetail, Loading: c.loading}
	if itemID == "" {
		return screen
	}
	if item, ok := c.store.Lookup(itemID); ok {
		screen.Detail = view.Detail(item, c.store.IsFavorite(itemID))
	}
	return screen
}

func (c *Controller) renderFavorites() view.Screen {
	return view.Screen{
		Page:      view.PageFavorites,
		Loading:   c.loading,
		Favorites: view.Favorites(c.store.FavoriteItems()),
	}
}
