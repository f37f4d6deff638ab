// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package browse drives the category page: the source and category selection,
the route it is addressed by and the paginated listing shown below it.

The [Controller] is independent of any UI toolkit. A front-end forwards user
events (mount, source click, category click, sentinel visibility, scroll) and
renders [State] snapshots.

# Selection

	no-source-selected -> source-selected -> (source, category)-selected

Every selection bumps a generation counter; answers that arrive for an older
generation are dropped, so a slow response can never leak into the newer
selection.
*/
package browse

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/taibuivan/vodbrowse/internal/catalog"
	"github.com/taibuivan/vodbrowse/internal/source"
)

var (
	// ErrUnknownSource is returned when selecting a key that was not loaded.
	ErrUnknownSource = errors.New("browse: unknown source")

	// ErrUnknownCategory is returned when selecting a category that the
	// current source did not list, or when no source is selected.
	ErrUnknownCategory = errors.New("browse: unknown category")
)

// # State

// Phase is the selection state.
type Phase int

const (
	PhaseNoSource Phase = iota
	PhaseSource
	PhaseCategory
)

func (p Phase) String() string {
	switch p {
	case PhaseSource:
		return "source-selected"
	case PhaseCategory:
		return "category-selected"
	default:
		return "no-source-selected"
	}
}

// Pagination tracks the listing pages loaded for the current selection.
type Pagination struct {
	CurrentPage   int
	HasMore       bool
	IsLoadingMore bool
}

func initialPagination() Pagination {
	return Pagination{CurrentPage: 1, HasMore: true}
}

// State is a snapshot of the category page.
type State struct {
	Sources    []source.Summary
	Source     *source.Summary
	Categories []catalog.Category
	Category   *catalog.Category
	Results    []catalog.Item
	Pagination Pagination

	// IsLoading is set while the first page or the category list is fetched.
	IsLoading bool

	// ShowResults turns true once a first page fetch has completed.
	ShowResults bool

	Route Route
}

// Phase derives the selection state.
func (s State) Phase() Phase {
	switch {
	case s.Source == nil:
		return PhaseNoSource
	case s.Category == nil:
		return PhaseSource
	default:
		return PhaseCategory
	}
}

// SentinelArmed reports whether reaching the end of the list should load
// another page.
func (s State) SentinelArmed() bool {
	return s.Category != nil && s.Pagination.HasMore && !s.Pagination.IsLoadingMore && !s.IsLoading
}

func (s State) clone() State {
	out := s
	out.Sources = slices.Clone(s.Sources)
	out.Categories = slices.Clone(s.Categories)
	out.Results = slices.Clone(s.Results)
	if s.Source != nil {
		src := *s.Source
		out.Source = &src
	}
	if s.Category != nil {
		cat := *s.Category
		out.Category = &cat
	}
	return out
}

// # Controller

// Controller owns the category page state. It is safe for concurrent use;
// the lock is never held across a backend call.
type Controller struct {
	backend   Backend
	navigator Navigator
	filter    catalog.Filter
	logger    *slog.Logger

	mu         sync.Mutex
	state      State
	seen       map[catalog.Identity]struct{}
	generation uint64
}

// NewController creates a controller. navigator may be nil.
func NewController(backend Backend, navigator Navigator, filter catalog.Filter, logger *slog.Logger) *Controller {
	if navigator == nil {
		navigator = NavigatorFunc(func(Route) {})
	}
	return &Controller{
		backend:   backend,
		navigator: navigator,
		filter:    filter,
		logger:    logger,
		state:     State{Pagination: initialPagination()},
		seen:      make(map[catalog.Identity]struct{}),
	}
}

// Snapshot returns a copy of the current state.
func (controller *Controller) Snapshot() State {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.state.clone()
}

/*
Mount loads the sources and selects the one named by route. A route without
a resourceId selects the first source; a resourceId that matches no source
selects nothing. route.CategoryID becomes the category selected once the
category list arrives; an empty id selects the all category.
*/
func (controller *Controller) Mount(ctx context.Context, route Route) {
	sources, err := controller.backend.Sources(ctx)
	if err != nil {
		controller.logger.DebugContext(ctx, "browse_sources_failed", slog.Any("error", err))
		sources = nil
	}

	controller.mu.Lock()
	controller.state.Sources = sources
	controller.state.Route = route

	var selected *source.Summary
	for i := range sources {
		if sources[i].Key == route.ResourceID {
			selected = &sources[i]
			break
		}
	}
	if route.ResourceID == "" && len(sources) > 0 {
		selected = &sources[0]
	}
	controller.mu.Unlock()

	if selected == nil {
		return
	}
	_ = controller.selectSource(ctx, selected.Key, route.CategoryID)
}

// SelectSource switches to the source keyed by key and selects its all
// category once the category list is loaded.
func (controller *Controller) SelectSource(ctx context.Context, key string) error {
	return controller.selectSource(ctx, key, "")
}

func (controller *Controller) selectSource(ctx context.Context, key, defaultCategoryID string) error {
	controller.mu.Lock()
	idx := slices.IndexFunc(controller.state.Sources, func(s source.Summary) bool { return s.Key == key })
	if idx < 0 {
		controller.mu.Unlock()
		return ErrUnknownSource
	}

	selected := controller.state.Sources[idx]
	generation := controller.nextGeneration()

	controller.state.Source = &selected
	controller.state.Categories = nil
	controller.state.Category = nil
	controller.state.IsLoading = true
	controller.resetListing()

	route, changed := controller.route(Route{ResourceID: key}, controller.state.Route.ResourceID != key)
	controller.mu.Unlock()

	if changed {
		controller.navigator.Navigate(route)
	}

	categories, err := controller.backend.Categories(ctx, key)

	controller.mu.Lock()
	if generation != controller.generation {
		controller.mu.Unlock()
		return nil
	}

	controller.state.IsLoading = false
	if err != nil {
		controller.logger.DebugContext(ctx, "browse_categories_failed",
			slog.String("source", key),
			slog.Any("error", err),
		)
		controller.mu.Unlock()
		return nil
	}

	controller.state.Categories = append([]catalog.Category{catalog.AllCategory}, categories...)
	hasDefault := slices.ContainsFunc(controller.state.Categories, func(c catalog.Category) bool {
		return c.TypeID == defaultCategoryID
	})
	controller.mu.Unlock()

	if !hasDefault {
		return nil
	}
	return controller.SelectCategory(ctx, defaultCategoryID)
}

/*
SelectCategory switches to the category of the current source whose type id
is typeID and loads its first page. The all category never paginates.
*/
func (controller *Controller) SelectCategory(ctx context.Context, typeID string) error {
	controller.mu.Lock()
	idx := slices.IndexFunc(controller.state.Categories, func(c catalog.Category) bool { return c.TypeID == typeID })
	if controller.state.Source == nil || idx < 0 {
		controller.mu.Unlock()
		return ErrUnknownCategory
	}

	key := controller.state.Source.Key
	selected := controller.state.Categories[idx]
	generation := controller.nextGeneration()

	controller.state.Category = &selected
	controller.state.IsLoading = true
	controller.resetListing()

	current := controller.state.Route
	route, changed := controller.route(Route{ResourceID: key, CategoryID: typeID}, current.ResourceID != key || current.CategoryID != typeID)
	controller.mu.Unlock()

	if changed {
		controller.navigator.Navigate(route)
	}

	items, err := controller.backend.Items(ctx, key, catalog.ListQuery{TypeID: typeID, Page: 1})

	controller.mu.Lock()
	defer controller.mu.Unlock()

	if generation != controller.generation {
		return nil
	}

	if err != nil {
		controller.logger.DebugContext(ctx, "browse_first_page_failed",
			slog.String("source", key),
			slog.String("category", typeID),
			slog.Any("error", err),
		)
		items = nil
	}

	controller.remember(items)
	controller.state.Results = controller.filter.Apply(items)
	if controller.state.Results == nil {
		controller.state.Results = []catalog.Item{}
	}
	if selected.IsAll() {
		controller.state.Pagination.HasMore = false
	}
	controller.state.IsLoading = false
	controller.state.ShowResults = true
	return nil
}

/*
LoadMore fetches the next listing page when the sentinel is armed.

Returns:
  - bool: false when the sentinel was not armed and nothing was requested
*/
func (controller *Controller) LoadMore(ctx context.Context) bool {
	controller.mu.Lock()
	if !controller.state.SentinelArmed() {
		controller.mu.Unlock()
		return false
	}

	key := controller.state.Source.Key
	typeID := controller.state.Category.TypeID
	generation := controller.generation

	controller.state.Pagination.CurrentPage++
	controller.state.Pagination.IsLoadingMore = true
	page := controller.state.Pagination.CurrentPage
	controller.mu.Unlock()

	items, err := controller.backend.Items(ctx, key, catalog.ListQuery{TypeID: typeID, Page: page})

	controller.mu.Lock()
	defer controller.mu.Unlock()

	if generation != controller.generation {
		return true
	}
	controller.state.Pagination.IsLoadingMore = false

	switch {
	case err != nil:
		controller.logger.DebugContext(ctx, "browse_load_more_failed",
			slog.String("source", key),
			slog.Int("page", page),
			slog.Any("error", err),
		)
		controller.state.Pagination.HasMore = false
	case len(items) == 0:
		controller.state.Pagination.HasMore = false
	case controller.seenBefore(items[0]):
		// The upstream wrapped around or ignores the page parameter.
		controller.state.Pagination.HasMore = false
	default:
		controller.remember(items)
		controller.state.Results = append(controller.state.Results, controller.filter.Apply(items)...)
	}

	return true
}

// # Internal State Helpers
//
// The helpers below expect controller.mu to be held.

func (controller *Controller) nextGeneration() uint64 {
	controller.generation++
	return controller.generation
}

func (controller *Controller) resetListing() {
	controller.state.Results = []catalog.Item{}
	controller.state.Pagination = initialPagination()
	controller.seen = make(map[catalog.Identity]struct{})
}

// route records next as the current route when changed is set. Only the
// selection parts of a route are compared, so a route carrying a page number
// is not rewritten on mount.
func (controller *Controller) route(next Route, changed bool) (Route, bool) {
	if !changed {
		return controller.state.Route, false
	}
	controller.state.Route = next
	return next, true
}

// remember records the identity of every fetched item, filtered or not.
func (controller *Controller) remember(items []catalog.Item) {
	for _, item := range items {
		controller.seen[item.Identity()] = struct{}{}
	}
}

func (controller *Controller) seenBefore(item catalog.Item) bool {
	_, ok := controller.seen[item.Identity()]
	return ok
}
