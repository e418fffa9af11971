// Package listctl keeps one paginated, filterable, searchable collection in
// step with the remote API.
//
// A Controller owns the list state of a single screen. Page, filter and
// committed search changes each trigger exactly one fetch; search keystrokes
// are debounced first. Mutations go to the API and are followed by a refetch
// rather than a local patch. Only the most recently issued fetch may update
// the state: starting a fetch cancels the previous one, and a generation
// counter discards any result that still arrives late.
package listctl

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"libadmin/internal/debounce"
	apperrors "libadmin/internal/errors"
	"libadmin/internal/model"
)

// DefaultSearchDelay is the quiet period before a search query is committed.
const DefaultSearchDelay = 300 * time.Millisecond

var (
	// ErrSuperseded is returned by a fetch whose result was discarded because
	// a newer fetch was issued while it was in flight.
	ErrSuperseded = errors.New("fetch superseded by a newer request")
	// ErrClosed is returned once the controller has been closed.
	ErrClosed = errors.New("list controller closed")
)

// NoFilter is the filter type for lists without a filter dimension.
type NoFilter struct{}

// Query is what a Fetcher is asked to load.
type Query[F comparable] struct {
	Page    int
	PerPage int
	Search  string
	Filter  F
}

// Fetcher loads one page.
type Fetcher[T any, F comparable] func(ctx context.Context, q Query[F]) (*model.Page[T], error)

// Notifier receives the outcome of fetches and mutations.
type Notifier interface {
	Success(description string)
	Error(description string)
}

// State is a snapshot of a controller.
type State[T any, F comparable] struct {
	Items           []T                  `json:"items"`
	Loading         bool                 `json:"loading"`
	Loaded          bool                 `json:"loaded"`
	Page            int                  `json:"page"`
	PerPage         int                  `json:"per_page"`
	Meta            model.PaginationMeta `json:"meta"`
	SearchQuery     string               `json:"search_query"`
	DebouncedSearch string               `json:"debounced_search"`
	Filter          F                    `json:"filter"`
}

// Controller is the generic list controller.
type Controller[T any, F comparable] struct {
	name     string
	fetch    Fetcher[T, F]
	notifier Notifier
	logger   *slog.Logger
	fetchMsg string
	search   *debounce.Debouncer[string]
	baseCtx  context.Context
	stop     context.CancelFunc

	mu     sync.Mutex
	state  State[T, F]
	gen    uint64
	cancel context.CancelFunc
	closed bool
}

type options[F comparable] struct {
	perPage     int
	searchDelay time.Duration
	filter      F
	logger      *slog.Logger
	fetchMsg    string
}

// Option configures a Controller.
type Option[F comparable] func(*options[F])

// WithPerPage sets the page size.
func WithPerPage[F comparable](n int) Option[F] {
	return func(o *options[F]) { o.perPage = n }
}

// WithSearchDelay sets the search quiet period.
func WithSearchDelay[F comparable](d time.Duration) Option[F] {
	return func(o *options[F]) { o.searchDelay = d }
}

// WithFilter sets the initial filter.
func WithFilter[F comparable](f F) Option[F] {
	return func(o *options[F]) { o.filter = f }
}

// WithLogger sets the logger.
func WithLogger[F comparable](l *slog.Logger) Option[F] {
	return func(o *options[F]) { o.logger = l }
}

// WithFetchErrorMessage sets the toast shown when a fetch fails.
func WithFetchErrorMessage[F comparable](msg string) Option[F] {
	return func(o *options[F]) { o.fetchMsg = msg }
}

// New creates a controller named after the collection it lists ("books").
// Nothing is fetched until Load, Ensure or another operation asks for it.
func New[T any, F comparable](name string, fetch Fetcher[T, F], notifier Notifier, opts ...Option[F]) *Controller[T, F] {
	o := options[F]{
		perPage:     10,
		searchDelay: DefaultSearchDelay,
		logger:      slog.Default(),
		fetchMsg:    "Failed to fetch " + name,
	}
	for _, opt := range opts {
		opt(&o)
	}

	baseCtx, stop := context.WithCancel(context.Background())
	c := &Controller[T, F]{
		name:     name,
		fetch:    fetch,
		notifier: notifier,
		logger:   o.logger.With("list", name),
		fetchMsg: o.fetchMsg,
		baseCtx:  baseCtx,
		stop:     stop,
		state: State[T, F]{
			Items:   []T{},
			Page:    1,
			PerPage: o.perPage,
			Filter:  o.filter,
		},
	}
	c.search = debounce.New(o.searchDelay, c.commitSearch)
	return c
}

// Name returns the collection name.
func (c *Controller[T, F]) Name() string {
	return c.name
}

// State returns a snapshot safe to hand to a renderer.
func (c *Controller[T, F]) State() State[T, F] {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.Items = append([]T(nil), c.state.Items...)
	return s
}

// Load fetches the current page.
func (c *Controller[T, F]) Load(ctx context.Context) error {
	return c.Refetch(ctx)
}

// Ensure fetches the current page unless a fetch has already succeeded.
func (c *Controller[T, F]) Ensure(ctx context.Context) error {
	c.mu.Lock()
	loaded := c.state.Loaded
	c.mu.Unlock()
	if loaded {
		return nil
	}
	return c.Refetch(ctx)
}

// Refetch loads the page currently selected by page, filter and committed
// search. On failure the previous items stay in place and the notifier is
// told; the error is also returned.
func (c *Controller[T, F]) Refetch(ctx context.Context) error {
	c.mu.Lock()
	page := c.state.Page
	c.mu.Unlock()
	return c.fetchPage(ctx, page)
}

// fetchPage loads page n. The page number is only committed together with
// the items it returned, so a failed fetch leaves page, items and meta
// describing the same page.
func (c *Controller[T, F]) fetchPage(ctx context.Context, n int) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	q := Query[F]{
		Page:    n,
		PerPage: c.state.PerPage,
		Search:  c.state.DebouncedSearch,
		Filter:  c.state.Filter,
	}
	gen, fctx := c.beginLocked(ctx)
	c.mu.Unlock()

	page, err := c.fetch(fctx, q)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if gen != c.gen {
		c.mu.Unlock()
		return ErrSuperseded
	}
	c.cancel()
	c.cancel = nil
	c.state.Loading = false
	if err != nil {
		c.mu.Unlock()
		c.logger.Warn("fetch failed", "page", q.Page, "search", q.Search, "error", err)
		c.notifier.Error(c.fetchMsg)
		return err
	}
	if page == nil {
		page = &model.Page[T]{}
	}
	if page.Data == nil {
		page.Data = []T{}
	}
	c.state.Page = q.Page
	c.state.Items = page.Data
	c.state.Meta = page.Meta
	c.state.Loaded = true
	c.mu.Unlock()
	return nil
}

// beginLocked supersedes any in-flight fetch and marks the list loading.
func (c *Controller[T, F]) beginLocked(ctx context.Context) (uint64, context.Context) {
	if c.cancel != nil {
		c.cancel()
	}
	c.gen++
	fctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.state.Loading = true
	return c.gen, fctx
}

// ChangePage fetches page n, clamped to [1, last page]. The current page
// only moves once that fetch succeeds.
func (c *Controller[T, F]) ChangePage(ctx context.Context, n int) error {
	c.mu.Lock()
	n = clampPage(n, c.state.Meta.LastPage)
	c.mu.Unlock()
	return c.fetchPage(ctx, n)
}

func clampPage(n, last int) int {
	if last < 1 {
		last = 1
	}
	if n > last {
		n = last
	}
	if n < 1 {
		n = 1
	}
	return n
}

// SetSearch records a keystroke. The fetch happens once the query has been
// stable for the search delay; committing a new query returns to page 1.
func (c *Controller[T, F]) SetSearch(query string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.state.SearchQuery = query
	c.mu.Unlock()
	c.search.Set(query)
}

// FlushSearch commits a pending search immediately, as on pressing enter.
func (c *Controller[T, F]) FlushSearch() bool {
	return c.search.Flush()
}

func (c *Controller[T, F]) commitSearch(query string) {
	c.mu.Lock()
	if c.closed || query == c.state.DebouncedSearch {
		c.mu.Unlock()
		return
	}
	c.state.DebouncedSearch = query
	c.state.Page = 1
	c.mu.Unlock()

	_ = c.Refetch(c.baseCtx)
}

// ChangeFilter replaces the active filter and returns to page 1.
func (c *Controller[T, F]) ChangeFilter(ctx context.Context, f F) error {
	c.mu.Lock()
	c.state.Filter = f
	c.state.Page = 1
	c.mu.Unlock()
	return c.Refetch(ctx)
}

// Reset switches to filter f as a new list: items and meta are dropped
// before page 1 of f is fetched, so a failed fetch shows an empty list
// rather than rows that belong to the previous filter.
func (c *Controller[T, F]) Reset(ctx context.Context, f F) error {
	c.mu.Lock()
	c.state.Filter = f
	c.state.Page = 1
	c.state.Items = []T{}
	c.state.Meta = model.PaginationMeta{}
	c.state.Loaded = false
	c.mu.Unlock()
	return c.Refetch(ctx)
}

// Kind classifies a mutation by how the list reacts to it.
type Kind int

const (
	// Create returns to page 1 so the new row is visible.
	Create Kind = iota
	// Update returns to page 1 as well.
	Update
	// Delete steps back a page when it empties a page past the first.
	Delete
	// Action is a workflow step (approve, return, stock change) that keeps the page.
	Action
)

func (k Kind) String() string {
	switch k {
	case Create:
		return "create"
	case Update:
		return "update"
	case Delete:
		return "delete"
	default:
		return "action"
	}
}

// Mutation performs the API call and returns the success message to show.
type Mutation func(ctx context.Context) (string, error)

// Mutate runs op and, if it succeeds, refetches according to kind. A failed
// op is reported through the notifier, with the server's message when it
// sent one and failure otherwise, and leaves the list untouched.
func (c *Controller[T, F]) Mutate(ctx context.Context, kind Kind, failure string, op Mutation) error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return ErrClosed
	}

	msg, err := op(ctx)
	if err != nil {
		c.logger.Warn("mutation failed", "kind", kind.String(), "error", err)
		c.notifier.Error(Describe(err, failure))
		return err
	}
	if msg != "" {
		c.notifier.Success(msg)
	}

	c.mu.Lock()
	page := c.state.Page
	switch kind {
	case Create, Update:
		page = 1
	case Delete:
		if len(c.state.Items) <= 1 && page > 1 {
			page--
		}
	}
	c.mu.Unlock()

	// the mutation stands even if the refetch fails; that failure is already reported
	_ = c.fetchPage(ctx, page)
	return nil
}

// Describe picks the text for an error toast.
func Describe(err error, fallback string) string {
	var apiErr *apperrors.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// Close cancels any in-flight fetch and pending search. Further operations
// return ErrClosed.
func (c *Controller[T, F]) Close() {
	c.search.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.state.Loading = false
	c.stop()
}
