package listctl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "libadmin/internal/errors"
	"libadmin/internal/model"
)

// MockNotifier is a mock implementation of Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Success(description string) {
	m.Called(description)
}

func (m *MockNotifier) Error(description string) {
	m.Called(description)
}

// fakeAPI serves a paginated list of strings. The filter is a required prefix.
type fakeAPI struct {
	mu      sync.Mutex
	items   []string
	queries []Query[string]
	err     error
}

func newFakeAPI(n int) *fakeAPI {
	f := &fakeAPI{}
	for i := 1; i <= n; i++ {
		f.items = append(f.items, fmt.Sprintf("book-%02d", i))
	}
	return f
}

func (f *fakeAPI) fetch(_ context.Context, q Query[string]) (*model.Page[string], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}

	var matched []string
	for _, it := range f.items {
		if strings.HasPrefix(it, q.Filter) && strings.Contains(it, q.Search) {
			matched = append(matched, it)
		}
	}
	return paginate(matched, q.Page, q.PerPage), nil
}

func (f *fakeAPI) remove(item string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, it := range f.items {
		if it == item {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return
		}
	}
}

func (f *fakeAPI) setErr(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

func (f *fakeAPI) queryLog() []Query[string] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Query[string](nil), f.queries...)
}

func paginate(all []string, page, perPage int) *model.Page[string] {
	last := (len(all) + perPage - 1) / perPage
	if last < 1 {
		last = 1
	}
	start := (page - 1) * perPage
	if start > len(all) {
		start = len(all)
	}
	end := start + perPage
	if end > len(all) {
		end = len(all)
	}
	meta := model.PaginationMeta{CurrentPage: page, LastPage: last, PerPage: perPage, Total: len(all)}
	if end > start {
		meta.From, meta.To = start+1, end
	}
	return &model.Page[string]{Data: append([]string{}, all[start:end]...), Meta: meta}
}

func newController(t *testing.T, api *fakeAPI, n Notifier, opts ...Option[string]) *Controller[string, string] {
	t.Helper()
	opts = append([]Option[string]{WithPerPage[string](5), WithSearchDelay[string](20 * time.Millisecond)}, opts...)
	c := New[string, string]("books", api.fetch, n, opts...)
	t.Cleanup(c.Close)
	return c
}

func TestController_Load(t *testing.T) {
	api := newFakeAPI(12)
	c := newController(t, api, &MockNotifier{})

	require.NoError(t, c.Load(context.Background()))

	s := c.State()
	assert.Equal(t, []string{"book-01", "book-02", "book-03", "book-04", "book-05"}, s.Items)
	assert.Equal(t, 3, s.Meta.LastPage)
	assert.Equal(t, 12, s.Meta.Total)
	assert.True(t, s.Loaded)
	assert.False(t, s.Loading)

	require.NoError(t, c.Ensure(context.Background()))
	assert.Len(t, api.queryLog(), 1)
}

func TestController_ChangePage(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		wantPage int
	}{
		{name: "in range", page: 2, wantPage: 2},
		{name: "past last page", page: 9, wantPage: 3},
		{name: "below first page", page: 0, wantPage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI(12)
			c := newController(t, api, &MockNotifier{})
			require.NoError(t, c.Load(context.Background()))

			require.NoError(t, c.ChangePage(context.Background(), tt.page))

			s := c.State()
			assert.Equal(t, tt.wantPage, s.Page)
			assert.Equal(t, tt.wantPage, s.Meta.CurrentPage)
			q := api.queryLog()
			assert.Equal(t, tt.wantPage, q[len(q)-1].Page)
		})
	}
}

func TestController_ChangeFilterResetsPage(t *testing.T) {
	api := newFakeAPI(12)
	c := newController(t, api, &MockNotifier{})
	require.NoError(t, c.Load(context.Background()))
	require.NoError(t, c.ChangePage(context.Background(), 3))

	require.NoError(t, c.ChangeFilter(context.Background(), "book-1"))

	s := c.State()
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, "book-1", s.Filter)
	assert.Equal(t, []string{"book-10", "book-11", "book-12"}, s.Items)
}

func TestController_SearchIsDebounced(t *testing.T) {
	api := newFakeAPI(12)
	c := newController(t, api, &MockNotifier{})
	require.NoError(t, c.Load(context.Background()))
	require.NoError(t, c.ChangePage(context.Background(), 2))
	before := len(api.queryLog())

	for _, q := range []string{"0", "07", "0"} {
		c.SetSearch(q)
	}
	assert.Equal(t, "0", c.State().SearchQuery)

	assert.Eventually(t, func() bool {
		return c.State().DebouncedSearch == "0" && !c.State().Loading
	}, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	queries := api.queryLog()[before:]
	require.Len(t, queries, 1)
	assert.Equal(t, "0", queries[0].Search)
	assert.Equal(t, 1, queries[0].Page)
	assert.Len(t, c.State().Items, 5)
}

func TestController_SearchSameValueDoesNotRefetch(t *testing.T) {
	api := newFakeAPI(3)
	c := newController(t, api, &MockNotifier{})
	require.NoError(t, c.Load(context.Background()))

	c.SetSearch("x")
	c.SetSearch("")
	time.Sleep(60 * time.Millisecond)

	assert.Len(t, api.queryLog(), 1)
}

func TestController_FlushSearch(t *testing.T) {
	api := newFakeAPI(12)
	c := newController(t, api, &MockNotifier{}, WithSearchDelay[string](time.Hour))

	c.SetSearch("11")
	require.True(t, c.FlushSearch())

	s := c.State()
	assert.Equal(t, "11", s.DebouncedSearch)
	assert.Equal(t, []string{"book-11"}, s.Items)
}

func TestController_Mutate(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		startPage int
		kind      Kind
		remove    string
		wantPage  int
		wantItems []string
	}{
		{
			name:      "create returns to first page",
			total:     12,
			startPage: 3,
			kind:      Create,
			wantPage:  1,
			wantItems: []string{"book-01", "book-02", "book-03", "book-04", "book-05"},
		},
		{
			name:      "update returns to first page",
			total:     12,
			startPage: 2,
			kind:      Update,
			wantPage:  1,
			wantItems: []string{"book-01", "book-02", "book-03", "book-04", "book-05"},
		},
		{
			name:      "delete last row of last page steps back",
			total:     11,
			startPage: 3,
			kind:      Delete,
			remove:    "book-11",
			wantPage:  2,
			wantItems: []string{"book-06", "book-07", "book-08", "book-09", "book-10"},
		},
		{
			name:      "delete with rows remaining keeps page",
			total:     12,
			startPage: 3,
			kind:      Delete,
			remove:    "book-11",
			wantPage:  3,
			wantItems: []string{"book-12"},
		},
		{
			name:      "delete only row of first page stays on first page",
			total:     1,
			startPage: 1,
			kind:      Delete,
			remove:    "book-01",
			wantPage:  1,
			wantItems: []string{},
		},
		{
			name:      "action keeps page",
			total:     12,
			startPage: 2,
			kind:      Action,
			wantPage:  2,
			wantItems: []string{"book-06", "book-07", "book-08", "book-09", "book-10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI(tt.total)
			n := &MockNotifier{}
			n.On("Success", "done").Once()
			c := newController(t, api, n)
			require.NoError(t, c.Load(context.Background()))
			require.NoError(t, c.ChangePage(context.Background(), tt.startPage))

			err := c.Mutate(context.Background(), tt.kind, "Failed to save book", func(ctx context.Context) (string, error) {
				if tt.remove != "" {
					api.remove(tt.remove)
				}
				return "done", nil
			})

			require.NoError(t, err)
			s := c.State()
			assert.Equal(t, tt.wantPage, s.Page)
			assert.Equal(t, tt.wantItems, s.Items)
			n.AssertExpectations(t)
		})
	}
}

func TestController_MutationFailureLeavesList(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "server message is shown",
			err:     &apperrors.APIError{StatusCode: 422, Message: "The title field is required."},
			wantMsg: "The title field is required.",
		},
		{
			name:    "transport failure uses fallback",
			err:     errors.New("dial tcp: connection refused"),
			wantMsg: "Failed to save book",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI(12)
			n := &MockNotifier{}
			n.On("Error", tt.wantMsg).Once()
			c := newController(t, api, n)
			require.NoError(t, c.Load(context.Background()))
			require.NoError(t, c.ChangePage(context.Background(), 2))
			before := c.State()
			fetches := len(api.queryLog())

			err := c.Mutate(context.Background(), Create, "Failed to save book", func(ctx context.Context) (string, error) {
				return "", tt.err
			})

			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, before, c.State())
			assert.Len(t, api.queryLog(), fetches)
			n.AssertExpectations(t)
		})
	}
}

func TestController_FetchFailureKeepsItems(t *testing.T) {
	api := newFakeAPI(12)
	n := &MockNotifier{}
	n.On("Error", "Failed to fetch books").Once()
	c := newController(t, api, n)
	require.NoError(t, c.Load(context.Background()))
	before := c.State().Items

	api.setErr(errors.New("connection refused"))
	err := c.ChangePage(context.Background(), 2)

	assert.Error(t, err)
	s := c.State()
	assert.Equal(t, before, s.Items)
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, s.Meta.CurrentPage, s.Page)
	assert.False(t, s.Loading)
	n.AssertExpectations(t)
}

func TestController_FailedRefetchAfterMutateKeepsPage(t *testing.T) {
	api := newFakeAPI(12)
	n := &MockNotifier{}
	n.On("Success", "Book created successfully").Once()
	n.On("Error", "Failed to fetch books").Once()
	c := newController(t, api, n)
	require.NoError(t, c.Load(context.Background()))
	require.NoError(t, c.ChangePage(context.Background(), 3))

	err := c.Mutate(context.Background(), Create, "Failed to save book", func(ctx context.Context) (string, error) {
		api.setErr(errors.New("connection refused"))
		return "Book created successfully", nil
	})

	require.NoError(t, err)
	s := c.State()
	assert.Equal(t, 3, s.Page)
	assert.Equal(t, 3, s.Meta.CurrentPage)
	assert.Equal(t, []string{"book-11", "book-12"}, s.Items)
	n.AssertExpectations(t)
}

func TestController_Reset(t *testing.T) {
	t.Run("fetches first page of the new filter", func(t *testing.T) {
		api := newFakeAPI(12)
		c := newController(t, api, &MockNotifier{})
		require.NoError(t, c.Load(context.Background()))
		require.NoError(t, c.ChangePage(context.Background(), 2))

		require.NoError(t, c.Reset(context.Background(), "book-1"))

		s := c.State()
		assert.Equal(t, 1, s.Page)
		assert.Equal(t, "book-1", s.Filter)
		assert.Equal(t, []string{"book-10", "book-11", "book-12"}, s.Items)
		assert.True(t, s.Loaded)
	})

	t.Run("failed fetch leaves the list empty", func(t *testing.T) {
		api := newFakeAPI(12)
		n := &MockNotifier{}
		n.On("Error", "Failed to fetch books").Once()
		c := newController(t, api, n)
		require.NoError(t, c.Load(context.Background()))

		api.setErr(errors.New("connection refused"))
		err := c.Reset(context.Background(), "book-1")

		assert.Error(t, err)
		s := c.State()
		assert.Empty(t, s.Items)
		assert.Equal(t, model.PaginationMeta{}, s.Meta)
		assert.False(t, s.Loaded)
		assert.Equal(t, "book-1", s.Filter)
		n.AssertExpectations(t)
	})
}

func TestController_LatestFetchWins(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var firstCtxErr error

	fetch := func(ctx context.Context, q Query[string]) (*model.Page[string], error) {
		if q.Page == 1 {
			close(started)
			<-release
			firstCtxErr = ctx.Err()
			return &model.Page[string]{Data: []string{"stale"}, Meta: model.PaginationMeta{CurrentPage: 1, LastPage: 2}}, nil
		}
		return &model.Page[string]{Data: []string{"fresh"}, Meta: model.PaginationMeta{CurrentPage: 2, LastPage: 2}}, nil
	}
	c := New[string, string]("books", fetch, &MockNotifier{})
	t.Cleanup(c.Close)

	firstErr := make(chan error, 1)
	go func() { firstErr <- c.Load(context.Background()) }()
	<-started

	// the stale request is still in flight when the page changes
	c.mu.Lock()
	c.state.Meta.LastPage = 2
	c.mu.Unlock()
	require.NoError(t, c.ChangePage(context.Background(), 2))
	close(release)

	assert.ErrorIs(t, <-firstErr, ErrSuperseded)
	assert.ErrorIs(t, firstCtxErr, context.Canceled)
	s := c.State()
	assert.Equal(t, []string{"fresh"}, s.Items)
	assert.Equal(t, 2, s.Page)
	assert.False(t, s.Loading)
}

func TestController_Close(t *testing.T) {
	api := newFakeAPI(12)
	c := newController(t, api, &MockNotifier{})
	require.NoError(t, c.Load(context.Background()))

	c.SetSearch("07")
	c.Close()
	time.Sleep(50 * time.Millisecond)

	assert.Len(t, api.queryLog(), 1)
	assert.ErrorIs(t, c.Refetch(context.Background()), ErrClosed)
	assert.ErrorIs(t, c.Mutate(context.Background(), Action, "Failed", func(context.Context) (string, error) {
		t.Fatal("mutation ran after close")
		return "", nil
	}), ErrClosed)
}
