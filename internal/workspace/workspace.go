// Package workspace keeps the live screens of each signed-in dashboard session.
package workspace

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"libadmin/internal/apiclient"
	"libadmin/internal/auth"
	"libadmin/internal/form"
	"libadmin/internal/notify"
	"libadmin/internal/service"
)

// Workspace is the state of one session: its auth context, toasts and one
// list screen per entity.
type Workspace struct {
	ID            string
	Auth          service.AuthService
	Notifications *notify.Center
	Books         service.BookService
	BookDetail    service.BookDetailService
	Users         service.UserService
	Categories    service.CategoryService
	Stock         service.StockService
	Loans         service.LoanService
	Extensions    service.ExtensionService
	Dashboard     service.DashboardService
}

// Close stops every screen. In-flight fetches are cancelled and pending
// searches are dropped.
func (w *Workspace) Close() {
	w.Books.Close()
	w.BookDetail.Close()
	w.Users.Close()
	w.Categories.Close()
	w.Stock.Close()
	w.Loans.Close()
	w.Extensions.Close()
}

// APIFactory builds the API a session talks to. The token source reads the
// session's stored token on every call.
type APIFactory func(tokens apiclient.TokenSource) service.API

// Config holds the settings shared by all workspaces.
type Config struct {
	NewAPI          APIFactory
	SessionTTL      time.Duration
	NotificationTTL time.Duration
	List            service.Options
	Logger          *slog.Logger
}

// ClientFactory returns an APIFactory backed by apiclient.
func ClientFactory(baseURL string, opts ...apiclient.Option) APIFactory {
	return func(tokens apiclient.TokenSource) service.API {
		return apiclient.New(baseURL, tokens, opts...)
	}
}

// Registry maps session IDs to workspaces. A workspace that has not been
// opened for SessionTTL is dropped by Sweep; a SessionTTL of zero keeps
// workspaces until they are closed.
type Registry struct {
	cfg       Config
	sessions  auth.SessionStoreInterface
	validator *form.Validator
	logger    *slog.Logger
	now       func() time.Time

	mu    sync.Mutex
	items map[string]*entry
}

type entry struct {
	ws      *Workspace
	expires time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry(cfg Config, sessions auth.SessionStoreInterface, v *form.Validator) *Registry {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg.List.Logger = logger
	return &Registry{
		cfg:       cfg,
		sessions:  sessions,
		validator: v,
		logger:    logger,
		now:       time.Now,
		items:     make(map[string]*entry),
	}
}

func (r *Registry) expiry() time.Time {
	if r.cfg.SessionTTL <= 0 {
		return time.Time{}
	}
	return r.now().Add(r.cfg.SessionTTL)
}

func (e *entry) expired(now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

// Create builds a fresh workspace for sessionID, replacing any live one.
func (r *Registry) Create(sessionID string) *Workspace {
	w := r.build(sessionID)

	r.mu.Lock()
	old := r.items[sessionID]
	r.items[sessionID] = &entry{ws: w, expires: r.expiry()}
	r.mu.Unlock()

	if old != nil {
		old.ws.Close()
	}
	return w
}

// Open returns the live workspace for sessionID and extends its lifetime.
// An expired workspace is closed and, like one lost to a restart, rebuilt
// from the stored token and user; when nothing is stored the Restore error
// is returned and nothing is registered.
func (r *Registry) Open(ctx context.Context, sessionID string) (*Workspace, error) {
	r.mu.Lock()
	e, ok := r.items[sessionID]
	if ok && !e.expired(r.now()) {
		e.expires = r.expiry()
		r.mu.Unlock()
		return e.ws, nil
	}
	if ok {
		delete(r.items, sessionID)
	}
	r.mu.Unlock()
	if ok {
		e.ws.Close()
	}

	w := r.build(sessionID)
	if _, err := w.Auth.Restore(ctx); err != nil {
		w.Close()
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if live, ok := r.items[sessionID]; ok {
		w.Close()
		live.expires = r.expiry()
		return live.ws, nil
	}
	r.items[sessionID] = &entry{ws: w, expires: r.expiry()}
	r.logger.Info("session restored", "session", sessionID)
	return w, nil
}

// Close stops and forgets the workspace of sessionID.
func (r *Registry) Close(sessionID string) {
	r.mu.Lock()
	e, ok := r.items[sessionID]
	delete(r.items, sessionID)
	r.mu.Unlock()
	if ok {
		e.ws.Close()
	}
}

// CloseAll stops every workspace; used on shutdown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	items := r.items
	r.items = make(map[string]*entry)
	r.mu.Unlock()
	for _, e := range items {
		e.ws.Close()
	}
}

// Sweep closes the workspaces that expired and returns how many it dropped.
func (r *Registry) Sweep() int {
	now := r.now()

	r.mu.Lock()
	var stale []*Workspace
	for id, e := range r.items {
		if e.expired(now) {
			stale = append(stale, e.ws)
			delete(r.items, id)
		}
	}
	r.mu.Unlock()

	for _, w := range stale {
		w.Close()
	}
	if len(stale) > 0 {
		r.logger.Info("idle sessions dropped", "count", len(stale))
	}
	return len(stale)
}

// Run sweeps on every tick until ctx is done. A non-positive interval
// disables sweeping.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Len returns the number of live workspaces.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func (r *Registry) build(sessionID string) *Workspace {
	api := r.cfg.NewAPI(auth.StoredToken{Store: r.sessions, SessionID: sessionID})
	center := notify.NewCenter(r.cfg.NotificationTTL, r.logger)
	opts := r.cfg.List

	return &Workspace{
		ID:            sessionID,
		Auth:          service.NewAuthService(api, r.sessions, center, sessionID, r.cfg.SessionTTL, r.logger),
		Notifications: center,
		Books:         service.NewBookService(api, r.validator, center, opts),
		BookDetail:    service.NewBookDetailService(api, center, opts),
		Users:         service.NewUserService(api, r.validator, center, opts),
		Categories:    service.NewCategoryService(api, r.validator, center, opts),
		Stock:         service.NewStockService(api, r.validator, center, opts),
		Loans:         service.NewLoanService(api, center, opts),
		Extensions:    service.NewExtensionService(api, center, opts),
		Dashboard:     service.NewDashboardService(api, center),
	}
}
