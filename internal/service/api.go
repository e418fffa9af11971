package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"libadmin/internal/apiclient"
	"libadmin/internal/listctl"
	"libadmin/internal/model"
)

// AuthAPI is the part of the library API used for sign-in.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*model.LoginResponse, error)
	Logout(ctx context.Context) error
}

// BookAPI is the part of the library API used by the book screens.
type BookAPI interface {
	ListBooks(ctx context.Context, p apiclient.ListParams) (*model.Page[model.Book], error)
	GetBook(ctx context.Context, id int) (*model.Book, error)
	CreateBook(ctx context.Context, in model.BookInput) (*model.Envelope[model.Book], error)
	UpdateBook(ctx context.Context, id int, in model.BookInput) (*model.Envelope[model.Book], error)
	DeleteBook(ctx context.Context, id int) (*model.ActionResponse, error)
	ListFeedback(ctx context.Context, bookID, page, perPage int) (*model.Page[model.Feedback], error)
	UpdateStock(ctx context.Context, bookID, quantity int) (*model.StockUpdateResponse, error)
	UploadEbook(ctx context.Context, bookID int, filename string, r io.Reader) (*model.Envelope[model.UploadResponse], error)
}

// UserAPI is the part of the library API used by the user screen.
type UserAPI interface {
	ListUsers(ctx context.Context, p apiclient.ListParams) (*model.Page[model.User], error)
	CreateUser(ctx context.Context, in model.UserInput) (*model.CreateUserResponse, error)
	UpdateUser(ctx context.Context, id int, in model.UserInput) (*model.Envelope[model.User], error)
	DeleteUser(ctx context.Context, id int) (*model.ActionResponse, error)
}

// CategoryAPI is the part of the library API used by the category screen.
type CategoryAPI interface {
	ListCategories(ctx context.Context, page, perPage int) (*model.Page[model.Category], error)
	CreateCategory(ctx context.Context, in model.CategoryInput) (*model.Envelope[model.Category], error)
	UpdateCategory(ctx context.Context, id int, in model.CategoryInput) (*model.Envelope[model.Category], error)
	DeleteCategory(ctx context.Context, id int) (*model.ActionResponse, error)
}

// LoanAPI is the part of the library API used by the loan screens.
type LoanAPI interface {
	ListLoans(ctx context.Context, p apiclient.LoanParams) (*model.Page[model.BookLoan], error)
	TransitionLoan(ctx context.Context, id int, action model.LoanAction) (*model.ActionResponse, error)
	ListExtensionRequests(ctx context.Context, p apiclient.ExtensionParams) (*model.Page[model.DueDateIncreaseRequest], error)
	DecideExtension(ctx context.Context, id int, decision model.ExtensionStatus) (*model.ActionResponse, error)
}

// DashboardAPI reads the home screen aggregate.
type DashboardAPI interface {
	DashboardStats(ctx context.Context) (*model.DashboardStats, error)
}

// API is everything a session needs from the library API.
type API interface {
	AuthAPI
	BookAPI
	UserAPI
	CategoryAPI
	LoanAPI
	DashboardAPI
}

var _ API = (*apiclient.Client)(nil)

// Lister is the list half of every screen.
type Lister[T any, F comparable] interface {
	State() listctl.State[T, F]
	Ensure(ctx context.Context) error
	Refetch(ctx context.Context) error
	ChangePage(ctx context.Context, page int) error
	Close()
}

// Searcher is implemented by screens whose list accepts a search query.
type Searcher interface {
	SetSearch(query string)
	FlushSearch() bool
}

// Options configures the list screens of one session.
type Options struct {
	PerPage     int
	SearchDelay time.Duration
	Logger      *slog.Logger
}

func listOptions[F comparable](o Options, extra ...listctl.Option[F]) []listctl.Option[F] {
	opts := []listctl.Option[F]{}
	if o.PerPage > 0 {
		opts = append(opts, listctl.WithPerPage[F](o.PerPage))
	}
	if o.SearchDelay > 0 {
		opts = append(opts, listctl.WithSearchDelay[F](o.SearchDelay))
	}
	if o.Logger != nil {
		opts = append(opts, listctl.WithLogger[F](o.Logger))
	}
	return append(opts, extra...)
}

func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
