package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"libadmin/internal/apiclient"
	"libadmin/internal/model"
)

// MockAPI is a mock implementation of API.
type MockAPI struct {
	mock.Mock
}

var _ API = (*MockAPI)(nil)

func (m *MockAPI) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoginResponse), args.Error(1)
}

func (m *MockAPI) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAPI) ListBooks(ctx context.Context, p apiclient.ListParams) (*model.Page[model.Book], error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[model.Book]), args.Error(1)
}

func (m *MockAPI) GetBook(ctx context.Context, id int) (*model.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *MockAPI) CreateBook(ctx context.Context, in model.BookInput) (*model.Envelope[model.Book], error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Envelope[model.Book]), args.Error(1)
}

func (m *MockAPI) UpdateBook(ctx context.Context, id int, in model.BookInput) (*model.Envelope[model.Book], error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Envelope[model.Book]), args.Error(1)
}

func (m *MockAPI) DeleteBook(ctx context.Context, id int) (*model.ActionResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ActionResponse), args.Error(1)
}

func (m *MockAPI) ListFeedback(ctx context.Context, bookID, page, perPage int) (*model.Page[model.Feedback], error) {
	args := m.Called(ctx, bookID, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[model.Feedback]), args.Error(1)
}

func (m *MockAPI) UpdateStock(ctx context.Context, bookID, quantity int) (*model.StockUpdateResponse, error) {
	args := m.Called(ctx, bookID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StockUpdateResponse), args.Error(1)
}

func (m *MockAPI) UploadEbook(ctx context.Context, bookID int, filename string, r io.Reader) (*model.Envelope[model.UploadResponse], error) {
	args := m.Called(ctx, bookID, filename, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Envelope[model.UploadResponse]), args.Error(1)
}

func (m *MockAPI) ListUsers(ctx context.Context, p apiclient.ListParams) (*model.Page[model.User], error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[model.User]), args.Error(1)
}

func (m *MockAPI) CreateUser(ctx context.Context, in model.UserInput) (*model.CreateUserResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CreateUserResponse), args.Error(1)
}

func (m *MockAPI) UpdateUser(ctx context.Context, id int, in model.UserInput) (*model.Envelope[model.User], error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Envelope[model.User]), args.Error(1)
}

func (m *MockAPI) DeleteUser(ctx context.Context, id int) (*model.ActionResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ActionResponse), args.Error(1)
}

func (m *MockAPI) ListCategories(ctx context.Context, page, perPage int) (*model.Page[model.Category], error) {
	args := m.Called(ctx, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[model.Category]), args.Error(1)
}

func (m *MockAPI) CreateCategory(ctx context.Context, in model.CategoryInput) (*model.Envelope[model.Category], error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Envelope[model.Category]), args.Error(1)
}

func (m *MockAPI) UpdateCategory(ctx context.Context, id int, in model.CategoryInput) (*model.Envelope[model.Category], error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Envelope[model.Category]), args.Error(1)
}

func (m *MockAPI) DeleteCategory(ctx context.Context, id int) (*model.ActionResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ActionResponse), args.Error(1)
}

func (m *MockAPI) ListLoans(ctx context.Context, p apiclient.LoanParams) (*model.Page[model.BookLoan], error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[model.BookLoan]), args.Error(1)
}

func (m *MockAPI) TransitionLoan(ctx context.Context, id int, action model.LoanAction) (*model.ActionResponse, error) {
	args := m.Called(ctx, id, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ActionResponse), args.Error(1)
}

func (m *MockAPI) ListExtensionRequests(ctx context.Context, p apiclient.ExtensionParams) (*model.Page[model.DueDateIncreaseRequest], error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page[model.DueDateIncreaseRequest]), args.Error(1)
}

func (m *MockAPI) DecideExtension(ctx context.Context, id int, decision model.ExtensionStatus) (*model.ActionResponse, error) {
	args := m.Called(ctx, id, decision)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ActionResponse), args.Error(1)
}

func (m *MockAPI) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardStats), args.Error(1)
}

// MockNotifier is a mock implementation of listctl.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Success(description string) {
	m.Called(description)
}

func (m *MockNotifier) Error(description string) {
	m.Called(description)
}

func pageOf[T any](items []T, current, last, total int) *model.Page[T] {
	return &model.Page[T]{
		Data: items,
		Meta: model.PaginationMeta{CurrentPage: current, LastPage: last, PerPage: 10, Total: total},
	}
}

func listParams(page int, search string) apiclient.ListParams {
	return apiclient.ListParams{Page: page, PerPage: 10, Search: search}
}
