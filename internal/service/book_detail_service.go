package service

import (
	"context"
	"sync"

	"libadmin/internal/listctl"
	"libadmin/internal/model"
)

// FeedbackFilter selects the book whose ratings are listed.
type FeedbackFilter struct {
	BookID int `json:"book_id"`
}

// BookDetailService backs the book details page: the book itself plus a
// paginated list of its feedback.
type BookDetailService interface {
	Lister[model.Feedback, FeedbackFilter]
	Open(ctx context.Context, bookID int) (*model.Book, error)
	Book() *model.Book
}

type bookDetailService struct {
	*listctl.Controller[model.Feedback, FeedbackFilter]
	api      BookAPI
	notifier listctl.Notifier

	mu   sync.Mutex
	book *model.Book
}

// NewBookDetailService creates the book details page for a session.
func NewBookDetailService(api BookAPI, n listctl.Notifier, o Options) BookDetailService {
	fetch := func(ctx context.Context, q listctl.Query[FeedbackFilter]) (*model.Page[model.Feedback], error) {
		if q.Filter.BookID == 0 {
			return &model.Page[model.Feedback]{}, nil
		}
		return api.ListFeedback(ctx, q.Filter.BookID, q.Page, q.PerPage)
	}
	return &bookDetailService{
		Controller: listctl.New("feedback", fetch, n, listOptions[FeedbackFilter](o)...),
		api:        api,
		notifier:   n,
	}
}

// Open loads a book and lists its feedback from page 1. Every call fetches
// the feedback again and starts from an empty list, so a failed fetch never
// leaves another book's ratings on the page.
func (s *bookDetailService) Open(ctx context.Context, bookID int) (*model.Book, error) {
	book, err := s.api.GetBook(ctx, bookID)
	if err != nil {
		s.notifier.Error(listctl.Describe(err, "Failed to fetch book details"))
		return nil, err
	}

	s.mu.Lock()
	s.book = book
	s.mu.Unlock()

	// feedback failures are reported by the controller
	_ = s.Reset(ctx, FeedbackFilter{BookID: bookID})
	return book, nil
}

func (s *bookDetailService) Book() *model.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book
}
