package service

import (
	"context"
	"io"

	"libadmin/internal/apiclient"
	"libadmin/internal/form"
	"libadmin/internal/listctl"
	"libadmin/internal/model"
)

// BookService backs the books screen.
type BookService interface {
	Lister[model.Book, listctl.NoFilter]
	Searcher
	Get(ctx context.Context, id int) (*model.Book, error)
	Create(ctx context.Context, f form.BookForm) error
	Update(ctx context.Context, id int, f form.BookForm) error
	Delete(ctx context.Context, id int) error
	UploadEbook(ctx context.Context, id int, filename string, r io.Reader) (string, error)
}

type bookService struct {
	*listctl.Controller[model.Book, listctl.NoFilter]
	api       BookAPI
	validator *form.Validator
	notifier  listctl.Notifier
}

// NewBookService creates the books screen for a session.
func NewBookService(api BookAPI, v *form.Validator, n listctl.Notifier, o Options) BookService {
	fetch := func(ctx context.Context, q listctl.Query[listctl.NoFilter]) (*model.Page[model.Book], error) {
		return api.ListBooks(ctx, apiclient.ListParams{Page: q.Page, PerPage: q.PerPage, Search: q.Search})
	}
	return &bookService{
		Controller: listctl.New("books", fetch, n, listOptions[listctl.NoFilter](o)...),
		api:        api,
		validator:  v,
		notifier:   n,
	}
}

func (s *bookService) Get(ctx context.Context, id int) (*model.Book, error) {
	book, err := s.api.GetBook(ctx, id)
	if err != nil {
		s.notifier.Error(listctl.Describe(err, "Failed to fetch book details"))
		return nil, err
	}
	return book, nil
}

func (s *bookService) Create(ctx context.Context, f form.BookForm) error {
	if err := s.validator.Validate(f); err != nil {
		return err
	}
	return s.Mutate(ctx, listctl.Create, "Failed to create book", func(ctx context.Context) (string, error) {
		resp, err := s.api.CreateBook(ctx, f.Payload())
		if err != nil {
			return "", err
		}
		return messageOr(resp.Message, "Book created successfully"), nil
	})
}

func (s *bookService) Update(ctx context.Context, id int, f form.BookForm) error {
	if err := s.validator.Validate(f); err != nil {
		return err
	}
	return s.Mutate(ctx, listctl.Update, "Failed to update book", func(ctx context.Context) (string, error) {
		resp, err := s.api.UpdateBook(ctx, id, f.Payload())
		if err != nil {
			return "", err
		}
		return messageOr(resp.Message, "Book updated successfully"), nil
	})
}

func (s *bookService) Delete(ctx context.Context, id int) error {
	return s.Mutate(ctx, listctl.Delete, "Failed to delete book", func(ctx context.Context) (string, error) {
		resp, err := s.api.DeleteBook(ctx, id)
		if err != nil {
			return "", err
		}
		return messageOr(resp.Message, "Book deleted successfully"), nil
	})
}

// UploadEbook attaches a PDF and returns its public URL. The list is
// refetched in place since only the ebook column changes.
func (s *bookService) UploadEbook(ctx context.Context, id int, filename string, r io.Reader) (string, error) {
	var url string
	err := s.Mutate(ctx, listctl.Action, "Failed to upload PDF", func(ctx context.Context) (string, error) {
		resp, err := s.api.UploadEbook(ctx, id, filename, r)
		if err != nil {
			return "", err
		}
		url = resp.Data.URL
		return messageOr(resp.Message, "PDF uploaded successfully"), nil
	})
	return url, err
}
