package service

import (
	"context"
	"fmt"

	"libadmin/internal/apiclient"
	"libadmin/internal/form"
	"libadmin/internal/listctl"
	"libadmin/internal/model"
)

// StockService backs the physical stock screen. It lists books and edits
// their shelf quantity; a stock change keeps the current page.
type StockService interface {
	Lister[model.Book, listctl.NoFilter]
	Searcher
	UpdateStock(ctx context.Context, bookID int, f form.StockForm) (int, error)
}

type stockService struct {
	*listctl.Controller[model.Book, listctl.NoFilter]
	api       BookAPI
	validator *form.Validator
}

// NewStockService creates the physical stock screen for a session.
func NewStockService(api BookAPI, v *form.Validator, n listctl.Notifier, o Options) StockService {
	fetch := func(ctx context.Context, q listctl.Query[listctl.NoFilter]) (*model.Page[model.Book], error) {
		return api.ListBooks(ctx, apiclient.ListParams{Page: q.Page, PerPage: q.PerPage, Search: q.Search})
	}
	opts := listOptions(o, listctl.WithFetchErrorMessage[listctl.NoFilter]("Failed to fetch stock data"))
	return &stockService{
		Controller: listctl.New("stock", fetch, n, opts...),
		api:        api,
		validator:  v,
	}
}

// UpdateStock sets a book's quantity and returns the stock the server reports.
func (s *stockService) UpdateStock(ctx context.Context, bookID int, f form.StockForm) (int, error) {
	if err := s.validator.Validate(f); err != nil {
		return 0, err
	}
	var current int
	err := s.Mutate(ctx, listctl.Action, "Failed to update stock", func(ctx context.Context) (string, error) {
		resp, err := s.api.UpdateStock(ctx, bookID, f.Quantity)
		if err != nil {
			return "", err
		}
		current = resp.Data.CurrentStock
		return messageOr(resp.Message, fmt.Sprintf("Stock updated successfully (%d on shelf)", current)), nil
	})
	return current, err
}
