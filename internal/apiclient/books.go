package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"libadmin/internal/model"
)

// ListBooks returns one page of the catalogue, optionally filtered by search.
func (c *Client) ListBooks(ctx context.Context, p ListParams) (*model.Page[model.Book], error) {
	var out model.Page[model.Book]
	if err := c.do(ctx, "books.list", http.MethodGet, "/v1/books", p.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBook returns a single book, unwrapped from its envelope.
func (c *Client) GetBook(ctx context.Context, id int) (*model.Book, error) {
	var out model.Envelope[model.Book]
	if err := c.do(ctx, "books.get", http.MethodGet, idPath("/v1/books/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// CreateBook adds a book to the catalogue.
func (c *Client) CreateBook(ctx context.Context, in model.BookInput) (*model.Envelope[model.Book], error) {
	var out model.Envelope[model.Book]
	if err := c.do(ctx, "books.create", http.MethodPost, "/v1/books", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBook replaces the editable fields of a book.
func (c *Client) UpdateBook(ctx context.Context, id int, in model.BookInput) (*model.Envelope[model.Book], error) {
	var out model.Envelope[model.Book]
	if err := c.do(ctx, "books.update", http.MethodPut, idPath("/v1/books/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBook removes a book.
func (c *Client) DeleteBook(ctx context.Context, id int) (*model.ActionResponse, error) {
	var out model.ActionResponse
	if err := c.do(ctx, "books.delete", http.MethodDelete, idPath("/v1/books/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListFeedback pages through the ratings left on a book. The endpoint takes no search.
func (c *Client) ListFeedback(ctx context.Context, bookID, page, perPage int) (*model.Page[model.Feedback], error) {
	var out model.Page[model.Feedback]
	q := ListParams{Page: page, PerPage: perPage}.values()
	if err := c.do(ctx, "books.feedback", http.MethodGet, idPath("/v1/books/%d/feedback", bookID), q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStock sets the physical quantity of a book.
func (c *Client) UpdateStock(ctx context.Context, bookID, quantity int) (*model.StockUpdateResponse, error) {
	var out model.StockUpdateResponse
	in := model.StockInput{Quantity: quantity}
	if err := c.do(ctx, "books.stock", http.MethodPut, idPath("/v1/books/%d/stock", bookID), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadEbook attaches a PDF to a book as multipart field "pdf".
// This route is served outside the /v1 prefix.
func (c *Client) UploadEbook(ctx context.Context, bookID int, filename string, r io.Reader) (*model.Envelope[model.UploadResponse], error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("pdf", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("copy pdf: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart: %w", err)
	}

	var out model.Envelope[model.UploadResponse]
	path := "/books/" + strconv.Itoa(bookID) + "/pdf"
	if err := c.send(ctx, "books.upload", http.MethodPost, path, url.Values{}, &buf, w.FormDataContentType(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
