package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"libadmin/internal/errors"
	"libadmin/internal/form"
	"libadmin/internal/listctl"
	"libadmin/internal/model"
	"libadmin/internal/notify"
	"libadmin/internal/service"
	"libadmin/internal/view"
	"libadmin/internal/workspace"
)

const maxEbookSize = 50 << 20

// BookHandler serves the books screen and the book details page.
type BookHandler struct{}

// NewBookHandler creates a new book handler.
func NewBookHandler() *BookHandler {
	return &BookHandler{}
}

// BookDetailResponse is the book details page.
type BookDetailResponse struct {
	Book          *model.Book                                       `json:"book"`
	CreatedOn     string                                            `json:"created_on"`
	Feedback      view.List[model.Feedback, service.FeedbackFilter] `json:"feedback"`
	Notifications []notify.Notification                             `json:"notifications"`
}

// UploadResponse is returned after an ebook upload.
type UploadResponse struct {
	URL string `json:"url"`
	ListResponse[model.Book, listctl.NoFilter]
}

func (h *BookHandler) render(c echo.Context, w *workspace.Workspace) error {
	return h.renderStatus(c, w, http.StatusOK)
}

func (h *BookHandler) renderStatus(c echo.Context, w *workspace.Workspace, status int) error {
	return renderList(c, w, status, view.NewList(w.Books.State(), "book"))
}

// List godoc
// @Summary Books screen
// @Tags books
// @Produce json
// @Security SessionCookie
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /books [get]
func (h *BookHandler) List(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	ensure(c, w.Books)
	return h.render(c, w)
}

// Page godoc
// @Summary Change books page
// @Tags books
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body PageRequest true "Page"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} errors.ErrorResponse
// @Router /books/page [put]
func (h *BookHandler) Page(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	if err := changePage(c, w.Books); err != nil {
		return err
	}
	return h.render(c, w)
}

// Search godoc
// @Summary Update books search
// @Tags books
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body SearchRequest true "Search"
// @Success 200 {object} map[string]interface{}
// @Router /books/search [put]
func (h *BookHandler) Search(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	if err := search(c, w.Books); err != nil {
		return err
	}
	return h.render(c, w)
}

// Create godoc
// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body form.BookForm true "Book"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} errors.ErrorResponse
// @Router /books [post]
func (h *BookHandler) Create(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	var req form.BookForm
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := w.Books.Create(c.Request().Context(), req); err != nil {
		return respondError(err)
	}
	return h.renderStatus(c, w, http.StatusCreated)
}

// Get godoc
// @Summary Book details with feedback
// @Tags books
// @Produce json
// @Security SessionCookie
// @Param id path int true "Book ID"
// @Success 200 {object} BookDetailResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /books/{id} [get]
func (h *BookHandler) Get(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	book, err := w.BookDetail.Open(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return h.renderDetail(c, w, book)
}

// FeedbackPage godoc
// @Summary Change feedback page of a book
// @Tags books
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "Book ID"
// @Param request body PageRequest true "Page"
// @Success 200 {object} BookDetailResponse
// @Router /books/{id}/feedback/page [put]
func (h *BookHandler) FeedbackPage(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	book := w.BookDetail.Book()
	if book == nil || book.ID != id {
		if book, err = w.BookDetail.Open(c.Request().Context(), id); err != nil {
			return respondError(err)
		}
	}
	if err := changePage(c, w.BookDetail); err != nil {
		return err
	}
	return h.renderDetail(c, w, book)
}

func (h *BookHandler) renderDetail(c echo.Context, w *workspace.Workspace, book *model.Book) error {
	return c.JSON(http.StatusOK, BookDetailResponse{
		Book:          book,
		CreatedOn:     view.FormatDate(book.CreatedAt),
		Feedback:      view.NewList(w.BookDetail.State(), "review"),
		Notifications: w.Notifications.Drain(),
	})
}

// Update godoc
// @Summary Update a book
// @Tags books
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "Book ID"
// @Param request body form.BookForm true "Book"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} errors.ErrorResponse
// @Router /books/{id} [put]
func (h *BookHandler) Update(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req form.BookForm
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := w.Books.Update(c.Request().Context(), id, req); err != nil {
		return respondError(err)
	}
	return h.render(c, w)
}

// Delete godoc
// @Summary Delete a book
// @Tags books
// @Produce json
// @Security SessionCookie
// @Param id path int true "Book ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /books/{id} [delete]
func (h *BookHandler) Delete(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := w.Books.Delete(c.Request().Context(), id); err != nil {
		return respondError(err)
	}
	return h.render(c, w)
}

// UploadEbook godoc
// @Summary Upload the PDF of a book
// @Tags books
// @Accept multipart/form-data
// @Produce json
// @Security SessionCookie
// @Param id path int true "Book ID"
// @Param pdf formData file true "PDF file"
// @Success 200 {object} UploadResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /books/{id}/pdf [post]
func (h *BookHandler) UploadEbook(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("pdf")
	if err != nil {
		return respondError(&errors.ValidationError{Fields: map[string]string{"pdf": "PDF file is required"}})
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		return respondError(&errors.ValidationError{Fields: map[string]string{"pdf": "Please upload a PDF file"}})
	}
	if file.Size > maxEbookSize {
		return respondError(&errors.ValidationError{Fields: map[string]string{"pdf": "PDF file is too large"}})
	}

	src, err := file.Open()
	if err != nil {
		return invalidBody()
	}
	defer src.Close()

	url, err := w.Books.UploadEbook(c.Request().Context(), id, file.Filename, src)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, UploadResponse{
		URL: url,
		ListResponse: ListResponse[model.Book, listctl.NoFilter]{
			List:          view.NewList(w.Books.State(), "book"),
			Notifications: w.Notifications.Drain(),
		},
	})
}
