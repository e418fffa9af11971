package form

import (
	"github.com/go-playground/validator/v10"

	"libadmin/internal/model"
)

// BookForm is the create/edit book dialog.
type BookForm struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	Description string `json:"description" validate:"required"`
	CategoryID  int    `json:"category_id" validate:"gt=0"`
	HasEbook    bool   `json:"has_ebook"`
	Ebook       string `json:"ebook" validate:"required_if=HasEbook true"`
	HasPhysical int    `json:"has_physical" validate:"oneof=0 1"`
	Quantity    int    `json:"quantity"`
}

// The URL and quantity rules only apply to the enabled formats.
func bookStructLevel(sl validator.StructLevel) {
	f := sl.Current().Interface().(BookForm)
	if f.HasEbook && f.Ebook != "" {
		if err := sl.Validator().Var(f.Ebook, "httpurl"); err != nil {
			sl.ReportError(f.Ebook, "ebook", "Ebook", "httpurl", "")
		}
	}
	if f.HasPhysical == 1 && f.Quantity < 0 {
		sl.ReportError(f.Quantity, "quantity", "Quantity", "min", "0")
	}
}

// NewBookForm prefills the edit dialog from an existing book.
func NewBookForm(b model.Book) BookForm {
	return BookForm{
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		CategoryID:  b.CategoryID,
		HasEbook:    b.Ebook != "",
		Ebook:       b.Ebook,
		HasPhysical: b.HasPhysical,
		Quantity:    b.Stock(),
	}
}

// Payload converts the form to the API body. Quantity is sent only for
// physical books and the ebook URL only when the ebook option is on.
func (f BookForm) Payload() model.BookInput {
	in := model.BookInput{
		Title:       f.Title,
		Author:      f.Author,
		Description: f.Description,
		CategoryID:  f.CategoryID,
		HasPhysical: f.HasPhysical,
	}
	if f.HasEbook {
		in.Ebook = f.Ebook
	}
	if f.HasPhysical == 1 {
		q := f.Quantity
		in.Quantity = &q
	}
	return in
}
