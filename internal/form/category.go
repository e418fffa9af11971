package form

import "libadmin/internal/model"

// CategoryForm is the create/edit category dialog.
type CategoryForm struct {
	Name string `json:"name" validate:"required"`
}

func (f CategoryForm) Payload() model.CategoryInput {
	return model.CategoryInput{Name: f.Name}
}

// StockForm is the physical stock dialog.
type StockForm struct {
	Quantity int `json:"quantity" validate:"min=0"`
}
