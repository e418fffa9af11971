package service

import (
	"context"

	"libadmin/internal/form"
	"libadmin/internal/listctl"
	"libadmin/internal/model"
)

// CategoryService backs the categories screen. The category listing has no
// search upstream, so this screen does not offer one.
type CategoryService interface {
	Lister[model.Category, listctl.NoFilter]
	Create(ctx context.Context, f form.CategoryForm) error
	Update(ctx context.Context, id int, f form.CategoryForm) error
	Delete(ctx context.Context, id int) error
}

type categoryService struct {
	*listctl.Controller[model.Category, listctl.NoFilter]
	api       CategoryAPI
	validator *form.Validator
}

// NewCategoryService creates the categories screen for a session.
func NewCategoryService(api CategoryAPI, v *form.Validator, n listctl.Notifier, o Options) CategoryService {
	fetch := func(ctx context.Context, q listctl.Query[listctl.NoFilter]) (*model.Page[model.Category], error) {
		return api.ListCategories(ctx, q.Page, q.PerPage)
	}
	return &categoryService{
		Controller: listctl.New("categories", fetch, n, listOptions[listctl.NoFilter](o)...),
		api:        api,
		validator:  v,
	}
}

func (s *categoryService) Create(ctx context.Context, f form.CategoryForm) error {
	if err := s.validator.Validate(f); err != nil {
		return err
	}
	return s.Mutate(ctx, listctl.Create, "Failed to save category", func(ctx context.Context) (string, error) {
		resp, err := s.api.CreateCategory(ctx, f.Payload())
		if err != nil {
			return "", err
		}
		return messageOr(resp.Message, "Category created successfully"), nil
	})
}

func (s *categoryService) Update(ctx context.Context, id int, f form.CategoryForm) error {
	if err := s.validator.Validate(f); err != nil {
		return err
	}
	return s.Mutate(ctx, listctl.Update, "Failed to save category", func(ctx context.Context) (string, error) {
		resp, err := s.api.UpdateCategory(ctx, id, f.Payload())
		if err != nil {
			return "", err
		}
		return messageOr(resp.Message, "Category updated successfully"), nil
	})
}

func (s *categoryService) Delete(ctx context.Context, id int) error {
	return s.Mutate(ctx, listctl.Delete, "Failed to delete category. It may be in use by books.", func(ctx context.Context) (string, error) {
		resp, err := s.api.DeleteCategory(ctx, id)
		if err != nil {
			return "", err
		}
		return messageOr(resp.Message, "Category deleted successfully"), nil
	})
}
