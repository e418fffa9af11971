package service

import (
	"context"

	"libadmin/internal/apiclient"
	"libadmin/internal/form"
	"libadmin/internal/listctl"
	"libadmin/internal/model"
)

// UserService backs the users screen.
type UserService interface {
	Lister[model.User, listctl.NoFilter]
	Searcher
	Create(ctx context.Context, f form.UserForm) error
	Update(ctx context.Context, id int, f form.UserUpdateForm) error
	Delete(ctx context.Context, id int) error
}

type userService struct {
	*listctl.Controller[model.User, listctl.NoFilter]
	api       UserAPI
	validator *form.Validator
}

// NewUserService creates the users screen for a session.
func NewUserService(api UserAPI, v *form.Validator, n listctl.Notifier, o Options) UserService {
	fetch := func(ctx context.Context, q listctl.Query[listctl.NoFilter]) (*model.Page[model.User], error) {
		return api.ListUsers(ctx, apiclient.ListParams{Page: q.Page, PerPage: q.PerPage, Search: q.Search})
	}
	return &userService{
		Controller: listctl.New("users", fetch, n, listOptions[listctl.NoFilter](o)...),
		api:        api,
		validator:  v,
	}
}

func (s *userService) Create(ctx context.Context, f form.UserForm) error {
	if err := s.validator.Validate(f); err != nil {
		return err
	}
	return s.Mutate(ctx, listctl.Create, "Failed to save user", func(ctx context.Context) (string, error) {
		resp, err := s.api.CreateUser(ctx, f.Payload())
		if err != nil {
			return "", err
		}
		return messageOr(resp.Message, "User created successfully"), nil
	})
}

func (s *userService) Update(ctx context.Context, id int, f form.UserUpdateForm) error {
	if err := s.validator.Validate(f); err != nil {
		return err
	}
	return s.Mutate(ctx, listctl.Update, "Failed to save user", func(ctx context.Context) (string, error) {
		resp, err := s.api.UpdateUser(ctx, id, f.Payload())
		if err != nil {
			return "", err
		}
		return messageOr(resp.Message, "User updated successfully"), nil
	})
}

func (s *userService) Delete(ctx context.Context, id int) error {
	return s.Mutate(ctx, listctl.Delete, "Failed to delete user", func(ctx context.Context) (string, error) {
		resp, err := s.api.DeleteUser(ctx, id)
		if err != nil {
			return "", err
		}
		return messageOr(resp.Message, "User deleted successfully"), nil
	})
}
