package form

import "libadmin/internal/model"

// UserForm is the create user dialog. Password is mandatory here.
type UserForm struct {
	Name     string     `json:"name" validate:"required"`
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=8"`
	Role     model.Role `json:"role" validate:"required,oneof=user admin"`
}

func (f UserForm) Payload() model.UserInput {
	return model.UserInput{Name: f.Name, Email: f.Email, Password: f.Password, Role: f.Role}
}

// UserUpdateForm is the edit user dialog; a blank password keeps the current one.
type UserUpdateForm struct {
	Name     string     `json:"name" validate:"required"`
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"omitempty,min=8"`
	Role     model.Role `json:"role" validate:"required,oneof=user admin"`
}

func (f UserUpdateForm) Payload() model.UserInput {
	return model.UserInput{Name: f.Name, Email: f.Email, Password: f.Password, Role: f.Role}
}
