package model

// Role is a user's access role on the library API.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a library account as returned by the API.
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// IsAdmin reports whether the user may use the dashboard.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserInput is the create/update payload for users.
type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role"`
}

// CreateUserResponse is returned by POST /users.
type CreateUserResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// LoginRequest carries credentials for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by POST /login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}
