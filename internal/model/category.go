package model

// Category groups books. BookCount is computed by the server.
type Category struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	BookCount int    `json:"bookCount"`
	CreatedAt string `json:"createdAt"`
}

// CategoryInput is the create/update payload for categories.
type CategoryInput struct {
	Name string `json:"name"`
}
