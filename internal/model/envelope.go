package model

// PaginationMeta is the block returned with every list response.
// From and To are null on an empty page and decode to zero.
type PaginationMeta struct {
	CurrentPage int `json:"current_page"`
	From        int `json:"from"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	To          int `json:"to"`
	Total       int `json:"total"`
}

// Page is one page of a paginated listing.
type Page[T any] struct {
	Data []T            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// Envelope is the generic single-resource response.
type Envelope[T any] struct {
	Status  string `json:"status,omitempty"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

// ActionResponse is returned by workflow transitions and deletes.
type ActionResponse struct {
	Message string `json:"message"`
}
