package model

// Book represents a catalogue entry.
// Quantity is only meaningful when HasPhysical is 1.
type Book struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Author      string `json:"author"`
	Ebook       string `json:"ebook"`
	HasPhysical int    `json:"hasPhysical"`
	LoanCount   int    `json:"loanCount,omitempty"`
	Quantity    *int   `json:"quantity,omitempty"`
	Category    string `json:"category"`
	CategoryID  int    `json:"categoryId,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// Physical reports whether the book has a physical copy.
func (b Book) Physical() bool {
	return b.HasPhysical == 1
}

// Stock returns the physical quantity, or zero for ebook-only titles.
func (b Book) Stock() int {
	if !b.Physical() || b.Quantity == nil {
		return 0
	}
	return *b.Quantity
}

// BookInput is the create/update payload for books.
type BookInput struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	CategoryID  int    `json:"category_id"`
	Ebook       string `json:"ebook"`
	HasPhysical int    `json:"has_physical"`
	Quantity    *int   `json:"quantity,omitempty"`
}

// StockInput is the payload for PUT /books/:id/stock.
type StockInput struct {
	Quantity int `json:"quantity"`
}

// StockUpdateResponse is returned by a stock update.
type StockUpdateResponse struct {
	Message string `json:"message"`
	Data    struct {
		CurrentStock int `json:"current_stock"`
	} `json:"data"`
}

// UploadResponse is returned by an ebook upload.
type UploadResponse struct {
	URL string `json:"url"`
}

// FeedbackUser is the reviewer embedded in a Feedback.
type FeedbackUser struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Feedback is a reader's rating of a book.
type Feedback struct {
	ID        int          `json:"id"`
	BookID    int          `json:"book_id"`
	UserID    int          `json:"user_id"`
	Rating    int          `json:"rating"`
	Comment   string       `json:"comment,omitempty"`
	User      FeedbackUser `json:"user"`
	CreatedAt *string      `json:"createdAt"`
}
