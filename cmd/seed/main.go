package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"libadmin/internal/apiclient"
	"libadmin/internal/auth"
	"libadmin/internal/config"
	"libadmin/internal/form"
	"libadmin/internal/kv"
	"libadmin/internal/notify"
	"libadmin/internal/service"
)

const seedSessionID = "seed"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SeedDocument is the catalogue loaded into the library.
type SeedDocument struct {
	Categories []SeedCategory `json:"categories"`
	Books      []SeedBook     `json:"books"`
}

// SeedCategory names a category to create.
type SeedCategory struct {
	Name string `json:"name"`
}

// SeedBook refers to its category by name.
type SeedBook struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Ebook       string `json:"ebook"`
	HasPhysical int    `json:"has_physical"`
	Quantity    int    `json:"quantity"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	logger.Info("starting seed script")

	cfg := config.Load()
	source := os.Getenv("SEED_SOURCE")
	if source == "" {
		logger.Error("SEED_SOURCE must name a seed file or URL")
		os.Exit(1)
	}

	ctx := context.Background()
	sessions := auth.NewSessionStore(kv.NewMemory())
	client := apiclient.New(cfg.APIBaseURL, auth.StoredToken{Store: sessions, SessionID: seedSessionID},
		apiclient.WithHTTPClient(&http.Client{Timeout: cfg.APITimeout}),
		apiclient.WithLogger(logger),
	)

	toasts := notify.NewCenter(0, logger)
	authService := service.NewAuthService(client, sessions, toasts, seedSessionID, cfg.SessionTTL, logger)
	user, err := authService.Login(ctx, os.Getenv("SEED_EMAIL"), os.Getenv("SEED_PASSWORD"))
	if err != nil {
		logger.Error("login failed", "error", err)
		os.Exit(1)
	}
	if !user.IsAdmin() {
		logger.Error("seed user is not an administrator", "email", user.Email)
		os.Exit(1)
	}
	logger.Info("signed in", "user", user.Email)

	doc, err := loadDocument(ctx, source)
	if err != nil {
		logger.Error("load seed document", "source", source, "error", err)
		os.Exit(1)
	}
	logger.Info("seed document loaded", "categories", len(doc.Categories), "books", len(doc.Books))

	s := &seeder{api: client, validator: form.New(), logger: logger}

	categories, err := s.seedCategories(ctx, doc.Categories)
	if err != nil {
		logger.Error("seed categories", "error", err)
		os.Exit(1)
	}
	if err := s.seedBooks(ctx, doc.Books, categories); err != nil {
		logger.Error("seed books", "error", err)
		os.Exit(1)
	}

	_ = authService.Logout(ctx)
	logger.Info("seed completed",
		"categories_created", s.categoriesCreated,
		"categories_skipped", s.categoriesSkipped,
		"books_created", s.booksCreated,
		"books_skipped", s.booksSkipped,
	)
}

// loadDocument reads the seed catalogue from an http(s) URL or a local file.
func loadDocument(ctx context.Context, source string) (*SeedDocument, error) {
	var r io.ReadCloser
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch seed document: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("seed source returned status code: %d", resp.StatusCode)
		}
		r = resp.Body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, err
		}
		r = f
	}
	defer r.Close()

	var doc SeedDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed document: %w", err)
	}
	return &doc, nil
}

type seeder struct {
	api       service.API
	validator *form.Validator
	logger    *slog.Logger

	categoriesCreated, categoriesSkipped int
	booksCreated, booksSkipped           int
}

// seedCategories creates missing categories and returns every category ID by
// lower-cased name.
func (s *seeder) seedCategories(ctx context.Context, seeds []SeedCategory) (map[string]int, error) {
	ids, err := s.existingCategories(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range seeds {
		key := strings.ToLower(strings.TrimSpace(c.Name))
		if _, ok := ids[key]; ok || key == "" {
			s.categoriesSkipped++
			continue
		}
		f := form.CategoryForm{Name: strings.TrimSpace(c.Name)}
		if err := s.validator.Validate(f); err != nil {
			s.categoriesSkipped++
			continue
		}
		resp, err := s.api.CreateCategory(ctx, f.Payload())
		if err != nil {
			return nil, fmt.Errorf("error creating category %q: %w", c.Name, err)
		}
		ids[key] = resp.Data.ID
		s.categoriesCreated++
	}

	// the create response may omit the new ID
	for _, id := range ids {
		if id == 0 {
			return s.existingCategories(ctx)
		}
	}
	return ids, nil
}

func (s *seeder) existingCategories(ctx context.Context) (map[string]int, error) {
	ids := make(map[string]int)
	for page := 1; ; page++ {
		res, err := s.api.ListCategories(ctx, page, 100)
		if err != nil {
			return nil, fmt.Errorf("error listing categories: %w", err)
		}
		for _, c := range res.Data {
			ids[strings.ToLower(c.Name)] = c.ID
		}
		if page >= res.Meta.LastPage {
			return ids, nil
		}
	}
}

func (s *seeder) seedBooks(ctx context.Context, seeds []SeedBook, categories map[string]int) error {
	for _, b := range seeds {
		categoryID, ok := categories[strings.ToLower(strings.TrimSpace(b.Category))]
		if !ok {
			s.logger.Warn("skipping book with unknown category", "title", b.Title, "category", b.Category)
			s.booksSkipped++
			continue
		}

		f := form.BookForm{
			Title:       b.Title,
			Author:      b.Author,
			Description: b.Description,
			CategoryID:  categoryID,
			HasEbook:    b.Ebook != "",
			Ebook:       b.Ebook,
			HasPhysical: b.HasPhysical,
			Quantity:    b.Quantity,
		}
		if err := s.validator.Validate(f); err != nil {
			s.logger.Warn("skipping invalid book", "title", b.Title, "error", err)
			s.booksSkipped++
			continue
		}

		exists, err := s.bookExists(ctx, b.Title)
		if err != nil {
			return err
		}
		if exists {
			s.booksSkipped++
			continue
		}

		if _, err := s.api.CreateBook(ctx, f.Payload()); err != nil {
			return fmt.Errorf("error creating book %q: %w", b.Title, err)
		}
		s.booksCreated++
	}
	return nil
}

func (s *seeder) bookExists(ctx context.Context, title string) (bool, error) {
	res, err := s.api.ListBooks(ctx, apiclient.ListParams{Page: 1, PerPage: 50, Search: title})
	if err != nil {
		return false, fmt.Errorf("error checking book %q: %w", title, err)
	}
	for _, b := range res.Data {
		if strings.EqualFold(b.Title, title) {
			return true, nil
		}
	}
	return false, nil
}

