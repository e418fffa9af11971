package router

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"libadmin/internal/auth"
	"libadmin/internal/errors"
	"libadmin/internal/form"
	"libadmin/internal/handler"
	"libadmin/internal/workspace"
)

// Handlers groups the endpoint handlers.
type Handlers struct {
	Auth          *handler.AuthHandler
	Books         *handler.BookHandler
	Users         *handler.UserHandler
	Categories    *handler.CategoryHandler
	Stock         *handler.StockHandler
	Loans         *handler.LoanHandler
	Dashboard     *handler.DashboardHandler
	Notifications *handler.NotificationHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	registry *workspace.Registry,
	validator *form.Validator,
	h Handlers,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", h.Auth.Login)

	// Session routes: cookie or bearer session token
	session := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  jwtService.Secret(),
		TokenLookup: "cookie:" + auth.CookieName + ",header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "missing or invalid session",
				Code:  "NOT_AUTHENTICATED",
			})
		},
	}), handler.Session(registry))

	session.POST("/auth/logout", h.Auth.Logout)
	session.GET("/auth/me", h.Auth.Me)
	session.GET("/notifications", h.Notifications.Drain)

	// Admin routes
	admin := session.Group("", handler.RequireAdmin)

	admin.GET("/dashboard", h.Dashboard.Stats)

	admin.GET("/books", h.Books.List)
	admin.PUT("/books/page", h.Books.Page)
	admin.PUT("/books/search", h.Books.Search)
	admin.POST("/books", h.Books.Create)
	admin.GET("/books/:id", h.Books.Get)
	admin.PUT("/books/:id", h.Books.Update)
	admin.DELETE("/books/:id", h.Books.Delete)
	admin.POST("/books/:id/pdf", h.Books.UploadEbook)
	admin.PUT("/books/:id/feedback/page", h.Books.FeedbackPage)

	admin.GET("/users", h.Users.List)
	admin.PUT("/users/page", h.Users.Page)
	admin.PUT("/users/search", h.Users.Search)
	admin.POST("/users", h.Users.Create)
	admin.PUT("/users/:id", h.Users.Update)
	admin.DELETE("/users/:id", h.Users.Delete)

	admin.GET("/categories", h.Categories.List)
	admin.PUT("/categories/page", h.Categories.Page)
	admin.POST("/categories", h.Categories.Create)
	admin.PUT("/categories/:id", h.Categories.Update)
	admin.DELETE("/categories/:id", h.Categories.Delete)

	admin.GET("/stock", h.Stock.List)
	admin.PUT("/stock/page", h.Stock.Page)
	admin.PUT("/stock/search", h.Stock.Search)
	admin.PUT("/stock/:id", h.Stock.Update)

	admin.GET("/loans", h.Loans.ListLoans)
	admin.PUT("/loans/page", h.Loans.LoansPage)
	admin.PUT("/loans/search", h.Loans.SearchLoans)
	admin.PUT("/loans/tab", h.Loans.LoansTab)
	admin.POST("/loans/:id/:action", h.Loans.TransitionLoan)

	admin.GET("/extensions", h.Loans.ListExtensions)
	admin.PUT("/extensions/page", h.Loans.ExtensionsPage)
	admin.PUT("/extensions/search", h.Loans.SearchExtensions)
	admin.PUT("/extensions/tab", h.Loans.ExtensionsTab)
	admin.POST("/extensions/:id/:decision", h.Loans.DecideExtension)
}

// CustomValidator wraps the form validator for Echo. Failures come back as
// *errors.ValidationError with one message per field.
type CustomValidator struct {
	validator *form.Validator
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Validate(i)
}
