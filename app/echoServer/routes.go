package echoServer

import (
	"net/http"

	authctrl "libraryapi/app/echoServer/controller/auth"
	bookctrl "libraryapi/app/echoServer/controller/book"
	borrowctrl "libraryapi/app/echoServer/controller/borrow"
	userrepo "libraryapi/repository/user"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth   *authctrl.Controller
	Book   *bookctrl.Controller
	Borrow *borrowctrl.Controller

	Users     userrepo.Repo
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/api")
	pub.POST("/register", c.Auth.Register)
	pub.POST("/login", c.Auth.Login)
	pub.GET("/books", c.Book.List)

	// Auth
	authed := e.Group("/api")
	authed.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(c.JWTSecret),

		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		ErrorHandler: func(ctx echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		},
	}))
	authed.Use(CurrentUser(c.Users))

	// Admin endpoints
	authed.POST("/books", c.Book.Create, RequireAdmin())

	// Borrowing
	authed.POST("/books/borrow/:book_id", c.Borrow.Borrow)
	authed.POST("/books/return/:book_id", c.Borrow.Return)
}
