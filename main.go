// Package main library lending API.
//
// @title           Library API
// @version         1.0
// @description     library lending service (users, catalog, borrowing).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"libraryapi/app/echoServer"
	authctrl "libraryapi/app/echoServer/controller/auth"
	bookctrl "libraryapi/app/echoServer/controller/book"
	borrowctrl "libraryapi/app/echoServer/controller/borrow"
	"libraryapi/app/echoServer/validation"
	"libraryapi/config"
	bookrepo "libraryapi/repository/book"
	userrepo "libraryapi/repository/user"
	"libraryapi/seed"
	authsvc "libraryapi/service/auth"
	booksvc "libraryapi/service/book"
	borrowsvc "libraryapi/service/borrow"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// stores (in-process, no persistence)
	ur := userrepo.New()
	br := bookrepo.New()

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	bs := booksvc.New(br)
	rs := borrowsvc.New(br)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	bookC := &bookctrl.Controller{Svc: bs, V: v, Log: log}
	borrowC := &borrowctrl.Controller{Svc: rs, Log: log}

	// seed admin + sample catalog before serving
	if err := seed.Run(ctx, ur, br, cfg.AdminEmail, cfg.AdminPassword, log); err != nil {
		log.Error("seed failed", "err", err)
		os.Exit(1)
	}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status": "Library API running",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:   authC,
		Book:   bookC,
		Borrow: borrowC,

		Users:     ur,
		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
