// app/echoServer/jwtx/user.go
package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"libraryapi/model"
)

const userContextKey = "currentUser"

// EmailFromContext pulls the token subject out of the parsed JWT the
// middleware stored under "user".
func EmailFromContext(c echo.Context) (string, error) {
	tok, ok := c.Get("user").(*jwt.Token)
	if !ok || tok == nil {
		return "", errors.New("no jwt token in context")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid jwt claims")
	}
	if s, ok := claims["sub"].(string); ok && s != "" {
		return s, nil
	}
	return "", errors.New("sub missing in claims")
}

// SetUser stashes the resolved user on the request context.
func SetUser(c echo.Context, u *model.User) {
	c.Set(userContextKey, u)
}

func UserFromContext(c echo.Context) (*model.User, error) {
	u, ok := c.Get(userContextKey).(*model.User)
	if !ok || u == nil {
		return nil, errors.New("no user in context")
	}
	return u, nil
}
