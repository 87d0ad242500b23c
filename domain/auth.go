package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/arrematec/goapi/base/ctx"
)

type JwtCustomClaims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	// Login verifies the credentials and issues a signed token
	Login(ctx ctx.Ctx, username, password string) (string, error)
	// ParseToken verifies a token and returns the username it was issued for
	ParseToken(ctx ctx.Ctx, token string) (username string, err error)
}
