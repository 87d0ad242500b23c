package user

import (
	"time"

	"github.com/arrematec/goapi/base/ctx"
)

// User is an operator account. Registration is invite-only: only an already
// authenticated user may create another one.
type User struct {
	Id           string    `json:"id" bson:"id"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

type Usecase interface {
	Register(ctx ctx.Ctx, username, password string) (*User, error)
	FindByUsername(ctx ctx.Ctx, username string) (*User, error)
}

type Repo interface {
	Insert(ctx ctx.Ctx, user *User) error
	FindByUsername(ctx ctx.Ctx, username string) (*User, error)
}
