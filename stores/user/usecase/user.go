package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/arrematec/goapi/base/ctx"
	"github.com/arrematec/goapi/base/log"
	"github.com/arrematec/goapi/domain"
	"github.com/arrematec/goapi/domain/user"
)

type impl struct {
	user user.Repo
}

func New(repo user.Repo) user.Usecase {
	return &impl{repo}
}

func (im *impl) Register(c ctx.Ctx, username, password string) (*user.User, error) {
	if _, err := im.user.FindByUsername(c, username); err == nil {
		return nil, domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		c.WithField("err", err).Error("user.FindByUsername failed")
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.WithField("err", err).Error("bcrypt.GenerateFromPassword failed")
		return nil, err
	}

	u := &user.User{
		Id:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := im.user.Insert(c, u); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"username": username,
		}).Error("user.Insert failed")
		return nil, err
	}

	return u, nil
}

func (im *impl) FindByUsername(c ctx.Ctx, username string) (*user.User, error) {
	u, err := im.user.FindByUsername(c, username)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			c.WithField("err", err).Error("user.FindByUsername failed")
		}
		return nil, err
	}
	return u, nil
}
