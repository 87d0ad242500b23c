package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/arrematec/goapi/base/ctx"
	"github.com/arrematec/goapi/domain"
	"github.com/arrematec/goapi/domain/user"
	"github.com/arrematec/goapi/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) user.Repo {
	return &impl{q}
}

func (im *impl) Insert(c ctx.Ctx, u *user.User) error {
	if err := im.q.Insert(c, domain.TableUsers, u); err != nil {
		if errors.Is(err, query.ErrDuplicateKey) {
			return domain.ErrConflict
		}
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) FindByUsername(c ctx.Ctx, username string) (*user.User, error) {
	res := &user.User{}
	if err := im.q.FindOne(c, domain.TableUsers, bson.M{"username": username}, res); err != nil {
		if errors.Is(err, query.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}
