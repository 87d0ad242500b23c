package repository

import (
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arrematec/goapi/base/ctx"
	"github.com/arrematec/goapi/base/log"
	"github.com/arrematec/goapi/domain"
	"github.com/arrematec/goapi/domain/auction"
	"github.com/arrematec/goapi/service/query"
)

// makeFindQuery translates sparse filter criteria into a mongo selector.
// Location criteria become unanchored case-insensitive substring matches,
// status matches exactly, absent criteria impose no constraint.
func makeFindQuery(optFns ...auction.FindAllOptionsFunc) (bson.M, error) {
	opts, err := auction.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	qry := bson.M{}

	if opts.City != nil && *opts.City != "" {
		qry["location.city"] = primitive.Regex{Pattern: regexp.QuoteMeta(*opts.City), Options: "i"}
	}

	if opts.Neighborhood != nil && *opts.Neighborhood != "" {
		qry["location.neighborhood"] = primitive.Regex{Pattern: regexp.QuoteMeta(*opts.Neighborhood), Options: "i"}
	}

	if opts.Status != nil && *opts.Status != "" {
		qry["status"] = *opts.Status
	}

	return qry, nil
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) auction.Repo {
	return &impl{q}
}

func (im *impl) Insert(c ctx.Ctx, record *auction.Auction) error {
	if err := im.q.Insert(c, domain.TableAuctions, record); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"record": record,
		}).Error("failed to query.Insert")
		return err
	}
	return nil
}

func (im *impl) FindAll(c ctx.Ctx, optFns ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	opts, err := auction.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("failed to auction.GetFindAllOptions")
		return nil, err
	}

	qry, err := makeFindQuery(optFns...)
	if err != nil {
		return nil, err
	}

	offset := 0
	limit := 0

	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}

	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}

	// "_id" keeps insertion order
	sort := "_id"
	if opts.SortBy != nil {
		sort = *opts.SortBy
	}

	res := []*auction.Auction{}
	if err := im.q.Search(c, domain.TableAuctions, offset, limit, sort, qry, &res); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to query.Search")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindOne(c ctx.Ctx, id string) (*auction.Auction, error) {
	res := auction.Auction{}
	err := im.q.FindOne(c, domain.TableAuctions, bson.M{"id": id}, &res)
	if errors.Is(err, query.ErrNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to query.FindOne")
		return nil, err
	}
	return &res, nil
}

func (im *impl) Replace(c ctx.Ctx, id string, record *auction.Auction) error {
	if err := im.q.Upsert(c, domain.TableAuctions, bson.M{"id": id}, record); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to query.Upsert")
		return err
	}
	return nil
}

func (im *impl) Delete(c ctx.Ctx, id string) error {
	err := im.q.Remove(c, domain.TableAuctions, bson.M{"id": id})
	if errors.Is(err, query.ErrNotFound) {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to query.Remove")
		return err
	}
	return nil
}
