package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/arrematec/goapi/base/ctx"
	"github.com/arrematec/goapi/base/log"
	"github.com/arrematec/goapi/base/pricefmt"
	"github.com/arrematec/goapi/domain/auction"
	"github.com/arrematec/goapi/domain/keys"
	"github.com/arrematec/goapi/service/cache"
)

type AuctionUseCaseCfg struct {
	AuctionRepo  auction.Repo
	SummaryCache cache.Service
}

type impl struct {
	auction      auction.Repo
	summaryCache cache.Service
}

func New(cfg *AuctionUseCaseCfg) auction.Usecase {
	return &impl{
		auction:      cfg.AuctionRepo,
		summaryCache: cfg.SummaryCache,
	}
}

func (im *impl) Create(c ctx.Ctx, payload *auction.Payload) (*auction.Auction, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	rec := payload.ToRecord(uuid.NewString(), time.Now().UTC())

	if err := im.auction.Insert(c, rec); err != nil {
		c.WithField("err", err).Error("auction.Insert failed")
		return nil, err
	}

	im.invalidateSummary(c)

	return rec, nil
}

func (im *impl) FindAll(c ctx.Ctx, opts ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	recs, err := im.auction.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("auction.FindAll failed")
		return nil, err
	}
	return recs, nil
}

func (im *impl) FindOne(c ctx.Ctx, id string) (*auction.Auction, error) {
	rec, err := im.auction.FindOne(c, id)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("auction.FindOne failed")
		return nil, err
	}
	return rec, nil
}

func (im *impl) Update(c ctx.Ctx, id string, payload *auction.Payload) (*auction.Auction, error) {
	existing, err := im.auction.FindOne(c, id)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("auction.FindOne failed")
		return nil, err
	}

	if err := payload.Validate(); err != nil {
		return nil, err
	}

	rec := payload.ToRecord(existing.Id, existing.CreatedAt)

	if err := im.auction.Replace(c, id, rec); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("auction.Replace failed")
		return nil, err
	}

	im.invalidateSummary(c)

	return rec, nil
}

func (im *impl) Delete(c ctx.Ctx, id string) error {
	if err := im.auction.Delete(c, id); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("auction.Delete failed")
		return err
	}

	im.invalidateSummary(c)

	return nil
}

func (im *impl) Summary(c ctx.Ctx) (*auction.Summary, error) {
	summary := &auction.Summary{}
	key := keys.CacheKey(keys.PfxAuctionSummary)

	err := im.summaryCache.GetByFunc(c, key, summary, func() (interface{}, error) {
		return im.buildSummary(c)
	})
	if err != nil {
		c.WithField("err", err).Error("summaryCache.GetByFunc failed")
		return nil, err
	}

	return summary, nil
}

func (im *impl) buildSummary(c ctx.Ctx) (*auction.Summary, error) {
	recs, err := im.auction.FindAll(c)
	if err != nil {
		c.WithField("err", err).Error("auction.FindAll failed")
		return nil, err
	}

	summary := &auction.Summary{
		TotalCount:    len(recs),
		CountByStatus: map[auction.Status]int{},
	}

	for _, rec := range recs {
		summary.CountByStatus[rec.Status]++
		summary.ProjectedProfit += rec.Profit
		if rec.Profit >= 0 {
			summary.GainCount++
		} else {
			summary.LossCount++
		}
	}

	summary.ProfitDisplay = pricefmt.FormatBRL(summary.ProjectedProfit)

	return summary, nil
}

func (im *impl) invalidateSummary(c ctx.Ctx) {
	key := keys.CacheKey(keys.PfxAuctionSummary)
	if err := im.summaryCache.Del(c, key); err != nil {
		c.WithField("err", err).Warn("summaryCache.Del failed")
	}
}
