package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/arrematec/goapi/base/ctx"
	"github.com/arrematec/goapi/base/database/mongoclient"
	hcdomain "github.com/arrematec/goapi/domain/healthcheck"
	"github.com/arrematec/goapi/domain/keys"
	"github.com/arrematec/goapi/service/cache"
)

type impl struct {
	mgoClient *mongoclient.Client
	cache     cache.Service
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface
func New(mgoClient *mongoclient.Client, cache cache.Service) hcdomain.HealthCheckRepo {
	return &impl{
		mgoClient: mgoClient,
		cache:     cache,
	}
}

func (im *impl) PingDB(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if err := im.mgoClient.Ping(ctx, readpref.Primary()); err != nil {
		context.WithField("err", err).Error("ping mongo error")
		return err
	}

	if err := im.cache.Set(ctx, keys.CacheKey(keys.PfxHealthCheck, "testset"), "1"); err != nil {
		context.WithField("err", err).Error("test cache set failed")
		return err
	}
	return nil
}
