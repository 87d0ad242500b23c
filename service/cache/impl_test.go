package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/arrematec/goapi/base/ctx"
	"github.com/arrematec/goapi/service/cache/provider/primitive"
)

type payload struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

type cacheTestSuite struct {
	suite.Suite
	ctx ctx.Ctx
	svc Service
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(cacheTestSuite))
}

func (s *cacheTestSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.svc = New(ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "test",
		Cache: primitive.NewPrimitive("test", 1),
	})
}

func (s *cacheTestSuite) TestGetMissing() {
	out := payload{}
	s.Equal(ErrNotFound, s.svc.Get(s.ctx, "nope", &out))
}

func (s *cacheTestSuite) TestSetThenGet() {
	in := payload{Name: "lote 42", Total: 59000}
	s.NoError(s.svc.Set(s.ctx, "k", &in))

	out := payload{}
	s.NoError(s.svc.Get(s.ctx, "k", &out))
	s.Equal(in, out)
}

func (s *cacheTestSuite) TestGetByFuncFillsAndServes() {
	calls := 0
	getter := func() (interface{}, error) {
		calls++
		return &payload{Name: "computed", Total: 1}, nil
	}

	first := payload{}
	s.NoError(s.svc.GetByFunc(s.ctx, "k", &first, getter))
	s.Equal("computed", first.Name)

	second := payload{}
	s.NoError(s.svc.GetByFunc(s.ctx, "k", &second, getter))
	s.Equal(first, second)
	s.Equal(1, calls)
}

func (s *cacheTestSuite) TestDel() {
	in := payload{Name: "gone"}
	s.NoError(s.svc.Set(s.ctx, "k", &in))
	s.NoError(s.svc.Del(s.ctx, "k"))

	out := payload{}
	s.Equal(ErrNotFound, s.svc.Get(s.ctx, "k", &out))
}
