package auction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/arrematec/goapi/base/ptr"
)

type validationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(validationTestSuite))
}

func validPayload() *Payload {
	return &Payload{
		Title: "Casa em leilão judicial",
		Location: Location{
			City:        "Belo Horizonte",
			FullAddress: "Rua dos Aimorés, 1000",
		},
		AuctionInfo: AuctionInfo{
			AdLink: "https://leiloes.example.com/lote/42",
			FirstAuction: AuctionEvent{
				Date:  time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC),
				Price: 100000,
			},
		},
	}
}

func (s *validationTestSuite) TestValidPayloadPasses() {
	s.Nil(validPayload().Validate())
}

func (s *validationTestSuite) TestRequiredFieldsReportedTogether() {
	verr := (&Payload{}).Validate()
	s.Require().NotNil(verr)
	s.True(verr.Has("title"))
	s.True(verr.Has("location.city"))
	s.True(verr.Has("location.fullAddress"))
	s.True(verr.Has("auctionInfo.adLink"))
	s.True(verr.Has("auctionInfo.firstAuction.date"))
	s.True(verr.Has("auctionInfo.firstAuction.price"))
}

func (s *validationTestSuite) TestZeroFirstAuctionPriceRejected() {
	p := validPayload()
	p.AuctionInfo.FirstAuction.Price = 0
	verr := p.Validate()
	s.Require().NotNil(verr)
	s.True(verr.Has("auctionInfo.firstAuction.price"))
	s.Len(verr.Fields, 1)
}

func (s *validationTestSuite) TestSecondAuctionPriceWithoutDateRejected() {
	p := validPayload()
	p.AuctionInfo.SecondAuction.Price = ptr.Float64(50000)
	verr := p.Validate()
	s.Require().NotNil(verr)
	s.True(verr.Has("auctionInfo.secondAuction.date"))
}

func (s *validationTestSuite) TestSecondAuctionDateWithoutPriceRejected() {
	p := validPayload()
	d := time.Date(2024, 4, 1, 14, 0, 0, 0, time.UTC)
	p.AuctionInfo.SecondAuction.Date = &d
	verr := p.Validate()
	s.Require().NotNil(verr)
	s.True(verr.Has("auctionInfo.secondAuction.price"))
}

func (s *validationTestSuite) TestCompleteSecondAuctionPasses() {
	p := validPayload()
	d := time.Date(2024, 4, 1, 14, 0, 0, 0, time.UTC)
	p.AuctionInfo.SecondAuction.Date = &d
	p.AuctionInfo.SecondAuction.Price = ptr.Float64(50000)
	s.Nil(p.Validate())
}

func (s *validationTestSuite) TestNegativeCostsRejectedPerField() {
	p := validPayload()
	p.BiddingInfo.LawyerFee = -1
	p.PostAcquisitionCosts.MonthlyIptu = -10
	p.SaleInfo.BrokerCommission = -0.5
	verr := p.Validate()
	s.Require().NotNil(verr)
	s.True(verr.Has("biddingInfo.lawyerFee"))
	s.True(verr.Has("postAcquisitionCosts.monthlyIptu"))
	s.True(verr.Has("saleInfo.brokerCommission"))
	s.Len(verr.Fields, 3)
}

func (s *validationTestSuite) TestUnknownStatusRejected() {
	p := validPayload()
	p.Status = Status("archived")
	verr := p.Validate()
	s.Require().NotNil(verr)
	s.True(verr.Has("status"))
}

func (s *validationTestSuite) TestAnyKnownStatusAccepted() {
	// no transition graph: every known status is assignable at any time
	for _, st := range []Status{StatusPending, StatusActive, StatusWon, StatusSold} {
		p := validPayload()
		p.Status = st
		s.Nil(p.Validate())
	}
}
