package auction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/arrematec/goapi/base/ptr"
)

type profitTestSuite struct {
	suite.Suite
}

func TestProfitSuite(t *testing.T) {
	suite.Run(t, new(profitTestSuite))
}

func (s *profitTestSuite) TestSumValuesCoercesGarbageToZero() {
	s.Equal(0.0, SumValues(nil))
	s.Equal(0.0, SumValues(map[string]interface{}{}))
	s.Equal(3.5, SumValues(map[string]interface{}{
		"a": 1.5,
		"b": 2,
		"c": nil,
		"d": "",
		"e": "not a number",
		"f": (*float64)(nil),
		"g": struct{}{},
	}))
}

func (s *profitTestSuite) TestSumValuesParsesNumericStrings() {
	s.Equal(1300.0, SumValues(map[string]interface{}{
		"typed":  1000.0,
		"string": "300",
	}))
}

func (s *profitTestSuite) TestComputeProfitIsPure() {
	rec := &Auction{
		BiddingInfo: BiddingInfo{AcquisitionPrice: 80000, LeiloeiroCommission: 5000},
		SaleInfo:    SaleInfo{SalePrice: 150000, BrokerCommission: 6000},
	}
	first := ComputeProfit(rec)
	second := ComputeProfit(rec)
	s.Equal(first, second)
}

func (s *profitTestSuite) TestZeroCostDefault() {
	// with every cost absent the profit collapses to the net sale revenue
	rec := &Auction{
		SaleInfo: SaleInfo{SalePrice: 100000, BrokerCommission: 5000, IncomeTaxOnSale: 1500},
	}
	s.Equal(100000.0-5000.0-1500.0, ComputeProfit(rec))
}

func (s *profitTestSuite) TestHoldingCostIsLinearInMonths() {
	monthly := 100.0 + 200.0 + 50.0
	base := &Auction{
		PostAcquisitionCosts: PostAcquisitionCosts{
			MonthlyIptu:       100,
			MonthlyCondoFee:   200,
			OtherMonthlyCosts: 50,
		},
	}
	for months := 0; months <= 12; months++ {
		rec := *base
		rec.PostAcquisitionCosts.MaintenancePeriodInMonths = float64(months)
		s.Equal(-monthly*float64(months), ComputeProfit(&rec))
	}
}

func (s *profitTestSuite) TestAcquisitionScenario() {
	rec := &Auction{
		AuctionInfo: AuctionInfo{FirstAuction: AuctionEvent{Price: 100000}},
		BiddingInfo: BiddingInfo{
			AcquisitionPrice:    80000,
			LeiloeiroCommission: 5000,
		},
		SaleInfo: SaleInfo{SalePrice: 150000, BrokerCommission: 6000},
	}
	// 150000 - 6000 - (80000 + 5000)
	s.Equal(59000.0, ComputeProfit(rec))
}

func (s *profitTestSuite) TestHoldingOnlyScenario() {
	rec := &Auction{
		PostAcquisitionCosts: PostAcquisitionCosts{
			MaintenancePeriodInMonths: 6,
			MonthlyIptu:               100,
			MonthlyCondoFee:           200,
		},
	}
	s.Equal(-1800.0, ComputeProfit(rec))
}

func (s *profitTestSuite) TestSecondAuctionDoesNotAffectProfit() {
	rec := &Auction{
		AuctionInfo: AuctionInfo{
			FirstAuction:  AuctionEvent{Price: 90000},
			SecondAuction: SecondAuctionEvent{Price: ptr.Float64(45000)},
		},
		SaleInfo: SaleInfo{SalePrice: 120000},
	}
	s.Equal(120000.0, ComputeProfit(rec))
}

func (s *profitTestSuite) TestPayloadToRecordEmbedsProfit() {
	p := &Payload{
		Title:    "Apartamento 2 quartos",
		SaleInfo: SaleInfo{SalePrice: 50000},
		BiddingInfo: BiddingInfo{
			AcquisitionPrice: 30000,
			RenovationCost:   10000,
		},
	}
	rec := p.ToRecord("id-1", time.Now())
	s.Equal(10000.0, rec.Profit)
	s.Equal(StatusPending, rec.Status)
}
