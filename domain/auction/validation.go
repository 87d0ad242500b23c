package auction

import (
	"github.com/arrematec/goapi/domain"
)

// Validate checks a submitted payload before persistence and reports every
// violated field at once. A nil return means the payload is acceptable.
func (p *Payload) Validate() *domain.ValidationError {
	verr := domain.NewValidationError()

	if p.Title == "" {
		verr.Add("title", "is required")
	}
	if p.Location.City == "" {
		verr.Add("location.city", "is required")
	}
	if p.Location.FullAddress == "" {
		verr.Add("location.fullAddress", "is required")
	}
	if p.AuctionInfo.AdLink == "" {
		verr.Add("auctionInfo.adLink", "is required")
	}
	if p.AuctionInfo.FirstAuction.Date.IsZero() {
		verr.Add("auctionInfo.firstAuction.date", "is required")
	}
	if p.AuctionInfo.FirstAuction.Price <= 0 {
		verr.Add("auctionInfo.firstAuction.price", "must be greater than zero")
	}

	p.validateSecondAuction(verr)

	if p.Status != "" && !p.Status.IsValid() {
		verr.Add("status", "must be one of pending, active, won, sold")
	}

	for field, value := range p.numericFields() {
		if value < 0 {
			verr.Add(field, "must not be negative")
		}
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// a second auction event is all-or-nothing: a price implies a date and a
// date implies a price
func (p *Payload) validateSecondAuction(verr *domain.ValidationError) {
	second := p.AuctionInfo.SecondAuction

	hasPrice := second.Price != nil && *second.Price > 0
	hasDate := second.Date != nil && !second.Date.IsZero()

	if hasPrice && !hasDate {
		verr.Add("auctionInfo.secondAuction.date", "is required when a second auction price is set")
	}
	if hasDate && !hasPrice {
		verr.Add("auctionInfo.secondAuction.price", "is required when a second auction date is set")
	}
	if second.Price != nil && *second.Price < 0 {
		verr.Add("auctionInfo.secondAuction.price", "must not be negative")
	}
}

func (p *Payload) numericFields() map[string]float64 {
	return map[string]float64{
		"biddingInfo.acquisitionPrice":                   p.BiddingInfo.AcquisitionPrice,
		"biddingInfo.leiloeiroCommission":                p.BiddingInfo.LeiloeiroCommission,
		"biddingInfo.itbiValue":                          p.BiddingInfo.ItbiValue,
		"biddingInfo.registrationFee":                    p.BiddingInfo.RegistrationFee,
		"biddingInfo.lawyerFee":                          p.BiddingInfo.LawyerFee,
		"biddingInfo.renovationCost":                     p.BiddingInfo.RenovationCost,
		"biddingInfo.additionalCosts":                    p.BiddingInfo.AdditionalCosts,
		"postAcquisitionCosts.maintenancePeriodInMonths": p.PostAcquisitionCosts.MaintenancePeriodInMonths,
		"postAcquisitionCosts.monthlyIptu":               p.PostAcquisitionCosts.MonthlyIptu,
		"postAcquisitionCosts.monthlyCondoFee":           p.PostAcquisitionCosts.MonthlyCondoFee,
		"postAcquisitionCosts.otherMonthlyCosts":         p.PostAcquisitionCosts.OtherMonthlyCosts,
		"saleInfo.salePrice":                             p.SaleInfo.SalePrice,
		"saleInfo.brokerCommission":                      p.SaleInfo.BrokerCommission,
		"saleInfo.incomeTaxOnSale":                       p.SaleInfo.IncomeTaxOnSale,
	}
}
