package auction

import (
	"time"

	"github.com/arrematec/goapi/base/ctx"
)

// Status tags where an opportunity sits in its lifecycle. It is a free-form
// tag: any update may set any value, no transition graph is enforced.
type Status string

const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
	StatusWon     Status = "won"
	StatusSold    Status = "sold"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusWon, StatusSold:
		return true
	}
	return false
}

type Location struct {
	City         string `json:"city" bson:"city"`
	Neighborhood string `json:"neighborhood" bson:"neighborhood"`
	FullAddress  string `json:"fullAddress" bson:"fullAddress"`
}

type AuctionEvent struct {
	Date  time.Time `json:"date" bson:"date"`
	Price float64   `json:"price" bson:"price"`
}

// SecondAuctionEvent uses pointers so an untouched form section stays
// distinguishable from explicit zeros.
type SecondAuctionEvent struct {
	Date  *time.Time `json:"date,omitempty" bson:"date,omitempty"`
	Price *float64   `json:"price,omitempty" bson:"price,omitempty"`
}

type AuctionInfo struct {
	AdLink        string             `json:"adLink" bson:"adLink"`
	FirstAuction  AuctionEvent       `json:"firstAuction" bson:"firstAuction"`
	SecondAuction SecondAuctionEvent `json:"secondAuction" bson:"secondAuction"`
}

// BiddingInfo holds the one-time costs of winning and registering the
// property. Every field defaults to 0 when absent.
type BiddingInfo struct {
	AcquisitionPrice    float64 `json:"acquisitionPrice" bson:"acquisitionPrice"`
	LeiloeiroCommission float64 `json:"leiloeiroCommission" bson:"leiloeiroCommission"`
	ItbiValue           float64 `json:"itbiValue" bson:"itbiValue"`
	RegistrationFee     float64 `json:"registrationFee" bson:"registrationFee"`
	LawyerFee           float64 `json:"lawyerFee" bson:"lawyerFee"`
	RenovationCost      float64 `json:"renovationCost" bson:"renovationCost"`
	AdditionalCosts     float64 `json:"additionalCosts" bson:"additionalCosts"`
}

// PostAcquisitionCosts are the recurring monthly costs incurred while the
// property is held before resale.
type PostAcquisitionCosts struct {
	MaintenancePeriodInMonths float64 `json:"maintenancePeriodInMonths" bson:"maintenancePeriodInMonths"`
	MonthlyIptu               float64 `json:"monthlyIptu" bson:"monthlyIptu"`
	MonthlyCondoFee           float64 `json:"monthlyCondoFee" bson:"monthlyCondoFee"`
	OtherMonthlyCosts         float64 `json:"otherMonthlyCosts" bson:"otherMonthlyCosts"`
}

type SaleInfo struct {
	SalePrice        float64 `json:"salePrice" bson:"salePrice"`
	BrokerCommission float64 `json:"brokerCommission" bson:"brokerCommission"`
	IncomeTaxOnSale  float64 `json:"incomeTaxOnSale" bson:"incomeTaxOnSale"`
}

// Auction is one tracked judicial-auction opportunity, from listing through
// acquisition and holding to resale. Profit is derived on every write, never
// authored independently.
type Auction struct {
	Id                   string               `json:"id" bson:"id"`
	Title                string               `json:"title" bson:"title"`
	Location             Location             `json:"location" bson:"location"`
	AuctionInfo          AuctionInfo          `json:"auctionInfo" bson:"auctionInfo"`
	BiddingInfo          BiddingInfo          `json:"biddingInfo" bson:"biddingInfo"`
	PostAcquisitionCosts PostAcquisitionCosts `json:"postAcquisitionCosts" bson:"postAcquisitionCosts"`
	SaleInfo             SaleInfo             `json:"saleInfo" bson:"saleInfo"`
	Status               Status               `json:"status" bson:"status"`
	Profit               float64              `json:"profit" bson:"profit"`
	CreatedAt            time.Time            `json:"createdAt" bson:"createdAt"`
}

// Payload is the submitted shape of an opportunity, shared by create and
// update since the client always posts the whole form.
type Payload struct {
	Title                string               `json:"title"`
	Location             Location             `json:"location"`
	AuctionInfo          AuctionInfo          `json:"auctionInfo"`
	BiddingInfo          BiddingInfo          `json:"biddingInfo"`
	PostAcquisitionCosts PostAcquisitionCosts `json:"postAcquisitionCosts"`
	SaleInfo             SaleInfo             `json:"saleInfo"`
	Status               Status               `json:"status"`
}

// ToRecord builds the record to persist. Id and CreatedAt come from the
// caller so an update keeps the original identity.
func (p *Payload) ToRecord(id string, createdAt time.Time) *Auction {
	status := p.Status
	if status == "" {
		status = StatusPending
	}
	rec := &Auction{
		Id:                   id,
		Title:                p.Title,
		Location:             p.Location,
		AuctionInfo:          p.AuctionInfo,
		BiddingInfo:          p.BiddingInfo,
		PostAcquisitionCosts: p.PostAcquisitionCosts,
		SaleInfo:             p.SaleInfo,
		Status:               status,
		CreatedAt:            createdAt,
	}
	rec.Profit = ComputeProfit(rec)
	return rec
}

// Summary aggregates the tracked portfolio for the dashboard.
type Summary struct {
	TotalCount      int            `json:"totalCount"`
	CountByStatus   map[Status]int `json:"countByStatus"`
	ProjectedProfit float64        `json:"projectedProfit"`
	ProfitDisplay   string         `json:"profitDisplay"`
	GainCount       int            `json:"gainCount"`
	LossCount       int            `json:"lossCount"`
}

type FindAllOptions struct {
	City         *string
	Neighborhood *string
	Status       *Status
	SortBy       *string
	Offset       *int32
	Limit        *int32
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

// WithCity matches records whose city contains the text, case-insensitive
func WithCity(city string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.City = &city
		return nil
	}
}

// WithNeighborhood matches records whose neighborhood contains the text,
// case-insensitive
func WithNeighborhood(neighborhood string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Neighborhood = &neighborhood
		return nil
	}
}

// WithStatus matches the status exactly
func WithStatus(status Status) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Status = &status
		return nil
	}
}

// WithSort sorts by the given field, prefix with "-" for descending
func WithSort(sortBy string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SortBy = &sortBy
		return nil
	}
}

func WithPagination(offset, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type Usecase interface {
	Create(ctx ctx.Ctx, payload *Payload) (*Auction, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)
	FindOne(ctx ctx.Ctx, id string) (*Auction, error)
	Update(ctx ctx.Ctx, id string, payload *Payload) (*Auction, error)
	Delete(ctx ctx.Ctx, id string) error
	Summary(ctx ctx.Ctx) (*Summary, error)
}

type Repo interface {
	Insert(ctx ctx.Ctx, record *Auction) error
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Auction, error)
	FindOne(ctx ctx.Ctx, id string) (*Auction, error)
	Replace(ctx ctx.Ctx, id string, record *Auction) error
	Delete(ctx ctx.Ctx, id string) error
}
