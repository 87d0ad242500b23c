package auction

import (
	"encoding/json"
	"strconv"
)

// SumValues adds up a variable-shaped breakdown of named amounts. Absent,
// nil, empty or non-numeric values count as zero, never as an error: a
// partially filled form must always produce a computable preview, and
// deciding whether the input was acceptable is the validator's job.
func SumValues(fields map[string]interface{}) float64 {
	total := 0.0
	for _, v := range fields {
		total += toNumber(v)
	}
	return total
}

func toNumber(v interface{}) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case *float64:
		if n == nil {
			return 0
		}
		return *n
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Total is the one-time cost of winning and registering the property
func (b BiddingInfo) Total() float64 {
	return SumValues(map[string]interface{}{
		"acquisitionPrice":    b.AcquisitionPrice,
		"leiloeiroCommission": b.LeiloeiroCommission,
		"itbiValue":           b.ItbiValue,
		"registrationFee":     b.RegistrationFee,
		"lawyerFee":           b.LawyerFee,
		"renovationCost":      b.RenovationCost,
		"additionalCosts":     b.AdditionalCosts,
	})
}

// Total is the monthly holding cost multiplied over the maintenance period
func (p PostAcquisitionCosts) Total() float64 {
	monthly := SumValues(map[string]interface{}{
		"monthlyIptu":       p.MonthlyIptu,
		"monthlyCondoFee":   p.MonthlyCondoFee,
		"otherMonthlyCosts": p.OtherMonthlyCosts,
	})
	return p.MaintenancePeriodInMonths * monthly
}

// NetRevenue is the sale price minus the costs of selling
func (s SaleInfo) NetRevenue() float64 {
	return s.SalePrice - SumValues(map[string]interface{}{
		"brokerCommission": s.BrokerCommission,
		"incomeTaxOnSale":  s.IncomeTaxOnSale,
	})
}

// ComputeProfit derives net profit from the current cost/revenue breakdown.
// This is the single authoritative formula: every write path stores its
// result, so persisted and previewed values cannot diverge. A negative
// result is a loss, not an error.
func ComputeProfit(a *Auction) float64 {
	totalCost := a.BiddingInfo.Total() + a.PostAcquisitionCosts.Total()
	return a.SaleInfo.NetRevenue() - totalCost
}
