package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check cache keys
	PfxHealthCheck = "healthcheck"
	// PfxAuctionSummary is used for prefixing the portfolio summary cache key
	PfxAuctionSummary = "auctionSummary"
)

// CustomKey joins key components with the specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// CacheKey joins cache key components
func CacheKey(components ...string) string {
	return CustomKey(":", components...)
}
