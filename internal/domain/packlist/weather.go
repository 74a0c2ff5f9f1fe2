package packlist

import "strings"

// Bucket is a coarse weather classification driving the clothing rules.
type Bucket string

const (
	BucketWarm Bucket = "warm"
	BucketCold Bucket = "cold"
	BucketMild Bucket = "mild"
)

var (
	warmKeywords = []string{"warm", "hot", "heiß"}
	coldKeywords = []string{"cold", "kalt", "winter"}
)

// BucketForSummary maps a free-form weather descriptor into a bucket. The warm
// keyword set takes precedence over the cold one; anything unrecognized,
// including an empty descriptor, classifies as mild.
func BucketForSummary(summary string) Bucket {
	s := strings.ToLower(summary)
	for _, kw := range warmKeywords {
		if strings.Contains(s, kw) {
			return BucketWarm
		}
	}
	for _, kw := range coldKeywords {
		if strings.Contains(s, kw) {
			return BucketCold
		}
	}
	return BucketMild
}

// BucketForTemperature classifies an average maximum temperature in °C.
// The 26° and 10° boundaries are inclusive to their buckets.
func BucketForTemperature(avgTMax float64) Bucket {
	switch {
	case avgTMax >= 26:
		return BucketWarm
	case avgTMax <= 10:
		return BucketCold
	default:
		return BucketMild
	}
}
