package packlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBucketForSummary(t *testing.T) {
	cases := []struct {
		summary string
		want    Bucket
	}{
		{"warm", BucketWarm},
		{"Warm und sonnig", BucketWarm},
		{"hot and humid", BucketWarm},
		{"heiß", BucketWarm},
		{"cold", BucketCold},
		{"kalt mit leichtem Schnee", BucketCold},
		{"winterlich", BucketCold},
		{"sunny", BucketMild},
		{"wechselhaft", BucketMild},
		{"", BucketMild},
		{"   ", BucketMild},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, BucketForSummary(tc.summary), "summary=%q", tc.summary)
	}
}

func TestBucketForSummaryWarmWinsOverCold(t *testing.T) {
	// A descriptor matching both keyword sets resolves via the warm set,
	// which is checked first.
	require.Equal(t, BucketWarm, BucketForSummary("warm winter day"))
}

func TestBucketForTemperature(t *testing.T) {
	cases := []struct {
		avgTMax float64
		want    Bucket
	}{
		{26, BucketWarm},
		{26.1, BucketWarm},
		{40, BucketWarm},
		{25.9, BucketMild},
		{18, BucketMild},
		{10.1, BucketMild},
		{10, BucketCold},
		{0, BucketCold},
		{-15, BucketCold},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, BucketForTemperature(tc.avgTMax), "avgTMax=%v", tc.avgTMax)
	}
}
